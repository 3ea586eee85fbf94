package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

type roomService struct {
	rooms     ports.RoomRepository
	roomTypes ports.RoomTypeRepository
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

// NewRoomService returns a RoomService implementation.
func NewRoomService(
	rooms ports.RoomRepository,
	roomTypes ports.RoomTypeRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.RoomService {
	return &roomService{rooms: rooms, roomTypes: roomTypes, audit: audit, log: log}
}

// CreateRoom validates the referenced room type exists before inserting.
func (s *roomService) CreateRoom(ctx context.Context, input ports.CreateRoomInput, actorID string) (*domain.Room, error) {
	if _, err := s.roomTypes.FindByID(ctx, input.RoomTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		Name:       input.Name,
		RoomTypeID: input.RoomTypeID,
		Price:      input.Price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create room")
		return nil, err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "room.create",
		Resource:   "rooms",
		ResourceID: created.ID,
		Timestamp:  now,
	})
	s.log.Info().Str("room_id", created.ID).Str("name", created.Name).Msg("room created")

	return created, nil
}

func (s *roomService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *roomService) ListRooms(ctx context.Context, filter ports.RoomFilter) ([]*domain.Room, error) {
	return s.rooms.List(ctx, filter)
}

// UpdateRoom replaces the room's mutable fields. The existence check runs
// before the write so an absent room surfaces as 404, not a silent upsert.
func (s *roomService) UpdateRoom(ctx context.Context, input ports.UpdateRoomInput, actorID string) (*domain.Room, error) {
	existing, err := s.rooms.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.roomTypes.FindByID(ctx, input.RoomTypeID); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.RoomTypeID = input.RoomTypeID
	existing.Price = input.Price
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.rooms.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "room.update",
		Resource:   "rooms",
		ResourceID: updated.ID,
		Timestamp:  existing.UpdatedAt,
	})

	return updated, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id, actorID string) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "room.delete",
		Resource:   "rooms",
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.log.Info().Str("room_id", id).Msg("room deleted")

	return nil
}

func (s *roomService) record(event ports.AuditEventInput) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
