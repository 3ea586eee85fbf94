package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

type roomTypeService struct {
	roomTypes ports.RoomTypeRepository
	rooms     ports.RoomRepository
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

// NewRoomTypeService returns a RoomTypeService implementation.
func NewRoomTypeService(
	roomTypes ports.RoomTypeRepository,
	rooms ports.RoomRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.RoomTypeService {
	return &roomTypeService{roomTypes: roomTypes, rooms: rooms, audit: audit, log: log}
}

// CreateRoomType enforces name uniqueness at the service level in addition
// to the unique index, so duplicates get a deterministic error.
func (s *roomTypeService) CreateRoomType(ctx context.Context, name, actorID string) (*domain.RoomType, error) {
	if _, err := s.roomTypes.FindByName(ctx, name); err == nil {
		return nil, domain.ErrRoomTypeExists
	} else if !errors.Is(err, domain.ErrRoomTypeNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.roomTypes.Create(ctx, &domain.RoomType{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "room_type.create",
		Resource:   "room_types",
		ResourceID: created.ID,
		Timestamp:  now,
	})
	s.log.Info().Str("room_type_id", created.ID).Str("name", name).Msg("room type created")

	return created, nil
}

func (s *roomTypeService) GetRoomType(ctx context.Context, id string) (*domain.RoomType, error) {
	return s.roomTypes.FindByID(ctx, id)
}

func (s *roomTypeService) ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error) {
	return s.roomTypes.List(ctx)
}

func (s *roomTypeService) UpdateRoomType(ctx context.Context, id, name, actorID string) (*domain.RoomType, error) {
	existing, err := s.roomTypes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if other, err := s.roomTypes.FindByName(ctx, name); err == nil && other.ID != id {
		return nil, domain.ErrRoomTypeExists
	} else if err != nil && !errors.Is(err, domain.ErrRoomTypeNotFound) {
		return nil, err
	}

	existing.Name = name
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.roomTypes.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "room_type.update",
		Resource:   "room_types",
		ResourceID: id,
		Timestamp:  existing.UpdatedAt,
	})

	return updated, nil
}

// DeleteRoomType refuses to remove a type still referenced by rooms.
func (s *roomTypeService) DeleteRoomType(ctx context.Context, id, actorID string) error {
	if _, err := s.roomTypes.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.rooms.CountByRoomType(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return domain.ErrRoomTypeInUse
	}

	if err := s.roomTypes.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "room_type.delete",
		Resource:   "room_types",
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.log.Info().Str("room_type_id", id).Msg("room type deleted")

	return nil
}

func (s *roomTypeService) record(event ports.AuditEventInput) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
