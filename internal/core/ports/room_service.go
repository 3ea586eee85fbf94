package ports

import (
	"context"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// CreateRoomInput carries all data needed to create a room.
type CreateRoomInput struct {
	Name       string
	RoomTypeID string
	Price      float64
}

// UpdateRoomInput carries a full replacement of a room's mutable fields.
type UpdateRoomInput struct {
	ID         string
	Name       string
	RoomTypeID string
	Price      float64
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	CreateRoom(ctx context.Context, input CreateRoomInput, actorID string) (*domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*domain.Room, error)
	UpdateRoom(ctx context.Context, input UpdateRoomInput, actorID string) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id, actorID string) error
}
