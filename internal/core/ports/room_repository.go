package ports

import (
	"context"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// RoomFilter carries the optional query parameters for listing rooms.
type RoomFilter struct {
	Search     string  // case-insensitive partial match on name
	RoomTypeID string  // exact match
	MinPrice   float64 // price >= MinPrice when > 0
	MaxPrice   float64 // price <= MaxPrice when > 0
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter RoomFilter) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	// CountByRoomType reports how many rooms reference the given room type.
	CountByRoomType(ctx context.Context, roomTypeID string) (int64, error)
}
