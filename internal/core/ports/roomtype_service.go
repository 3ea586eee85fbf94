package ports

import (
	"context"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// RoomTypeService defines use-case operations for room types.
type RoomTypeService interface {
	CreateRoomType(ctx context.Context, name, actorID string) (*domain.RoomType, error)
	GetRoomType(ctx context.Context, id string) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error)
	UpdateRoomType(ctx context.Context, id, name, actorID string) (*domain.RoomType, error)
	DeleteRoomType(ctx context.Context, id, actorID string) error
}
