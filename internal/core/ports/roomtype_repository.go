package ports

import (
	"context"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// RoomTypeRepository defines persistence operations for room types.
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	FindByID(ctx context.Context, id string) (*domain.RoomType, error)
	FindByName(ctx context.Context, name string) (*domain.RoomType, error)
	List(ctx context.Context) ([]*domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	Delete(ctx context.Context, id string) error
}
