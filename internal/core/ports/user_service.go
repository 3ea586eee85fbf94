package ports

import (
	"context"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// UserService defines admin operations over user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ChangeRole(ctx context.Context, id, role, actorID string) (*domain.User, error)
	DeleteUser(ctx context.Context, id, actorID string) error
}
