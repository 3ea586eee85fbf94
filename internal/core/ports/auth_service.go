package ports

import (
	"context"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// AuthService implements registration and login use cases.
type AuthService interface {
	// Register creates a user and returns it with a freshly issued token,
	// so registration logs the user straight in.
	Register(ctx context.Context, username, email, password, role string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
