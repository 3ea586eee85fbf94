package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

type userService struct {
	repo  ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, audit: audit, log: log}
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ChangeRole updates a user's role. Last write wins; the target's existing
// sessions keep their embedded role claim until re-fetch or expiry.
func (s *userService) ChangeRole(ctx context.Context, id, role, actorID string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "user.role_change",
		Resource:   "users",
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.log.Info().Str("user_id", id).Str("role", role).Msg("user role updated")

	return updated, nil
}

// DeleteUser removes the account. Outstanding tokens for the subject fail
// authentication on the next request in the re-fetch configuration.
func (s *userService) DeleteUser(ctx context.Context, id, actorID string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ports.AuditEventInput{
		ActorID:    actorID,
		Action:     "user.delete",
		Resource:   "users",
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.log.Info().Str("user_id", id).Msg("user deleted")

	return nil
}

func (s *userService) record(event ports.AuditEventInput) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
