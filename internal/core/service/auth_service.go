package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt counter (Redis).
type LoginThrottle interface {
	Locked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	throttle LoginThrottle
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	tokens ports.TokenService,
	throttle LoginThrottle,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, audit: audit, log: log}
}

// Register creates a user and issues a token so registration doubles as
// login. Role defaults to guest when omitted.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleGuest
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", err
	}

	s.record(ports.AuditEventInput{
		ActorID:    created.ID,
		Action:     "user.register",
		Resource:   "users",
		ResourceID: created.ID,
		Timestamp:  now,
	})
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")

	return created, token, nil
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords both surface as ErrInvalidCredentials so the response
// does not reveal which field failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		locked, err := s.throttle.Locked(ctx, username)
		if err != nil {
			// Fail open: a throttle store outage must not lock everyone out.
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed")
		} else if locked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle reset failed")
		}
	}

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) record(event ports.AuditEventInput) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
