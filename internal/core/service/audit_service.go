package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the
// audit repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	event := &domain.AuditEvent{
		ActorID:    in.ActorID,
		Action:     in.Action,
		Resource:   in.Resource,
		ResourceID: in.ResourceID,
		Timestamp:  in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}

	s.log.Debug().
		Str("action", in.Action).
		Str("resource", in.Resource).
		Str("resource_id", in.ResourceID).
		Msg("audit event recorded")

	return nil
}
