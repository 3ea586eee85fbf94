package ports

import (
	"context"
	"time"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

// AuditEventInput is the DTO passed from the service layer to the audit
// dispatcher. Timestamp is set by the emitter, not the writer.
type AuditEventInput struct {
	ActorID    string
	Action     string
	Resource   string
	ResourceID string
	Timestamp  time.Time
}

// AuditRecorder accepts audit events for asynchronous persistence.
// Implementations must never block the request path beyond queue capacity.
type AuditRecorder interface {
	Record(event AuditEventInput)
}

// AuditService processes queued audit events.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
