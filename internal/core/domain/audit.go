package domain

import "time"

// AuditEvent records a single administrative action for the audit trail.
type AuditEvent struct {
	ActorID    string
	Actor      string
	Action     string // e.g. "room.create", "user.role_change"
	Resource   string // collection the action touched
	ResourceID string
	Timestamp  time.Time
}
