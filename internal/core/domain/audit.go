package domain

import "time"

// AuditEvent records a single authenticated action for the audit trail.
type AuditEvent struct {
	ActorID  string
	Role     string
	Action   string
	Entity   string
	EntityID string
	At       time.Time
}
