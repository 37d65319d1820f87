package ports

import (
	"context"
	"time"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// AuditEventInput is the DTO handed from services to the audit pipeline.
type AuditEventInput struct {
	ActorID  string
	Role     string
	Action   string
	Entity   string
	EntityID string
	At       time.Time
}

// AuditDispatcher accepts audit events for asynchronous recording. Enqueue
// must not block the request path beyond channel-buffer capacity.
type AuditDispatcher interface {
	Enqueue(event AuditEventInput)
}

// AuditService persists a single audit event.
type AuditService interface {
	Record(ctx context.Context, event AuditEventInput) error
}

// AuditRepository stores audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
