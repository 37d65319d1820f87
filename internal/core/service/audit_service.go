package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/photographyhub/course-platform/internal/api/metrics"
	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the audit
// trail. Failures are surfaced to the dispatcher for logging; they never
// propagate back to the request that produced the event.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, in ports.AuditEventInput) error {
	start := time.Now()

	event := &domain.AuditEvent{
		ActorID:  in.ActorID,
		Role:     in.Role,
		Action:   in.Action,
		Entity:   in.Entity,
		EntityID: in.EntityID,
		At:       in.At,
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record audit event: %w", err)
	}

	metrics.AuditRecordedTotal.WithLabelValues(in.Action).Inc()
	metrics.AuditProcessingDuration.WithLabelValues(in.Action).Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("actor_id", in.ActorID).
		Str("action", in.Action).
		Str("entity", in.Entity).
		Msg("audit event recorded")

	return nil
}
