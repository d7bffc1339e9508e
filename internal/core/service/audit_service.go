package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

type auditService struct {
	events ports.EventRepository
	log    zerolog.Logger
}

// NewAuditService returns an AuditService that appends article lifecycle
// events to the audit trail.
func NewAuditService(events ports.EventRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{events: events, log: log}
}

// Record validates and persists a single lifecycle event.
func (s *auditService) Record(ctx context.Context, e domain.ArticleEvent) error {
	switch e.Action {
	case domain.EventCreated, domain.EventPublished, domain.EventDeleted:
	default:
		return fmt.Errorf("record event: unknown action %q", e.Action)
	}
	if e.ArticleID == "" {
		return fmt.Errorf("record event: missing article id")
	}

	if err := s.events.InsertEvent(ctx, &e); err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	s.log.Debug().
		Str("article_id", e.ArticleID).
		Str("action", string(e.Action)).
		Str("actor_id", e.ActorID).
		Msg("audit event recorded")
	return nil
}
