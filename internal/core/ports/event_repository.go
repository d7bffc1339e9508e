package ports

import (
	"context"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

// EventRepository persists article lifecycle events to the audit trail.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.ArticleEvent) error
}

// AuditService processes article lifecycle events off the request path.
type AuditService interface {
	Record(ctx context.Context, event domain.ArticleEvent) error
}
