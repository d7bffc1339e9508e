package ports

import (
	"context"
	"time"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

// ListOrder selects the sort applied by ArticleRepository.List.
type ListOrder int

const (
	// OrderPublishedDesc sorts by published_at descending, ties broken by
	// id ascending (insertion order).
	OrderPublishedDesc ListOrder = iota
	// OrderCreatedDesc sorts by created_at descending.
	OrderCreatedDesc
)

// ListArticlesFilter carries the query parameters for listing articles.
type ListArticlesFilter struct {
	Status   domain.ArticleStatus // optional: filter by status
	AuthorID string               // optional: scope to a single owner
	Order    ListOrder
}

// ArticleRepository defines persistence operations for articles. Save is
// atomic per record; FindByID reflects the latest committed write.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) error
	FindByID(ctx context.Context, id string) (*domain.Article, error)

	// Update persists the article's title, content, and updated_at with a
	// compare-and-swap: the write matches only while the stored updated_at
	// still equals expectedUpdatedAt, so a writer holding a stale snapshot
	// never clobbers a concurrent publish. A lost race yields
	// domain.ErrConflict; an unknown id yields domain.ErrArticleNotFound.
	Update(ctx context.Context, a *domain.Article, expectedUpdatedAt time.Time) error

	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListArticlesFilter) ([]*domain.Article, error)

	// Publish transitions the article to published with a compare-and-swap:
	// the write matches only while the stored status is still draft, so two
	// racing calls produce exactly one transition. The loser receives
	// domain.ErrAlreadyPublished; an unknown id yields domain.ErrArticleNotFound.
	Publish(ctx context.Context, id string, publishedAt time.Time) (*domain.Article, error)
}
