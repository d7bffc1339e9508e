package ports

import (
	"context"
	"time"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

// UpdateArticleInput is a partial patch: nil fields are left unchanged,
// supplied fields must be non-empty.
type UpdateArticleInput struct {
	Title   *string
	Content *string
}

// AuthorView is the owner summary embedded in article payloads.
type AuthorView struct {
	ID   string
	Name string
	Role string
}

// ArticleView is the caller-visible projection of an article.
type ArticleView struct {
	ID          string
	Title       string
	Content     string
	Status      string
	Author      AuthorView
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ArticleService defines the use-case operations on articles. Every call
// takes the authenticated actor explicitly; there is no ambient request
// identity.
type ArticleService interface {
	// ListPublished returns published articles only, most recently
	// published first.
	ListPublished(ctx context.Context, actor *domain.User) ([]ArticleView, error)
	// ListOwn returns all of the actor's articles including drafts,
	// most recently created first. This is the only listing that exposes
	// unpublished content.
	ListOwn(ctx context.Context, actor *domain.User) ([]ArticleView, error)
	Get(ctx context.Context, actor *domain.User, id string) (*ArticleView, error)
	Create(ctx context.Context, actor *domain.User, title, content string) (*ArticleView, error)
	Update(ctx context.Context, actor *domain.User, id string, patch UpdateArticleInput) (*ArticleView, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	Publish(ctx context.Context, actor *domain.User, id string) (*ArticleView, error)
}
