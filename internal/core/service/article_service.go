package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-system/internal/core/authz"
	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

// FeedCache abstracts the published-feed cache (Redis). A nil slice from
// Get means miss. Cache failures are never fatal to a request.
type FeedCache interface {
	Get(ctx context.Context) ([]ports.ArticleView, error)
	Set(ctx context.Context, items []ports.ArticleView) error
	Invalidate(ctx context.Context) error
}

// AuditNotifier hands lifecycle events to the audit pipeline without
// blocking the request path.
type AuditNotifier interface {
	Enqueue(event domain.ArticleEvent)
}

// ArticleService orchestrates article operations: every mutating call is
// gated by the authorization engine before any state changes.
type ArticleService struct {
	repo  ports.ArticleRepository
	users ports.UserRepository
	cache FeedCache
	audit AuditNotifier
	log   zerolog.Logger
	now   func() time.Time
}

func NewArticleService(
	repo ports.ArticleRepository,
	users ports.UserRepository,
	cache FeedCache,
	audit AuditNotifier,
	logger zerolog.Logger,
) *ArticleService {
	return &ArticleService{
		repo:  repo,
		users: users,
		cache: cache,
		audit: audit,
		log:   logger,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ListPublished returns published articles, most recently published first,
// with ties broken by id. Results are served from the feed cache when warm.
func (s *ArticleService) ListPublished(ctx context.Context, actor *domain.User) ([]ports.ArticleView, error) {
	if !authz.Can(actor, authz.ActionViewAny, nil) {
		return nil, domain.ErrForbidden
	}

	if cached, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("feed cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	articles, err := s.repo.List(ctx, ports.ListArticlesFilter{
		Status: domain.StatusPublished,
		Order:  ports.OrderPublishedDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}

	views := s.toViews(ctx, articles)
	if err := s.cache.Set(ctx, views); err != nil {
		s.log.Warn().Err(err).Msg("feed cache write failed")
	}
	return views, nil
}

// ListOwn returns every article owned by the actor, drafts included,
// most recently created first.
func (s *ArticleService) ListOwn(ctx context.Context, actor *domain.User) ([]ports.ArticleView, error) {
	articles, err := s.repo.List(ctx, ports.ListArticlesFilter{
		AuthorID: actor.ID,
		Order:    ports.OrderCreatedDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("list own: %w", err)
	}
	return s.toViews(ctx, articles), nil
}

// Get returns a single article. Drafts are visible to their owner only.
func (s *ArticleService) Get(ctx context.Context, actor *domain.User, id string) (*ports.ArticleView, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionView, article) {
		return nil, domain.ErrForbidden
	}
	view := s.toView(ctx, article, nil)
	return &view, nil
}

// Create produces a draft article owned by the actor.
func (s *ArticleService) Create(ctx context.Context, actor *domain.User, title, content string) (*ports.ArticleView, error) {
	if !authz.Can(actor, authz.ActionCreate, nil) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidInput)
	}

	article := domain.NewArticle(generateArticleID(), title, content, actor.ID, s.now())
	if err := s.repo.Create(ctx, article); err != nil {
		s.log.Error().Err(err).Msg("failed to create article")
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.audit.Enqueue(domain.ArticleEvent{
		ArticleID: article.ID,
		Action:    domain.EventCreated,
		ActorID:   actor.ID,
		Timestamp: article.CreatedAt,
	})
	s.log.Info().Str("article_id", article.ID).Str("author_id", actor.ID).Msg("article created")

	view := s.toView(ctx, article, map[string]*domain.User{actor.ID: actor})
	return &view, nil
}

// Update applies a partial patch to an article owned by the actor.
// Fields absent from the patch are left unchanged; supplied fields must be
// non-empty. Publish state does not affect the ownership rule: an owner may
// keep editing after publication.
func (s *ArticleService) Update(ctx context.Context, actor *domain.User, id string, patch ports.UpdateArticleInput) (*ports.ArticleView, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionUpdate, article) {
		return nil, domain.ErrForbidden
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
		}
		article.Title = *patch.Title
	}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidInput)
		}
		article.Content = *patch.Content
	}
	asRead := article.UpdatedAt
	article.UpdatedAt = s.now()

	// CAS on the snapshot's updated_at: a publish that commits between our
	// read and this write loses nothing, the stale writer gets ErrConflict.
	if err := s.repo.Update(ctx, article, asRead); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	// A published article may have changed content; drop the cached feed.
	if article.Status == domain.StatusPublished {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("feed cache invalidation failed")
		}
	}

	view := s.toView(ctx, article, map[string]*domain.User{actor.ID: actor})
	return &view, nil
}

// Delete removes an article unconditionally. Admin-gated, no ownership check.
func (s *ArticleService) Delete(ctx context.Context, actor *domain.User, id string) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Can(actor, authz.ActionDelete, article) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("feed cache invalidation failed")
	}
	s.audit.Enqueue(domain.ArticleEvent{
		ArticleID: id,
		Action:    domain.EventDeleted,
		ActorID:   actor.ID,
		Timestamp: s.now(),
	})
	s.log.Info().Str("article_id", id).Str("actor_id", actor.ID).Msg("article deleted")
	return nil
}

// Publish transitions a draft to published. The authorization check and
// the transition are evaluated against the same stored snapshot: the
// repository write is a compare-and-swap on status, so of two racing
// publishers exactly one wins and the other sees ErrAlreadyPublished.
func (s *ArticleService) Publish(ctx context.Context, actor *domain.User, id string) (*ports.ArticleView, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionPublish, article) {
		return nil, domain.ErrForbidden
	}
	if !article.Status.CanTransitionTo(domain.StatusPublished) {
		return nil, domain.ErrAlreadyPublished
	}

	published, err := s.repo.Publish(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("feed cache invalidation failed")
	}
	s.audit.Enqueue(domain.ArticleEvent{
		ArticleID: published.ID,
		Action:    domain.EventPublished,
		ActorID:   actor.ID,
		Timestamp: *published.PublishedAt,
	})
	s.log.Info().
		Str("article_id", published.ID).
		Str("actor_id", actor.ID).
		Time("published_at", *published.PublishedAt).
		Msg("article published")

	view := s.toView(ctx, published, nil)
	return &view, nil
}

// toViews maps articles to their caller-visible projection, resolving each
// distinct author once.
func (s *ArticleService) toViews(ctx context.Context, articles []*domain.Article) []ports.ArticleView {
	authors := make(map[string]*domain.User)
	views := make([]ports.ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, s.toView(ctx, a, authors))
	}
	return views
}

func (s *ArticleService) toView(ctx context.Context, a *domain.Article, authors map[string]*domain.User) ports.ArticleView {
	if authors == nil {
		authors = make(map[string]*domain.User)
	}
	author, ok := authors[a.AuthorID]
	if !ok {
		u, err := s.users.FindByID(ctx, a.AuthorID)
		if err != nil {
			// The article outlived its author record; keep the id.
			s.log.Warn().Err(err).Str("author_id", a.AuthorID).Msg("author lookup failed")
			u = &domain.User{ID: a.AuthorID}
		}
		authors[a.AuthorID] = u
		author = u
	}

	return ports.ArticleView{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Status:      string(a.Status),
		Author:      ports.AuthorView{ID: author.ID, Name: author.Name, Role: author.Role},
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// generateArticleID returns a unique article id: "art-" plus 24 hex chars
// (96 random bits, collision-safe at any realistic volume).
func generateArticleID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("art-%024x", time.Now().UnixNano())
	}
	return fmt.Sprintf("art-%x", b)
}
