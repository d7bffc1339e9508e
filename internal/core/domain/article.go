package domain

import (
	"errors"
	"time"
)

// ArticleStatus represents the lifecycle state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// validTransitions defines the allowed state machine transitions.
// published is terminal: there is no unpublish.
var validTransitions = map[ArticleStatus][]ArticleStatus{
	StatusDraft: {StatusPublished},
}

var ErrArticleNotFound = errors.New("article not found")
var ErrAlreadyPublished = errors.New("article already published")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidInput = errors.New("invalid input")
var ErrConflict = errors.New("concurrent modification detected")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ArticleStatus) CanTransitionTo(next ArticleStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Article is the core aggregate root.
type Article struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Content     string        `json:"content" bson:"content"`
	Status      ArticleStatus `json:"status" bson:"status"`
	AuthorID    string        `json:"author_id" bson:"author_id"`
	PublishedAt *time.Time    `json:"published_at,omitempty" bson:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// NewArticle builds a draft article owned by authorID. Status and ownership
// are fixed here: every article starts as a draft and author_id is never
// reassigned afterwards.
func NewArticle(id, title, content, authorID string, now time.Time) *Article {
	return &Article{
		ID:        id,
		Title:     title,
		Content:   content,
		Status:    StatusDraft,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkPublished applies the draft → published transition in memory, setting
// the publication timestamp exactly once. A second call fails with
// ErrAlreadyPublished and leaves the original timestamp untouched.
func (a *Article) MarkPublished(now time.Time) error {
	if !a.Status.CanTransitionTo(StatusPublished) {
		return ErrAlreadyPublished
	}
	a.Status = StatusPublished
	a.PublishedAt = &now
	a.UpdatedAt = now
	return nil
}
