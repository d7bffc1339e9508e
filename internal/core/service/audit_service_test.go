package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

type stubEventRepo struct {
	mu        sync.Mutex
	events    []*domain.ArticleEvent
	insertErr error
}

func (r *stubEventRepo) InsertEvent(_ context.Context, e *domain.ArticleEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo, discardLogger)

	err := svc.Record(context.Background(), domain.ArticleEvent{
		ArticleID: "art-1",
		Action:    domain.EventPublished,
		ActorID:   "u3",
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Action != domain.EventPublished {
		t.Fatalf("event not persisted: %+v", repo.events)
	}
}

func TestAuditService_Record_RejectsMalformedEvents(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo, discardLogger)

	if err := svc.Record(context.Background(), domain.ArticleEvent{ArticleID: "art-1", Action: "archived"}); err == nil {
		t.Fatal("expected error for unknown action")
	}
	if err := svc.Record(context.Background(), domain.ArticleEvent{Action: domain.EventCreated}); err == nil {
		t.Fatal("expected error for missing article id")
	}
	if len(repo.events) != 0 {
		t.Fatal("malformed events must not be persisted")
	}
}
