package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewArticle_StartsAsDraft(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := NewArticle("art-1", "Title", "Body", "u1", now)

	if a.Status != StatusDraft {
		t.Errorf("expected status %q, got %q", StatusDraft, a.Status)
	}
	if a.PublishedAt != nil {
		t.Error("new article must not carry a publication timestamp")
	}
	if a.AuthorID != "u1" {
		t.Errorf("expected author u1, got %q", a.AuthorID)
	}
	if !a.CreatedAt.Equal(now) || !a.UpdatedAt.Equal(now) {
		t.Error("timestamps must be set from the supplied clock")
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	if !StatusDraft.CanTransitionTo(StatusPublished) {
		t.Error("draft → published must be allowed")
	}
	if StatusPublished.CanTransitionTo(StatusDraft) {
		t.Error("published is terminal, no unpublish")
	}
	if StatusPublished.CanTransitionTo(StatusPublished) {
		t.Error("no transition is defined from published")
	}
}

func TestMarkPublished_SetsTimestampOnce(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	first := created.Add(time.Hour)
	second := created.Add(2 * time.Hour)

	a := NewArticle("art-1", "Title", "Body", "u1", created)
	if err := a.MarkPublished(first); err != nil {
		t.Fatalf("first publish failed: %v", err)
	}
	if a.Status != StatusPublished {
		t.Fatalf("expected published, got %q", a.Status)
	}
	if a.PublishedAt == nil || !a.PublishedAt.Equal(first) {
		t.Fatalf("expected published_at %v, got %v", first, a.PublishedAt)
	}

	err := a.MarkPublished(second)
	if !errors.Is(err, ErrAlreadyPublished) {
		t.Fatalf("expected ErrAlreadyPublished, got %v", err)
	}
	if !a.PublishedAt.Equal(first) {
		t.Error("re-publish must not re-timestamp")
	}
}

func TestKnownRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleEditor, RoleAuthor} {
		if !KnownRole(r) {
			t.Errorf("%s must be a registered role", r)
		}
	}
	if KnownRole("client") {
		t.Error("unregistered role name accepted")
	}
}

func TestHasRole_ExactMatchOnly(t *testing.T) {
	admin := &User{ID: "u1", Role: RoleAdmin}
	if !admin.HasRole(RoleAdmin) {
		t.Error("admin must satisfy admin check")
	}
	if admin.HasRole(RoleAuthor) {
		t.Error("admin must not implicitly satisfy author check")
	}
}
