package domain

import "time"

// EventAction identifies the lifecycle action recorded by an ArticleEvent.
type EventAction string

const (
	EventCreated   EventAction = "created"
	EventPublished EventAction = "published"
	EventDeleted   EventAction = "deleted"
)

// ArticleEvent is an audit-trail record of a lifecycle action applied to
// an article.
type ArticleEvent struct {
	ArticleID string
	Action    EventAction
	ActorID   string
	Timestamp time.Time
}
