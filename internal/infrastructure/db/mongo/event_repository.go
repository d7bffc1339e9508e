package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

const collectionEvents = "article_events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{db: db}
}

// InsertEvent persists a lifecycle event to the article_events audit collection.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.ArticleEvent) error {
	doc := bson.M{
		"article_id":  event.ArticleID,
		"action":      string(event.Action),
		"actor_id":    event.ActorID,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(collectionEvents).InsertOne(ctx, doc)
	return err
}
