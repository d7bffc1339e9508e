package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

const collectionArticles = "articles"

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles)}
}

// Create inserts a new article document.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

// FindByID retrieves an article by id.
func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Article
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update writes title, content, and updated_at as a compare-and-swap on the
// updated_at the caller read. Status and published_at are never touched here;
// the publish transition has its own path. A write that matches nothing means
// either the id is unknown or another writer committed first.
func (r *ArticleRepository) Update(ctx context.Context, a *domain.Article, expectedUpdatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": a.ID, "updated_at": expectedUpdatedAt.UTC()}
	update := bson.M{"$set": bson.M{
		"title":      a.Title,
		"content":    a.Content,
		"updated_at": a.UpdatedAt.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, findErr := r.FindByID(ctx, a.ID); findErr != nil {
			return findErr
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes an article document.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// List returns all articles matching the filter in the requested order.
func (r *ArticleRepository) List(ctx context.Context, f ports.ListArticlesFilter) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.AuthorID != "" {
		filter["author_id"] = f.AuthorID
	}

	var sort bson.D
	switch f.Order {
	case ports.OrderCreatedDesc:
		sort = bson.D{{Key: "created_at", Value: -1}}
	default: // OrderPublishedDesc, ties broken by id ascending
		sort = bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: 1}}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var articles []*domain.Article
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Publish performs the draft → published transition as a compare-and-swap:
// the update filter matches only while status is still draft, so of two
// racing publishers exactly one modifies the document.
func (r *ArticleRepository) Publish(ctx context.Context, id string, publishedAt time.Time) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": string(domain.StatusDraft)}
	update := bson.M{"$set": bson.M{
		"status":       string(domain.StatusPublished),
		"published_at": publishedAt.UTC(),
		"updated_at":   publishedAt.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		// Either the id is unknown or another writer already published it.
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return nil, findErr
		}
		return nil, domain.ErrAlreadyPublished
	}

	return r.FindByID(ctx, id)
}

// EnsureIndexes creates necessary indexes on the articles collection.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
