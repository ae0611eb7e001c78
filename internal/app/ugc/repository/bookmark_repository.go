package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/pkg/metrics"
)

type bookmarkRepository struct {
	collection *mongo.Collection
}

// NewBookmarkRepository создает новый репозиторий закладок
func NewBookmarkRepository(db *mongo.Database, collectionName string) BookmarkRepository {
	collection := db.Collection(collectionName)
	ensureIndexes(collection)

	return &bookmarkRepository{
		collection: collection,
	}
}

// Insert создает новую закладку в MongoDB.
// Идентификатор и временные метки выставляются здесь, UTC.
func (r *bookmarkRepository) Insert(ctx context.Context, bookmark *entity.Bookmark) error {
	timer := metrics.NewMongoTimer(metrics.MongoOpInsert, r.collection.Name())
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	bookmark.ID = uuid.NewString()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now
	bookmark.IsDeleted = false

	if _, err := r.collection.InsertOne(ctx, bookmark); err != nil {
		metrics.RecordMongoError(metrics.MongoOpInsert, r.collection.Name())
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}

	return nil
}

// FindActive получает активную закладку пары (пользователь, фильм)
func (r *bookmarkRepository) FindActive(ctx context.Context, userID, filmID string) (*entity.Bookmark, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpFind, r.collection.Name())
	defer timer.ObserveDuration()

	var bookmark entity.Bookmark
	err := r.collection.FindOne(ctx, byOwner(userID, filmID)).Decode(&bookmark)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		metrics.RecordMongoError(metrics.MongoOpFind, r.collection.Name())
		return nil, fmt.Errorf("failed to find bookmark: %w", err)
	}

	return &bookmark, nil
}

// ListByUser получает все активные закладки пользователя
func (r *bookmarkRepository) ListByUser(ctx context.Context, userID string) ([]entity.Bookmark, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpFind, r.collection.Name())
	defer timer.ObserveDuration()

	filter := notDeleted(bson.M{"user_id": userID})
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpFind, r.collection.Name())
		return nil, fmt.Errorf("failed to find bookmarks: %w", err)
	}
	defer cursor.Close(ctx)

	var bookmarks []entity.Bookmark
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks: %w", err)
	}

	return bookmarks, nil
}

// SoftDelete помечает закладку удаленной и обновляет updated_at.
// Физического удаления нет: документ остается в коллекции навсегда.
func (r *bookmarkRepository) SoftDelete(ctx context.Context, userID, filmID string) error {
	timer := metrics.NewMongoTimer(metrics.MongoOpUpdate, r.collection.Name())
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"is_deleted": true,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, byOwner(userID, filmID), update)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpUpdate, r.collection.Name())
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
