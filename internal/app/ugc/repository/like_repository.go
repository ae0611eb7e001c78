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

type likeRepository struct {
	collection *mongo.Collection
}

// NewLikeRepository создает новый репозиторий оценок
func NewLikeRepository(db *mongo.Database, collectionName string) LikeRepository {
	collection := db.Collection(collectionName)
	ensureIndexes(collection)

	return &likeRepository{
		collection: collection,
	}
}

// Insert создает новую оценку в MongoDB
func (r *likeRepository) Insert(ctx context.Context, like *entity.Like) error {
	timer := metrics.NewMongoTimer(metrics.MongoOpInsert, r.collection.Name())
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	like.ID = uuid.NewString()
	like.CreatedAt = now
	like.UpdatedAt = now
	like.IsDeleted = false

	if _, err := r.collection.InsertOne(ctx, like); err != nil {
		metrics.RecordMongoError(metrics.MongoOpInsert, r.collection.Name())
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

// FindActive получает активную оценку пары (пользователь, фильм)
func (r *likeRepository) FindActive(ctx context.Context, userID, filmID string) (*entity.Like, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpFind, r.collection.Name())
	defer timer.ObserveDuration()

	var like entity.Like
	err := r.collection.FindOne(ctx, byOwner(userID, filmID)).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		metrics.RecordMongoError(metrics.MongoOpFind, r.collection.Name())
		return nil, fmt.Errorf("failed to find like: %w", err)
	}

	return &like, nil
}

// ListByUser получает все активные оценки пользователя
func (r *likeRepository) ListByUser(ctx context.Context, userID string) ([]entity.Like, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpFind, r.collection.Name())
	defer timer.ObserveDuration()

	filter := notDeleted(bson.M{"user_id": userID})
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpFind, r.collection.Name())
		return nil, fmt.Errorf("failed to find likes: %w", err)
	}
	defer cursor.Close(ctx)

	var likes []entity.Like
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}

	return likes, nil
}

// CountByFilm возвращает количество активных оценок фильма.
// Для фильма без оценок это просто ноль, а не ошибка.
func (r *likeRepository) CountByFilm(ctx context.Context, filmID string) (int64, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpCount, r.collection.Name())
	defer timer.ObserveDuration()

	count, err := r.collection.CountDocuments(ctx, notDeleted(bson.M{"film_id": filmID}))
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpCount, r.collection.Name())
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

// AverageByFilm считает среднюю оценку фильма по активным лайкам.
// Среднее от нуля документов не определено: если активных оценок нет,
// агрегация не возвращает строк и метод отдает ErrNotFound, а не 0.
func (r *likeRepository) AverageByFilm(ctx context.Context, filmID string) (float64, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpAggregate, r.collection.Name())
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted(bson.M{"film_id": filmID})}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"avg_rating": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpAggregate, r.collection.Name())
		return 0, fmt.Errorf("failed to aggregate average rating: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgRating float64 `bson:"avg_rating"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode average rating: %w", err)
	}

	if len(results) == 0 {
		return 0, ErrNotFound
	}

	return results[0].AvgRating, nil
}

// UpdateRating перезаписывает оценку активного лайка и обновляет updated_at
func (r *likeRepository) UpdateRating(ctx context.Context, userID, filmID string, rating int) error {
	timer := metrics.NewMongoTimer(metrics.MongoOpUpdate, r.collection.Name())
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"rating":     rating,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, byOwner(userID, filmID), update)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpUpdate, r.collection.Name())
		return fmt.Errorf("failed to update like: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// SoftDelete помечает оценку удаленной и обновляет updated_at
func (r *likeRepository) SoftDelete(ctx context.Context, userID, filmID string) error {
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
		return fmt.Errorf("failed to delete like: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
