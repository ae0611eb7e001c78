package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/pkg/metrics"
)

type reviewRepository struct {
	collection     *mongo.Collection
	likeCollection string
}

// NewReviewRepository создает новый репозиторий рецензий.
// Имя коллекции лайков нужно для $lookup при чтении рецензий.
func NewReviewRepository(db *mongo.Database, collectionName, likeCollectionName string) ReviewRepository {
	collection := db.Collection(collectionName)
	ensureIndexes(collection)

	return &reviewRepository{
		collection:     collection,
		likeCollection: likeCollectionName,
	}
}

// Insert создает новую рецензию в MongoDB
func (r *reviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	timer := metrics.NewMongoTimer(metrics.MongoOpInsert, r.collection.Name())
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	review.ID = uuid.NewString()
	review.CreatedAt = now
	review.UpdatedAt = now
	review.IsDeleted = false

	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		metrics.RecordMongoError(metrics.MongoOpInsert, r.collection.Name())
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

// FindActive получает активную рецензию пары (пользователь, фильм)
func (r *reviewRepository) FindActive(ctx context.Context, userID, filmID string) (*entity.Review, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpFind, r.collection.Name())
	defer timer.ObserveDuration()

	var review entity.Review
	err := r.collection.FindOne(ctx, byOwner(userID, filmID)).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		metrics.RecordMongoError(metrics.MongoOpFind, r.collection.Name())
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return &review, nil
}

// ListByUserWithRating получает активные рецензии пользователя с оценкой фильма
func (r *reviewRepository) ListByUserWithRating(ctx context.Context, userID string) ([]entity.ReviewWithRating, error) {
	return r.listWithRating(ctx, bson.M{"user_id": userID})
}

// ListByFilmWithRating получает активные рецензии на фильм с оценкой фильма
func (r *reviewRepository) ListByFilmWithRating(ctx context.Context, filmID string) ([]entity.ReviewWithRating, error) {
	return r.listWithRating(ctx, bson.M{"film_id": filmID})
}

// listWithRating выполняет join-агрегацию рецензий с коллекцией лайков.
//
// $lookup сознательно связывает по film_id без учета user_id: рецензия
// показывается вместе с оценкой фильма, кем бы она ни была поставлена.
// Мягко удаленные лайки в join не попадают. Внешний характер join
// сохраняется через preserveNullAndEmptyArrays: рецензия фильма без оценок
// возвращается с rating = null.
func (r *reviewRepository) listWithRating(ctx context.Context, filter bson.M) ([]entity.ReviewWithRating, error) {
	timer := metrics.NewMongoTimer(metrics.MongoOpAggregate, r.collection.Name())
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted(filter)}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": r.likeCollection,
			"let":  bson.M{"film": "$film_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr":      bson.M{"$eq": bson.A{"$film_id", "$$film"}},
					"is_deleted": false,
				}},
			},
			"as": "likes",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$likes",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"user_id": 1,
			"film_id": 1,
			"text":    1,
			"rating":  "$likes.rating",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpAggregate, r.collection.Name())
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []entity.ReviewWithRating
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

// UpdateText перезаписывает текст активной рецензии и обновляет updated_at
func (r *reviewRepository) UpdateText(ctx context.Context, userID, filmID, text string) error {
	timer := metrics.NewMongoTimer(metrics.MongoOpUpdate, r.collection.Name())
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"text":       text,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, byOwner(userID, filmID), update)
	if err != nil {
		metrics.RecordMongoError(metrics.MongoOpUpdate, r.collection.Name())
		return fmt.Errorf("failed to update review: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// SoftDelete помечает рецензию удаленной и обновляет updated_at
func (r *reviewRepository) SoftDelete(ctx context.Context, userID, filmID string) error {
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
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
