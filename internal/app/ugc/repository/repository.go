package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"ugcservice/internal/app/ugc/entity"
)

var (
	// ErrNotFound возвращается, когда активный (не удаленный) документ не найден
	ErrNotFound = errors.New("document not found")
)

// BookmarkRepository определяет методы для работы с закладками в MongoDB
type BookmarkRepository interface {
	Insert(ctx context.Context, bookmark *entity.Bookmark) error
	FindActive(ctx context.Context, userID, filmID string) (*entity.Bookmark, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Bookmark, error)
	SoftDelete(ctx context.Context, userID, filmID string) error
}

// LikeRepository определяет методы для работы с оценками в MongoDB
type LikeRepository interface {
	Insert(ctx context.Context, like *entity.Like) error
	FindActive(ctx context.Context, userID, filmID string) (*entity.Like, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Like, error)
	CountByFilm(ctx context.Context, filmID string) (int64, error)
	AverageByFilm(ctx context.Context, filmID string) (float64, error)
	UpdateRating(ctx context.Context, userID, filmID string, rating int) error
	SoftDelete(ctx context.Context, userID, filmID string) error
}

// ReviewRepository определяет методы для работы с рецензиями в MongoDB
type ReviewRepository interface {
	Insert(ctx context.Context, review *entity.Review) error
	FindActive(ctx context.Context, userID, filmID string) (*entity.Review, error)
	ListByUserWithRating(ctx context.Context, userID string) ([]entity.ReviewWithRating, error)
	ListByFilmWithRating(ctx context.Context, filmID string) ([]entity.ReviewWithRating, error)
	UpdateText(ctx context.Context, userID, filmID, text string) error
	SoftDelete(ctx context.Context, userID, filmID string) error
}

// notDeleted дополняет фильтр условием "не удален".
// Все запросы на чтение обязаны проходить через этот хелпер:
// мягко удаленные документы не должны просачиваться в выборки.
func notDeleted(filter bson.M) bson.M {
	filter["is_deleted"] = false
	return filter
}

// byOwner - фильтр активного документа по паре (пользователь, фильм)
func byOwner(userID, filmID string) bson.M {
	return notDeleted(bson.M{"user_id": userID, "film_id": filmID})
}
