package service

import (
	"context"
	"errors"
	"fmt"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/internal/app/ugc/infrastructure"
	"ugcservice/internal/app/ugc/repository"
	"ugcservice/pkg/metrics"
)

// LikeService обрабатывает бизнес-логику оценок
type LikeService struct {
	likeRepo  repository.LikeRepository
	publisher infrastructure.MessagePublisher
}

// NewLikeService создает новый сервис оценок с внедрением зависимостей
func NewLikeService(
	likeRepo repository.LikeRepository,
	publisher infrastructure.MessagePublisher,
) *LikeService {
	return &LikeService{
		likeRepo:  likeRepo,
		publisher: publisher,
	}
}

// Create создает оценку фильма пользователем.
// Диапазон проверяется до любого обращения к хранилищу, границы включительно.
func (s *LikeService) Create(ctx context.Context, userID string, input *entity.LikeInput) (string, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return "", ErrInvalidRating
	}

	_, err := s.likeRepo.FindActive(ctx, userID, input.FilmID)
	if err == nil {
		return "", ErrAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check like: %w", err)
	}

	like := &entity.Like{
		UserID: userID,
		FilmID: input.FilmID,
		Rating: input.Rating,
	}
	if err := s.likeRepo.Insert(ctx, like); err != nil {
		return "", fmt.Errorf("failed to create like: %w", err)
	}

	metrics.LikesCreated.Inc()
	metrics.LikesRating.Observe(float64(input.Rating))
	publishUGCEvent(ctx, s.publisher, EventLikeCreated, like.ID, userID, input.FilmID)

	return like.ID, nil
}

// ListByUser получает все активные оценки пользователя
func (s *LikeService) ListByUser(ctx context.Context, userID string) ([]entity.Like, error) {
	likes, err := s.likeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	return likes, nil
}

// CountByFilm возвращает количество активных оценок фильма
func (s *LikeService) CountByFilm(ctx context.Context, filmID string) (int64, error) {
	count, err := s.likeRepo.CountByFilm(ctx, filmID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

// AverageByFilm возвращает среднюю оценку фильма.
// Фильм без активных оценок - ErrNotFound, среднее от нуля записей
// не определено и нулем не подменяется.
func (s *LikeService) AverageByFilm(ctx context.Context, filmID string) (float64, error) {
	avg, err := s.likeRepo.AverageByFilm(ctx, filmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to calculate average rating: %w", err)
	}

	return avg, nil
}

// Update перезаписывает оценку существующего активного лайка
func (s *LikeService) Update(ctx context.Context, userID string, input *entity.LikeInput) error {
	if input.Rating < minRating || input.Rating > maxRating {
		return ErrInvalidRating
	}

	err := s.likeRepo.UpdateRating(ctx, userID, input.FilmID, input.Rating)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update like: %w", err)
	}

	return nil
}

// Delete мягко удаляет оценку пользователя
func (s *LikeService) Delete(ctx context.Context, userID, filmID string) error {
	err := s.likeRepo.SoftDelete(ctx, userID, filmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}

	metrics.LikesDeleted.Inc()

	return nil
}
