package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/internal/app/ugc/infrastructure"
	"ugcservice/internal/app/ugc/repository"
	"ugcservice/pkg/metrics"
)

// ReviewService обрабатывает бизнес-логику рецензий.
// Чтение рецензий обогащается оценкой фильма из коллекции лайков.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	publisher  infrastructure.MessagePublisher
}

// NewReviewService создает новый сервис рецензий с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	publisher infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

// Create создает рецензию пользователя на фильм.
// Длина текста проверяется до обращения к хранилищу, ровно 5000 символов
// еще допустимо.
func (s *ReviewService) Create(ctx context.Context, userID string, input *entity.ReviewInput) (string, error) {
	if utf8.RuneCountInString(input.Text) > maxReviewTextLength {
		return "", ErrTextTooLong
	}

	_, err := s.reviewRepo.FindActive(ctx, userID, input.FilmID)
	if err == nil {
		return "", ErrAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check review: %w", err)
	}

	review := &entity.Review{
		UserID: userID,
		FilmID: input.FilmID,
		Text:   input.Text,
	}
	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return "", fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	publishUGCEvent(ctx, s.publisher, EventReviewCreated, review.ID, userID, input.FilmID)

	return review.ID, nil
}

// ListByUser получает рецензии пользователя с оценками фильмов
func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithRating, error) {
	reviews, err := s.reviewRepo.ListByUserWithRating(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reviews: %w", err)
	}

	return reviews, nil
}

// ListByFilm получает все рецензии на фильм с оценками
func (s *ReviewService) ListByFilm(ctx context.Context, filmID string) ([]entity.ReviewWithRating, error) {
	reviews, err := s.reviewRepo.ListByFilmWithRating(ctx, filmID)
	if err != nil {
		return nil, fmt.Errorf("failed to get film reviews: %w", err)
	}

	return reviews, nil
}

// Update перезаписывает текст существующей активной рецензии
func (s *ReviewService) Update(ctx context.Context, userID string, input *entity.ReviewInput) error {
	if utf8.RuneCountInString(input.Text) > maxReviewTextLength {
		return ErrTextTooLong
	}

	err := s.reviewRepo.UpdateText(ctx, userID, input.FilmID, input.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

// Delete мягко удаляет рецензию пользователя
func (s *ReviewService) Delete(ctx context.Context, userID, filmID string) error {
	err := s.reviewRepo.SoftDelete(ctx, userID, filmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
