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

// BookmarkService обрабатывает бизнес-логику закладок
type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	publisher    infrastructure.MessagePublisher
}

// NewBookmarkService создает новый сервис закладок с внедрением зависимостей
func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	publisher infrastructure.MessagePublisher,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		publisher:    publisher,
	}
}

// Create создает закладку пользователя на фильм.
// Пара (пользователь, фильм) может иметь только одну активную закладку:
// повторное создание без удаления отклоняется. После мягкого удаления
// создается новый документ с новым идентификатором, старый не оживает.
func (s *BookmarkService) Create(ctx context.Context, userID, filmID string) (string, error) {
	_, err := s.bookmarkRepo.FindActive(ctx, userID, filmID)
	if err == nil {
		return "", ErrAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check bookmark: %w", err)
	}

	bookmark := &entity.Bookmark{
		UserID: userID,
		FilmID: filmID,
	}
	if err := s.bookmarkRepo.Insert(ctx, bookmark); err != nil {
		return "", fmt.Errorf("failed to create bookmark: %w", err)
	}

	metrics.BookmarksCreated.Inc()
	publishUGCEvent(ctx, s.publisher, EventBookmarkCreated, bookmark.ID, userID, filmID)

	return bookmark.ID, nil
}

// ListByUser получает все активные закладки пользователя
func (s *BookmarkService) ListByUser(ctx context.Context, userID string) ([]entity.Bookmark, error) {
	bookmarks, err := s.bookmarkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	return bookmarks, nil
}

// Delete мягко удаляет закладку пользователя
func (s *BookmarkService) Delete(ctx context.Context, userID, filmID string) error {
	err := s.bookmarkRepo.SoftDelete(ctx, userID, filmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return nil
}
