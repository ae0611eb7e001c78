package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ugcservice/internal/app/ugc/entity"
)

// MockBookmarkRepository мок для BookmarkRepository
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Insert(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) FindActive(ctx context.Context, userID, filmID string) (*entity.Bookmark, error) {
	args := m.Called(ctx, userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) ListByUser(ctx context.Context, userID string) ([]entity.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) SoftDelete(ctx context.Context, userID, filmID string) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

// MockLikeRepository мок для LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Insert(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) FindActive(ctx context.Context, userID, filmID string) (*entity.Like, error) {
	args := m.Called(ctx, userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockLikeRepository) ListByUser(ctx context.Context, userID string) ([]entity.Like, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Like), args.Error(1)
}

func (m *MockLikeRepository) CountByFilm(ctx context.Context, filmID string) (int64, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) AverageByFilm(ctx context.Context, filmID string) (float64, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockLikeRepository) UpdateRating(ctx context.Context, userID, filmID string, rating int) error {
	args := m.Called(ctx, userID, filmID, rating)
	return args.Error(0)
}

func (m *MockLikeRepository) SoftDelete(ctx context.Context, userID, filmID string) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindActive(ctx context.Context, userID, filmID string) (*entity.Review, error) {
	args := m.Called(ctx, userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByUserWithRating(ctx context.Context, userID string) ([]entity.ReviewWithRating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReviewWithRating), args.Error(1)
}

func (m *MockReviewRepository) ListByFilmWithRating(ctx context.Context, filmID string) ([]entity.ReviewWithRating, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReviewWithRating), args.Error(1)
}

func (m *MockReviewRepository) UpdateText(ctx context.Context, userID, filmID, text string) error {
	args := m.Called(ctx, userID, filmID, text)
	return args.Error(0)
}

func (m *MockReviewRepository) SoftDelete(ctx context.Context, userID, filmID string) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
