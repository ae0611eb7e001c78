package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/internal/app/ugc/service"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, userID string, input *entity.ReviewInput) (string, error) {
	args := m.Called(ctx, userID, input)
	return args.String(0), args.Error(1)
}

func (m *MockReviewService) ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithRating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReviewWithRating), args.Error(1)
}

func (m *MockReviewService) ListByFilm(ctx context.Context, filmID string) ([]entity.ReviewWithRating, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReviewWithRating), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, userID string, input *entity.ReviewInput) error {
	args := m.Called(ctx, userID, input)
	return args.Error(0)
}

func (m *MockReviewService) Delete(ctx context.Context, userID, filmID string) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

func setupReviewRouter(reviewService ReviewServiceInterface, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if userID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}

	h := NewReviewHandler(reviewService)
	router.POST("/api/v1/reviews", h.CreateReview)
	router.GET("/api/v1/reviews", h.GetUserReviews)
	router.GET("/api/v1/reviews/:film_id/all", h.GetFilmReviews)
	router.PATCH("/api/v1/reviews", h.UpdateReview)
	router.DELETE("/api/v1/reviews", h.DeleteReview)

	return router
}

func TestCreateReviewHandler_Created(t *testing.T) {
	userID := uuid.NewString()
	newID := uuid.NewString()
	input := entity.ReviewInput{FilmID: uuid.NewString(), Text: "great movie"}

	mockService := new(MockReviewService)
	mockService.On("Create", mock.Anything, userID, mock.AnythingOfType("*entity.ReviewInput")).Return(newID, nil)

	router := setupReviewRouter(mockService, userID)
	w := postJSON(router, http.MethodPost, "/api/v1/reviews", input)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response entity.NewDocumentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, newID, response.ID)
}

func TestCreateReviewHandler_Conflict(t *testing.T) {
	userID := uuid.NewString()
	input := entity.ReviewInput{FilmID: uuid.NewString(), Text: "great movie"}

	mockService := new(MockReviewService)
	mockService.On("Create", mock.Anything, userID, mock.Anything).Return("", service.ErrAlreadyExists)

	router := setupReviewRouter(mockService, userID)
	w := postJSON(router, http.MethodPost, "/api/v1/reviews", input)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// Текст длиннее 5000 символов отсекается валидатором до вызова сервиса
func TestCreateReviewHandler_TextTooLong(t *testing.T) {
	mockService := new(MockReviewService)
	router := setupReviewRouter(mockService, uuid.NewString())

	input := entity.ReviewInput{FilmID: uuid.NewString(), Text: strings.Repeat("a", 5001)}
	w := postJSON(router, http.MethodPost, "/api/v1/reviews", input)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUserReviewsHandler_Success(t *testing.T) {
	userID := uuid.NewString()
	rating := 9
	reviews := []entity.ReviewWithRating{
		{UserID: userID, FilmID: uuid.NewString(), Text: "great movie", Rating: &rating},
	}

	mockService := new(MockReviewService)
	mockService.On("ListByUser", mock.Anything, userID).Return(reviews, nil)

	router := setupReviewRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []entity.ReviewWithRating
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, 9, *response[0].Rating)
}

// Рецензия фильма без единой оценки приходит с rating = null
func TestGetFilmReviewsHandler_NullRating(t *testing.T) {
	filmID := uuid.NewString()
	reviews := []entity.ReviewWithRating{
		{UserID: uuid.NewString(), FilmID: filmID, Text: "no ratings yet", Rating: nil},
	}

	mockService := new(MockReviewService)
	mockService.On("ListByFilm", mock.Anything, filmID).Return(reviews, nil)

	router := setupReviewRouter(mockService, uuid.NewString())

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reviews/"+filmID+"/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Nil(t, response[0]["rating"])
}

func TestGetFilmReviewsHandler_EmptyList(t *testing.T) {
	filmID := uuid.NewString()

	mockService := new(MockReviewService)
	mockService.On("ListByFilm", mock.Anything, filmID).Return([]entity.ReviewWithRating{}, nil)

	router := setupReviewRouter(mockService, uuid.NewString())

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reviews/"+filmID+"/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateReviewHandler_NotFound(t *testing.T) {
	userID := uuid.NewString()
	input := entity.ReviewInput{FilmID: uuid.NewString(), Text: "updated"}

	mockService := new(MockReviewService)
	mockService.On("Update", mock.Anything, userID, mock.Anything).Return(service.ErrNotFound)

	router := setupReviewRouter(mockService, userID)
	w := postJSON(router, http.MethodPatch, "/api/v1/reviews", input)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReviewHandler_NotFound(t *testing.T) {
	userID := uuid.NewString()
	filmID := uuid.NewString()

	mockService := new(MockReviewService)
	mockService.On("Delete", mock.Anything, userID, filmID).Return(service.ErrNotFound)

	router := setupReviewRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/reviews?film_id="+filmID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
