package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/internal/app/ugc/service"
)

type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) Create(ctx context.Context, userID, filmID string) (string, error) {
	args := m.Called(ctx, userID, filmID)
	return args.String(0), args.Error(1)
}

func (m *MockBookmarkService) ListByUser(ctx context.Context, userID string) ([]entity.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) Delete(ctx context.Context, userID, filmID string) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

// setupBookmarkRouter собирает маршруты закладок с подставленным user_id
func setupBookmarkRouter(bookmarkService BookmarkServiceInterface, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if userID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}

	h := NewBookmarkHandler(bookmarkService)
	router.POST("/api/v1/bookmarks", h.CreateBookmark)
	router.GET("/api/v1/bookmarks", h.GetBookmarks)
	router.DELETE("/api/v1/bookmarks", h.DeleteBookmark)

	return router
}

func TestCreateBookmarkHandler_Created(t *testing.T) {
	userID := uuid.NewString()
	filmID := uuid.NewString()
	newID := uuid.NewString()

	mockService := new(MockBookmarkService)
	mockService.On("Create", mock.Anything, userID, filmID).Return(newID, nil)

	router := setupBookmarkRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookmarks?film_id="+filmID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response entity.NewDocumentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, newID, response.ID)
}

func TestCreateBookmarkHandler_Conflict(t *testing.T) {
	userID := uuid.NewString()
	filmID := uuid.NewString()

	mockService := new(MockBookmarkService)
	mockService.On("Create", mock.Anything, userID, filmID).Return("", service.ErrAlreadyExists)

	router := setupBookmarkRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookmarks?film_id="+filmID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookmarkHandler_InvalidFilmID(t *testing.T) {
	mockService := new(MockBookmarkService)
	router := setupBookmarkRouter(mockService, uuid.NewString())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookmarks?film_id=not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookmarkHandler_Unauthorized(t *testing.T) {
	mockService := new(MockBookmarkService)
	router := setupBookmarkRouter(mockService, "")

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookmarks?film_id="+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBookmarksHandler_Success(t *testing.T) {
	userID := uuid.NewString()
	bookmarks := []entity.Bookmark{
		{ID: uuid.NewString(), UserID: userID, FilmID: uuid.NewString(), CreatedAt: time.Now().UTC()},
		{ID: uuid.NewString(), UserID: userID, FilmID: uuid.NewString(), CreatedAt: time.Now().UTC()},
	}

	mockService := new(MockBookmarkService)
	mockService.On("ListByUser", mock.Anything, userID).Return(bookmarks, nil)

	router := setupBookmarkRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookmarks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []entity.BookmarkOutput
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, bookmarks[0].FilmID, response[0].FilmID)
}

func TestGetBookmarksHandler_EmptyList(t *testing.T) {
	userID := uuid.NewString()

	mockService := new(MockBookmarkService)
	mockService.On("ListByUser", mock.Anything, userID).Return([]entity.Bookmark{}, nil)

	router := setupBookmarkRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookmarks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestDeleteBookmarkHandler_NotFound(t *testing.T) {
	userID := uuid.NewString()
	filmID := uuid.NewString()

	mockService := new(MockBookmarkService)
	mockService.On("Delete", mock.Anything, userID, filmID).Return(service.ErrNotFound)

	router := setupBookmarkRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/bookmarks?film_id="+filmID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBookmarkHandler_Success(t *testing.T) {
	userID := uuid.NewString()
	filmID := uuid.NewString()

	mockService := new(MockBookmarkService)
	mockService.On("Delete", mock.Anything, userID, filmID).Return(nil)

	router := setupBookmarkRouter(mockService, userID)

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/bookmarks?film_id="+filmID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
