package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/internal/app/ugc/service"
)

type BookmarkServiceInterface interface {
	Create(ctx context.Context, userID, filmID string) (string, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Bookmark, error)
	Delete(ctx context.Context, userID, filmID string) error
}

type BookmarkHandler struct {
	bookmarkService BookmarkServiceInterface
	validator       *validator.Validate
}

func NewBookmarkHandler(bookmarkService BookmarkServiceInterface) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
		validator:       validator.New(),
	}
}

// CreateBookmark добавляет закладку на фильм.
// film_id передается query-параметром: у закладки нет других полей.
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filmID := c.Query("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	id, err := h.bookmarkService.Create(c.Request.Context(), userID, filmID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, entity.ErrorResponse{Error: "Bookmark is already added"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to create bookmark"})
		return
	}

	c.JSON(http.StatusCreated, entity.NewDocumentResponse{ID: id})
}

// GetBookmarks возвращает все закладки текущего пользователя
func (h *BookmarkHandler) GetBookmarks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarkService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get bookmarks"})
		return
	}

	response := make([]entity.BookmarkOutput, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		response = append(response, entity.BookmarkOutput{
			FilmID:    bookmark.FilmID,
			CreatedAt: bookmark.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// DeleteBookmark мягко удаляет закладку текущего пользователя
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filmID := c.Query("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	if err := h.bookmarkService.Delete(c.Request.Context(), userID, filmID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Bookmark was not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to delete bookmark"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Bookmark deleted"})
}
