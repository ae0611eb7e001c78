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

type LikeServiceInterface interface {
	Create(ctx context.Context, userID string, input *entity.LikeInput) (string, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Like, error)
	CountByFilm(ctx context.Context, filmID string) (int64, error)
	AverageByFilm(ctx context.Context, filmID string) (float64, error)
	Update(ctx context.Context, userID string, input *entity.LikeInput) error
	Delete(ctx context.Context, userID, filmID string) error
}

type LikeHandler struct {
	likeService LikeServiceInterface
	validator   *validator.Validate
}

func NewLikeHandler(likeService LikeServiceInterface) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
		validator:   validator.New(),
	}
}

// CreateLike добавляет оценку фильма от текущего пользователя
func (h *LikeHandler) CreateLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input entity.LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	id, err := h.likeService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyExists):
			c.JSON(http.StatusConflict, entity.ErrorResponse{Error: "The like already exists"})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Rating must be between 0 and 10"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to create like"})
		}
		return
	}

	c.JSON(http.StatusCreated, entity.NewDocumentResponse{ID: id})
}

// GetLikes возвращает все оценки текущего пользователя
func (h *LikeHandler) GetLikes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	likes, err := h.likeService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get likes"})
		return
	}

	response := make([]entity.LikeOutput, 0, len(likes))
	for _, like := range likes {
		response = append(response, entity.LikeOutput{
			FilmID:    like.FilmID,
			Rating:    like.Rating,
			CreatedAt: like.CreatedAt,
			UpdatedAt: like.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetLikeCount возвращает количество оценок фильма
func (h *LikeHandler) GetLikeCount(c *gin.Context) {
	filmID := c.Param("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	count, err := h.likeService.CountByFilm(c.Request.Context(), filmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to count likes"})
		return
	}

	c.JSON(http.StatusOK, count)
}

// GetAverageRating возвращает среднюю оценку фильма
func (h *LikeHandler) GetAverageRating(c *gin.Context) {
	filmID := c.Param("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	avg, err := h.likeService.AverageByFilm(c.Request.Context(), filmID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "The film was not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to calculate average rating"})
		return
	}

	c.JSON(http.StatusOK, avg)
}

// UpdateLike перезаписывает оценку существующего лайка
func (h *LikeHandler) UpdateLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input entity.LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	if err := h.likeService.Update(c.Request.Context(), userID, &input); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "The like does not exist"})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Rating must be between 0 and 10"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to update like"})
		}
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Like updated"})
}

// DeleteLike мягко удаляет оценку текущего пользователя
func (h *LikeHandler) DeleteLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filmID := c.Query("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	if err := h.likeService.Delete(c.Request.Context(), userID, filmID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "The like does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to delete like"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Like deleted"})
}
