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

type ReviewServiceInterface interface {
	Create(ctx context.Context, userID string, input *entity.ReviewInput) (string, error)
	ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithRating, error)
	ListByFilm(ctx context.Context, filmID string) ([]entity.ReviewWithRating, error)
	Update(ctx context.Context, userID string, input *entity.ReviewInput) error
	Delete(ctx context.Context, userID, filmID string) error
}

type ReviewHandler struct {
	reviewService ReviewServiceInterface
	validator     *validator.Validate
}

func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// CreateReview добавляет рецензию текущего пользователя на фильм
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input entity.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	id, err := h.reviewService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyExists):
			c.JSON(http.StatusConflict, entity.ErrorResponse{Error: "Review is already added"})
		case errors.Is(err, service.ErrTextTooLong):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Review text is too long"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, entity.NewDocumentResponse{ID: id})
}

// GetUserReviews возвращает рецензии текущего пользователя с оценками фильмов
func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get reviews"})
		return
	}

	if reviews == nil {
		reviews = []entity.ReviewWithRating{}
	}

	c.JSON(http.StatusOK, reviews)
}

// GetFilmReviews возвращает все рецензии на фильм с оценками
func (h *ReviewHandler) GetFilmReviews(c *gin.Context) {
	filmID := c.Param("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	reviews, err := h.reviewService.ListByFilm(c.Request.Context(), filmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get reviews"})
		return
	}

	if reviews == nil {
		reviews = []entity.ReviewWithRating{}
	}

	c.JSON(http.StatusOK, reviews)
}

// UpdateReview перезаписывает текст существующей рецензии
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input entity.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	if err := h.reviewService.Update(c.Request.Context(), userID, &input); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "The review does not exist"})
		case errors.Is(err, service.ErrTextTooLong):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Review text is too long"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to update review"})
		}
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Review updated"})
}

// DeleteReview мягко удаляет рецензию текущего пользователя
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filmID := c.Query("film_id")
	if err := h.validator.Var(filmID, "required,uuid4"); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "film_id must be a valid UUID"})
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), userID, filmID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "The review does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Review deleted"})
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
