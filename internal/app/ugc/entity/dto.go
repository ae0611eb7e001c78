package entity

import "time"

// LikeInput - запрос на создание или обновление оценки.
// Тег required для rating не используется сознательно:
// ноль - допустимая оценка, а required отбрасывает нулевые значения.
type LikeInput struct {
	FilmID string `json:"film_id" validate:"required,uuid4"`
	Rating int    `json:"rating" validate:"min=0,max=10"`
}

// ReviewInput - запрос на создание или обновление рецензии
type ReviewInput struct {
	FilmID string `json:"film_id" validate:"required,uuid4"`
	Text   string `json:"text" validate:"required,max=5000"`
}

// NewDocumentResponse - ответ с идентификатором созданного документа
type NewDocumentResponse struct {
	ID string `json:"id"`
}

// BookmarkOutput - закладка в ответе списка
type BookmarkOutput struct {
	FilmID    string    `json:"film_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeOutput - оценка в ответе списка
type LikeOutput struct {
	FilmID    string    `json:"film_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse - стандартный ответ об успехе
type SuccessResponse struct {
	Message string `json:"message"`
}
