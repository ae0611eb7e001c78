package service

import "errors"

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrAlreadyExists = errors.New("document already exists")
	ErrNotFound      = errors.New("document not found")
	ErrInvalidRating = errors.New("rating must be between 0 and 10")
	ErrTextTooLong   = errors.New("review text exceeds maximum length")
)

const (
	minRating = 0
	maxRating = 10

	maxReviewTextLength = 5000
)
