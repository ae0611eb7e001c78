package entity

import (
	"time"
)

// Bookmark - закладка пользователя на фильм
// Сам факт существования документа и есть закладка
type Bookmark struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"` // UUID пользователя из Auth Service
	FilmID    string    `json:"film_id" bson:"film_id"` // UUID фильма из каталога
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	IsDeleted bool      `json:"-" bson:"is_deleted"`
}

// Like - оценка фильма пользователем (от 0 до 10)
type Like struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	FilmID    string    `json:"film_id" bson:"film_id"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	IsDeleted bool      `json:"-" bson:"is_deleted"`
}

// Review - текстовая рецензия пользователя на фильм
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	FilmID    string    `json:"film_id" bson:"film_id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	IsDeleted bool      `json:"-" bson:"is_deleted"`
}

// ReviewWithRating - проекция рецензии на чтение.
// Rating подтягивается через $lookup из коллекции лайков по film_id
// и никогда не хранится в документе рецензии. Если оценок у фильма нет,
// поле остается nil.
type ReviewWithRating struct {
	UserID string `json:"user_id" bson:"user_id"`
	FilmID string `json:"film_id" bson:"film_id"`
	Text   string `json:"text" bson:"text"`
	Rating *int   `json:"rating" bson:"rating,omitempty"`
}

// UGCEvent - событие о созданном пользовательском контенте для Kafka
type UGCEvent struct {
	EventType  string    `json:"event_type"` // BOOKMARK_CREATED, LIKE_CREATED, REVIEW_CREATED
	DocumentID string    `json:"document_id"`
	UserID     string    `json:"user_id"`
	FilmID     string    `json:"film_id"`
	Timestamp  time.Time `json:"timestamp"`
}
