package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ugcservice/pkg/logger"
)

// ensureIndexes создает индексы коллекции пользовательского контента.
//
// Частичный уникальный индекс по (user_id, film_id) распространяется только
// на активные документы: проверка "сначала найди, потом вставь" в сервисном
// слое не защищена от гонки двух конкурентных созданий, и уникальность
// обеспечивает именно хранилище. После мягкого удаления пара освобождается
// и повторное создание вставляет новый документ.
func ensureIndexes(collection *mongo.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uniqueIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "film_id", Value: 1},
		},
		Options: options.Index().
			SetName("user_film_active_idx").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"is_deleted": false}),
	}
	if _, err := collection.Indexes().CreateOne(ctx, uniqueIndex); err != nil {
		// Не прерываем работу - индекс может уже существовать
		logger.Warn().
			Err(err).
			Str("collection", collection.Name()).
			Msg("Failed to create user_film_active_idx")
	}

	// Индекс по film_id для выборок по фильму (count, average, $lookup)
	filmIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "film_id", Value: 1},
		},
		Options: options.Index().SetName("film_id_idx"),
	}
	if _, err := collection.Indexes().CreateOne(ctx, filmIndex); err != nil {
		logger.Warn().
			Err(err).
			Str("collection", collection.Name()).
			Msg("Failed to create film_id_idx")
	}
}
