package service

import (
	"context"
	"encoding/json"
	"time"

	"ugcservice/internal/app/ugc/entity"
	"ugcservice/internal/app/ugc/infrastructure"
	"ugcservice/pkg/logger"
)

const (
	EventBookmarkCreated = "BOOKMARK_CREATED"
	EventLikeCreated     = "LIKE_CREATED"
	EventReviewCreated   = "REVIEW_CREATED"
)

// publishUGCEvent отправляет событие о созданном документе в Kafka.
// Документ к этому моменту уже сохранен, поэтому ошибки Kafka
// только логируются и не прерывают запрос.
func publishUGCEvent(ctx context.Context, publisher infrastructure.MessagePublisher, eventType, documentID, userID, filmID string) {
	event := entity.UGCEvent{
		EventType:  eventType,
		DocumentID: documentID,
		UserID:     userID,
		FilmID:     filmID,
		Timestamp:  time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Str("event_type", eventType).Msg("Failed to marshal UGC event")
		return
	}

	if err := publisher.PublishMessage(ctx, documentID, data); err != nil {
		logger.Warn().Err(err).Str("event_type", eventType).Msg("Failed to publish UGC event")
	}
}
