package metrics

import (
	"time"
)

const serviceName = "ugc-service"

type MongoOperation string

const (
	MongoOpFind      MongoOperation = "find"
	MongoOpInsert    MongoOperation = "insert"
	MongoOpUpdate    MongoOperation = "update"
	MongoOpCount     MongoOperation = "count"
	MongoOpAggregate MongoOperation = "aggregate"
)

// MongoTimer измеряет длительность одной операции MongoDB
type MongoTimer struct {
	operation  MongoOperation
	collection string
	start      time.Time
}

func NewMongoTimer(op MongoOperation, collection string) *MongoTimer {
	return &MongoTimer{
		operation:  op,
		collection: collection,
		start:      time.Now(),
	}
}

func (mt *MongoTimer) ObserveDuration() {
	duration := time.Since(mt.start).Seconds()
	MongoQueryDuration.WithLabelValues(serviceName, string(mt.operation), mt.collection).Observe(duration)
}

func RecordMongoError(op MongoOperation, collection string) {
	MongoErrors.WithLabelValues(serviceName, string(op), collection).Inc()
}
