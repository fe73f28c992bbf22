// Package kafka provides event publishing over Kafka topics.
package kafka

import (
	"time"

	"github.com/google/uuid"
)

// Event is the envelope wrapping every published domain event.
type Event struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload"`
}

// NewEvent builds an envelope with a fresh event ID and timestamp.
func NewEvent(eventType, aggregateID string, payload any) Event {
	return Event{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}
}
