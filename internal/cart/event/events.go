// Package event defines cart domain events published to Kafka.
package event

import (
	"context"
	"log/slog"

	"github.com/miguelangelabou/globosanabell/pkg/kafka"
)

// Event types published on the cart topic.
const (
	TypeItemAdded   = "cart.item.added"
	TypeItemRemoved = "cart.item.removed"
	TypeCartCleared = "cart.cleared"
)

// ItemPayload is the event body for cart line events.
type ItemPayload struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Publisher publishes cart events best-effort.
type Publisher struct {
	publisher kafka.Publisher
	logger    *slog.Logger
}

// NewPublisher creates a cart event publisher.
func NewPublisher(p kafka.Publisher, l *slog.Logger) *Publisher {
	return &Publisher{publisher: p, logger: l}
}

func (p *Publisher) ItemAdded(ctx context.Context, sessionID, productID string, quantity int) {
	p.publish(ctx, TypeItemAdded, sessionID, productID, quantity)
}

func (p *Publisher) ItemRemoved(ctx context.Context, sessionID, productID string) {
	p.publish(ctx, TypeItemRemoved, sessionID, productID, 0)
}

func (p *Publisher) CartCleared(ctx context.Context, sessionID string) {
	p.publish(ctx, TypeCartCleared, sessionID, "", 0)
}

func (p *Publisher) publish(ctx context.Context, eventType, sessionID, productID string, quantity int) {
	evt := kafka.NewEvent(eventType, sessionID, ItemPayload{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	})

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("failed to publish cart event",
			"event_type", eventType,
			"session_id", sessionID,
			"error", err,
		)
	}
}
