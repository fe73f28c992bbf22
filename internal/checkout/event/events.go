// Package event defines checkout domain events published to Kafka.
package event

import (
	"context"
	"log/slog"

	salesdomain "github.com/miguelangelabou/globosanabell/internal/sales/domain"
	"github.com/miguelangelabou/globosanabell/pkg/kafka"
)

// TypeCheckoutCompleted is published after a successful checkout.
const TypeCheckoutCompleted = "checkout.completed"

// CompletedPayload is the event body for completed checkouts.
type CompletedPayload struct {
	SaleID     string            `json:"sale_id"`
	SessionID  string            `json:"session_id"`
	Items      []salesdomain.Item `json:"items"`
	TotalCents int64             `json:"total_cents"`
}

// Publisher publishes checkout events best-effort.
type Publisher struct {
	publisher kafka.Publisher
	logger    *slog.Logger
}

// NewPublisher creates a checkout event publisher.
func NewPublisher(p kafka.Publisher, l *slog.Logger) *Publisher {
	return &Publisher{publisher: p, logger: l}
}

// Completed publishes a checkout.completed event.
func (p *Publisher) Completed(ctx context.Context, sale *salesdomain.Sale) {
	evt := kafka.NewEvent(TypeCheckoutCompleted, sale.ID, CompletedPayload{
		SaleID:     sale.ID,
		SessionID:  sale.SessionID,
		Items:      sale.Items,
		TotalCents: sale.TotalCents,
	})

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("failed to publish checkout event",
			"event_type", TypeCheckoutCompleted,
			"sale_id", sale.ID,
			"error", err,
		)
	}
}
