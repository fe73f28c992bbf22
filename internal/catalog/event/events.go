// Package event defines catalog domain events published to Kafka.
package event

import (
	"context"
	"log/slog"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	"github.com/miguelangelabou/globosanabell/pkg/kafka"
)

// Event types published on the catalog topic.
const (
	TypeProductCreated = "catalog.product.created"
	TypeProductUpdated = "catalog.product.updated"
	TypeProductDeleted = "catalog.product.deleted"
)

// ProductPayload is the event body for product lifecycle events.
type ProductPayload struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Active     bool   `json:"active"`
}

// Publisher publishes catalog events best-effort. Publish failures are
// logged and never fail the originating operation.
type Publisher struct {
	publisher kafka.Publisher
	logger    *slog.Logger
}

// NewPublisher creates a catalog event publisher.
func NewPublisher(p kafka.Publisher, l *slog.Logger) *Publisher {
	return &Publisher{publisher: p, logger: l}
}

func (p *Publisher) ProductCreated(ctx context.Context, product *domain.Product) {
	p.publish(ctx, TypeProductCreated, product)
}

func (p *Publisher) ProductUpdated(ctx context.Context, product *domain.Product) {
	p.publish(ctx, TypeProductUpdated, product)
}

func (p *Publisher) ProductDeleted(ctx context.Context, product *domain.Product) {
	p.publish(ctx, TypeProductDeleted, product)
}

func (p *Publisher) publish(ctx context.Context, eventType string, product *domain.Product) {
	evt := kafka.NewEvent(eventType, product.ID, ProductPayload{
		ProductID:  product.ID,
		Name:       product.Name,
		Category:   product.Category,
		PriceCents: product.PriceCents,
		Active:     product.Active,
	})

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("failed to publish catalog event",
			"event_type", eventType,
			"product_id", product.ID,
			"error", err,
		)
	}
}
