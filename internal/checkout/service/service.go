// Package service orchestrates the checkout flow: build the order
// message, record the sale best-effort and clear the cart.
package service

import (
	"context"
	"time"

	cartdomain "github.com/miguelangelabou/globosanabell/internal/cart/domain"
	"github.com/miguelangelabou/globosanabell/internal/checkout/domain"
	"github.com/miguelangelabou/globosanabell/internal/checkout/event"
	companydomain "github.com/miguelangelabou/globosanabell/internal/company/domain"
	"github.com/miguelangelabou/globosanabell/internal/geoip"
	salesdomain "github.com/miguelangelabou/globosanabell/internal/sales/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/logger"
)

// CartStore is the slice of the cart service the checkout needs.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) (*cartdomain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	SavePendingOrder(ctx context.Context, sessionID string, order *cartdomain.PendingOrder) error
}

// CompanyGetter resolves the shop profile for the deep link phone.
type CompanyGetter interface {
	Get(ctx context.Context) (*companydomain.Company, error)
}

// SaleRecorder writes the sale snapshot.
type SaleRecorder interface {
	Record(ctx context.Context, sessionID, ip, location string, items []salesdomain.Item, totalCents int64) (*salesdomain.Sale, error)
}

// SoldCounter bumps per-product sold counters.
type SoldCounter interface {
	RecordSold(ctx context.Context, productID string, quantity int) error
}

// Service implements the checkout flow.
type Service struct {
	carts    CartStore
	company  CompanyGetter
	sales    SaleRecorder
	sold     SoldCounter
	geo      geoip.Resolver
	events   *event.Publisher
	now      func() time.Time
}

// New creates a checkout service.
func New(carts CartStore, company CompanyGetter, sales SaleRecorder, sold SoldCounter, geo geoip.Resolver, events *event.Publisher) *Service {
	return &Service{
		carts:   carts,
		company: company,
		sales:   sales,
		sold:    sold,
		geo:     geo,
		events:  events,
		now:     time.Now,
	}
}

// Result is the checkout response: the rendered message plus the
// snapshot totals for the confirmation page.
type Result struct {
	Message    domain.OrderMessage `json:"message"`
	TotalCents int64               `json:"total_cents"`
	ItemCount  int                 `json:"item_count"`
}

// Checkout runs the full flow for one session. Sale persistence and
// sold counters are best-effort: their failures are logged and the
// shopper still gets the messaging link.
func (s *Service) Checkout(ctx context.Context, sessionID, clientIP string) (*Result, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperrors.NewInvalidInput("cart is empty")
	}

	company, err := s.company.Get(ctx)
	if err != nil {
		return nil, err
	}

	msg := domain.BuildOrderMessage(cart, company.Phone)
	log := logger.FromContext(ctx)

	ip, location := clientIP, ""
	if lookup, err := s.geo.Resolve(ctx, clientIP); err != nil {
		log.Warn("geoip lookup failed", "ip", clientIP, "error", err)
	} else {
		ip, location = lookup.IP, lookup.Location
	}

	items := make([]salesdomain.Item, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, salesdomain.Item{
			ProductID:  line.ProductID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			Quantity:   line.Quantity,
		})
	}

	sale, err := s.sales.Record(ctx, sessionID, ip, location, items, cart.TotalCents())
	if err != nil {
		log.Error("failed to record sale", "session_id", sessionID, "error", err)
	} else {
		s.events.Completed(ctx, sale)
	}

	for _, line := range cart.Lines {
		if err := s.sold.RecordSold(ctx, line.ProductID, line.Quantity); err != nil {
			log.Warn("failed to bump sold counter", "product_id", line.ProductID, "error", err)
		}
	}

	pending := &cartdomain.PendingOrder{
		Cart:       *cart,
		TotalCents: cart.TotalCents(),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.carts.SavePendingOrder(ctx, sessionID, pending); err != nil {
		log.Warn("failed to save pending order", "session_id", sessionID, "error", err)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Warn("failed to clear cart after checkout", "session_id", sessionID, "error", err)
	}

	return &Result{
		Message:    msg,
		TotalCents: cart.TotalCents(),
		ItemCount:  cart.ItemCount(),
	}, nil
}
