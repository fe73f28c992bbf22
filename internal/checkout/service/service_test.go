package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/miguelangelabou/globosanabell/internal/cart/domain"
	"github.com/miguelangelabou/globosanabell/internal/checkout/event"
	companydomain "github.com/miguelangelabou/globosanabell/internal/company/domain"
	"github.com/miguelangelabou/globosanabell/internal/geoip"
	salesdomain "github.com/miguelangelabou/globosanabell/internal/sales/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/kafka"
)

type mockCarts struct {
	mock.Mock
}

func (m *mockCarts) GetCart(ctx context.Context, sessionID string) (*cartdomain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Cart), args.Error(1)
}

func (m *mockCarts) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockCarts) SavePendingOrder(ctx context.Context, sessionID string, order *cartdomain.PendingOrder) error {
	return m.Called(ctx, sessionID, order).Error(0)
}

type mockCompany struct {
	mock.Mock
}

func (m *mockCompany) Get(ctx context.Context) (*companydomain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*companydomain.Company), args.Error(1)
}

type mockSales struct {
	mock.Mock
}

func (m *mockSales) Record(ctx context.Context, sessionID, ip, location string, items []salesdomain.Item, totalCents int64) (*salesdomain.Sale, error) {
	args := m.Called(ctx, sessionID, ip, location, items, totalCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salesdomain.Sale), args.Error(1)
}

type mockSold struct {
	mock.Mock
}

func (m *mockSold) RecordSold(ctx context.Context, productID string, quantity int) error {
	return m.Called(ctx, productID, quantity).Error(0)
}

type mockGeo struct {
	mock.Mock
}

func (m *mockGeo) Resolve(ctx context.Context, ip string) (*geoip.Lookup, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geoip.Lookup), args.Error(1)
}

func testCart() *cartdomain.Cart {
	cart := &cartdomain.Cart{}
	cart.Add("p1", "Osito", 1000)
	cart.SetQuantity("p1", 2)
	return cart
}

func newTestService(carts *mockCarts, company *mockCompany, sales *mockSales, sold *mockSold, geo *mockGeo) *Service {
	events := event.NewPublisher(kafka.NopPublisher{}, slog.Default())
	return New(carts, company, sales, sold, geo, events)
}

func TestCheckout(t *testing.T) {
	shop := &companydomain.Company{Phone: "+34612345678"}

	t.Run("happy path", func(t *testing.T) {
		carts := new(mockCarts)
		carts.On("GetCart", mock.Anything, "s1").Return(testCart(), nil)
		carts.On("SavePendingOrder", mock.Anything, "s1", mock.Anything).Return(nil)
		carts.On("Clear", mock.Anything, "s1").Return(nil)

		company := new(mockCompany)
		company.On("Get", mock.Anything).Return(shop, nil)

		sales := new(mockSales)
		sales.On("Record", mock.Anything, "s1", "4.5.6.7", "Madrid, Madrid, ES | 40.4,-3.7",
			mock.Anything, int64(2000)).Return(&salesdomain.Sale{ID: "sale1"}, nil)

		sold := new(mockSold)
		sold.On("RecordSold", mock.Anything, "p1", 2).Return(nil)

		geo := new(mockGeo)
		geo.On("Resolve", mock.Anything, "4.5.6.7").
			Return(&geoip.Lookup{IP: "4.5.6.7", Location: "Madrid, Madrid, ES | 40.4,-3.7"}, nil)

		svc := newTestService(carts, company, sales, sold, geo)

		result, err := svc.Checkout(context.Background(), "s1", "4.5.6.7")
		require.NoError(t, err)

		assert.Equal(t, int64(2000), result.TotalCents)
		assert.Equal(t, 2, result.ItemCount)
		assert.Contains(t, result.Message.Text, "Osito (ID: p1)")
		assert.Contains(t, result.Message.URL, "wa.me/34612345678")

		carts.AssertExpectations(t)
		sales.AssertExpectations(t)
		sold.AssertExpectations(t)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		carts := new(mockCarts)
		carts.On("GetCart", mock.Anything, "s1").Return(&cartdomain.Cart{}, nil)

		svc := newTestService(carts, new(mockCompany), new(mockSales), new(mockSold), new(mockGeo))

		_, err := svc.Checkout(context.Background(), "s1", "4.5.6.7")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("sale write failure is non-fatal", func(t *testing.T) {
		carts := new(mockCarts)
		carts.On("GetCart", mock.Anything, "s1").Return(testCart(), nil)
		carts.On("SavePendingOrder", mock.Anything, "s1", mock.Anything).Return(nil)
		carts.On("Clear", mock.Anything, "s1").Return(nil)

		company := new(mockCompany)
		company.On("Get", mock.Anything).Return(shop, nil)

		sales := new(mockSales)
		sales.On("Record", mock.Anything, "s1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		sold := new(mockSold)
		sold.On("RecordSold", mock.Anything, "p1", 2).Return(nil)

		geo := new(mockGeo)
		geo.On("Resolve", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		svc := newTestService(carts, company, sales, sold, geo)

		result, err := svc.Checkout(context.Background(), "s1", "4.5.6.7")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Message.URL)
		carts.AssertCalled(t, "Clear", mock.Anything, "s1")
	})

	t.Run("geoip failure keeps the raw ip", func(t *testing.T) {
		carts := new(mockCarts)
		carts.On("GetCart", mock.Anything, "s1").Return(testCart(), nil)
		carts.On("SavePendingOrder", mock.Anything, "s1", mock.Anything).Return(nil)
		carts.On("Clear", mock.Anything, "s1").Return(nil)

		company := new(mockCompany)
		company.On("Get", mock.Anything).Return(shop, nil)

		sales := new(mockSales)
		sales.On("Record", mock.Anything, "s1", "4.5.6.7", "", mock.Anything, int64(2000)).
			Return(&salesdomain.Sale{ID: "sale1"}, nil)

		sold := new(mockSold)
		sold.On("RecordSold", mock.Anything, "p1", 2).Return(nil)

		geo := new(mockGeo)
		geo.On("Resolve", mock.Anything, "4.5.6.7").Return(nil, errors.New("unreachable"))

		svc := newTestService(carts, company, sales, sold, geo)

		_, err := svc.Checkout(context.Background(), "s1", "4.5.6.7")
		require.NoError(t, err)
		sales.AssertExpectations(t)
	})

	t.Run("missing company profile fails", func(t *testing.T) {
		carts := new(mockCarts)
		carts.On("GetCart", mock.Anything, "s1").Return(testCart(), nil)

		company := new(mockCompany)
		company.On("Get", mock.Anything).Return(nil, apperrors.NewNotFound("company profile"))

		svc := newTestService(carts, company, new(mockSales), new(mockSold), new(mockGeo))

		_, err := svc.Checkout(context.Background(), "s1", "4.5.6.7")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
