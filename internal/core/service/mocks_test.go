package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockOrderLedger
type MockOrderLedger struct {
	mu            sync.RWMutex
	orders        map[string]*domain.LedgerOrder
	verifications []*domain.VerificationRecord

	RecordOrderFn        func(ctx context.Context, order *domain.LedgerOrder) error
	RecordVerificationFn func(ctx context.Context, v *domain.VerificationRecord) error
	FindByOrderIDFn      func(ctx context.Context, orderID string) (*domain.LedgerOrder, error)
	ListFn               func(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error)
}

func NewMockOrderLedger() *MockOrderLedger {
	return &MockOrderLedger{
		orders: make(map[string]*domain.LedgerOrder),
	}
}

func (m *MockOrderLedger) RecordOrder(ctx context.Context, order *domain.LedgerOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordOrderFn != nil {
		return m.RecordOrderFn(ctx, order)
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *MockOrderLedger) RecordVerification(ctx context.Context, v *domain.VerificationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordVerificationFn != nil {
		return m.RecordVerificationFn(ctx, v)
	}
	m.verifications = append(m.verifications, v)
	return nil
}

func (m *MockOrderLedger) Verifications() []*domain.VerificationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.VerificationRecord(nil), m.verifications...)
}

func (m *MockOrderLedger) FindByOrderID(ctx context.Context, orderID string) (*domain.LedgerOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindByOrderIDFn != nil {
		return m.FindByOrderIDFn(ctx, orderID)
	}
	if o, ok := m.orders[orderID]; ok {
		return o, nil
	}
	return nil, domain.NewOrderNotFoundError(orderID)
}

func (m *MockOrderLedger) List(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockOrderLedger) FindUnsettled(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.LedgerOrder, error) {
	return nil, nil // Not used in service tests
}

func (m *MockOrderLedger) UpdateProviderStatus(ctx context.Context, orderID, status string, syncedAt time.Time) error {
	return nil // Not used in service tests
}

// MockPaymentProvider
type MockPaymentProvider struct {
	mu    sync.Mutex
	calls map[string]int
	last  domain.CreateOrderRequest

	CreateOrderFn func(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	FetchOrderFn  func(ctx context.Context, orderID string) (*domain.Order, error)
}

func (m *MockPaymentProvider) inc(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockPaymentProvider) GetCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockPaymentProvider) LastCreateRequest() domain.CreateOrderRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *MockPaymentProvider) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	m.inc("CreateOrder")
	m.mu.Lock()
	m.last = req
	m.mu.Unlock()
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, req)
	}
	return &domain.Order{
		ID:        "order_test123",
		Entity:    "order",
		Amount:    req.Amount,
		AmountDue: req.Amount,
		Currency:  req.Currency,
		Receipt:   req.Receipt,
		Status:    domain.OrderStatusCreated,
	}, nil
}

func (m *MockPaymentProvider) FetchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	m.inc("FetchOrder")
	if m.FetchOrderFn != nil {
		return m.FetchOrderFn(ctx, orderID)
	}
	return &domain.Order{ID: orderID, Status: domain.OrderStatusCreated}, nil
}
