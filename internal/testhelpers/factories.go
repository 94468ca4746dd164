package testhelpers

import (
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewProviderOrder returns an order as the provider would after creation.
func NewProviderOrder(amount int64) *domain.Order {
	return &domain.Order{
		ID:        "order_" + uuid.NewString()[:14],
		Entity:    "order",
		Amount:    amount,
		AmountDue: amount,
		Currency:  domain.DefaultCurrency,
		Receipt:   "order_" + uuid.NewString()[:8],
		Status:    domain.OrderStatusCreated,
	}
}

// NewLedgerOrder returns a ledger record created at the given time.
func NewLedgerOrder(amount int64, createdAt time.Time) *domain.LedgerOrder {
	return domain.NewLedgerOrder(NewProviderOrder(amount), DefaultLineItems(), createdAt.UTC().Truncate(time.Microsecond))
}

func DefaultLineItems() []domain.LineItem {
	return []domain.LineItem{
		{ProductID: 1, Name: "Organic Whole Milk", Quantity: 2, UnitPrice: decimal.RequireFromString("65.00")},
		{ProductID: 4, Name: "Greek Yogurt", Quantity: 1, UnitPrice: decimal.RequireFromString("120.50")},
	}
}
