package ports

import (
	"context"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckoutAPI is the client-side view of the checkout server.
type CheckoutAPI interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderCommand) (*domain.Order, error)
	VerifyPayment(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error)
}

// CheckoutWidget opens the provider's hosted payment UI. Open returns once the
// widget is shown; the outcome arrives later through opts.Handler or opts.OnDismiss.
type CheckoutWidget interface {
	Open(ctx context.Context, opts domain.WidgetOptions) error
}

type Navigator interface {
	Navigate(route string)
}

// CartStore is the session-scoped cart the orchestrator reads and clears.
type CartStore interface {
	Items() []domain.CartItem
	TotalItems() int
	TotalPrice() decimal.Decimal
	Clear()
}
