package ports

import (
	"context"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
)

// PaymentProvider defines the behavior of the external payment provider.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	FetchOrder(ctx context.Context, orderID string) (*domain.Order, error)
}
