package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutState is the state of a single client-side checkout attempt.
type CheckoutState string

const (
	StateIdle                     CheckoutState = "IDLE"
	StateCreating                 CheckoutState = "CREATING"
	StateAwaitingProviderCallback CheckoutState = "AWAITING_PROVIDER_CALLBACK"
	StateVerifying                CheckoutState = "VERIFYING"
	StateSuccess                  CheckoutState = "SUCCESS"
	StateFailure                  CheckoutState = "FAILURE"
	StateCancelled                CheckoutState = "CANCELLED"
)

// CanTransitionTo validates whether a checkout in state s may move to target.
//
// Valid transitions are:
//   - Idle → Creating
//   - Creating → AwaitingProviderCallback, Failure
//   - AwaitingProviderCallback → Verifying, Cancelled, Failure (the widget could not open)
//   - Verifying → Success, Failure
//   - Success, Failure, Cancelled → Idle (a fresh attempt started by the user)
func (s CheckoutState) CanTransitionTo(target CheckoutState) error {
	switch s {
	case StateIdle:
		if target == StateCreating {
			return nil
		}

	case StateCreating:
		if target == StateAwaitingProviderCallback || target == StateFailure {
			return nil
		}

	case StateAwaitingProviderCallback:
		if target == StateVerifying || target == StateCancelled || target == StateFailure {
			return nil
		}

	case StateVerifying:
		if target == StateSuccess || target == StateFailure {
			return nil
		}

	case StateSuccess, StateFailure, StateCancelled:
		if target == StateIdle {
			return nil
		}
	}
	return NewInvalidTransitionError(s, target)
}

func (s CheckoutState) IsTerminal() bool {
	switch s {
	case StateSuccess, StateFailure, StateCancelled:
		return true
	default:
		return false
	}
}

// Product is the subset of catalog data the cart needs.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartItem is a product with a quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// LineItem converts a cart line to the form sent to the server.
func (c CartItem) LineItem() LineItem {
	return LineItem{
		ProductID: c.ID,
		Name:      c.Name,
		Quantity:  c.Quantity,
		UnitPrice: c.Price,
	}
}

// Customer is optional prefill data for the checkout widget.
type Customer struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// WidgetTheme controls the widget's accent colour.
type WidgetTheme struct {
	Color string `json:"color"`
}

// WidgetOptions are handed to the hosted checkout widget when it is opened.
// Handler and OnDismiss are the widget's completion and dismissal callbacks.
type WidgetOptions struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OrderID     string            `json:"order_id"`
	Prefill     Customer          `json:"prefill"`
	Notes       map[string]string `json:"notes,omitempty"`
	Theme       WidgetTheme       `json:"theme"`

	Handler   func(ctx context.Context, resp WidgetResponse) `json:"-"`
	OnDismiss func()                                         `json:"-"`
}
