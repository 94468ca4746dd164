// Package domain defines the checkout domain: orders, verification and the
// client-side checkout state machine.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxReceiptLength is the provider's limit on receipt identifiers.
const MaxReceiptLength = 40

// Order is a provider-side record of a pending payment. It is never mutated
// after the provider returns it.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity,omitempty"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status,omitempty"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at,omitempty"`
}

// Provider order statuses.
const (
	OrderStatusCreated   = "created"
	OrderStatusAttempted = "attempted"
	OrderStatusPaid      = "paid"
)

// LineItem describes one cart line as sent along with an order.
type LineItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest is what the provider needs to mint an order.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// LedgerOrder is the server-side audit record of an order created through this service.
type LedgerOrder struct {
	OrderID        string
	Receipt        string
	Amount         int64
	Currency       string
	ProviderStatus string
	Items          []LineItem
	PaymentID      *string
	Verified       *bool
	VerifiedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastSyncedAt   *time.Time
}

// NewLedgerOrder builds the ledger record for a freshly created order.
func NewLedgerOrder(order *Order, items []LineItem, now time.Time) *LedgerOrder {
	status := order.Status
	if status == "" {
		status = OrderStatusCreated
	}
	return &LedgerOrder{
		OrderID:        order.ID,
		Receipt:        order.Receipt,
		Amount:         order.Amount,
		Currency:       order.Currency,
		ProviderStatus: status,
		Items:          items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PaidWithoutVerification reports a provider-side payment whose client
// callback never produced a successful verification.
func (o *LedgerOrder) PaidWithoutVerification() bool {
	return o.ProviderStatus == OrderStatusPaid && (o.Verified == nil || !*o.Verified)
}

// CreateOrderCommand is the input to order creation, in display units.
type CreateOrderCommand struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency,omitempty"`
	Receipt  string          `json:"receipt" validate:"required,max=40"`
	Items    []LineItem      `json:"items,omitempty"`
}

// Normalize applies defaults and validates the command.
func (c *CreateOrderCommand) Normalize() error {
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if err := ValidateAmount(c.Amount); err != nil {
		return err
	}
	if c.Receipt == "" {
		return NewMissingRequiredFieldError("receipt")
	}
	if len(c.Receipt) > MaxReceiptLength {
		return NewInvalidInputError("receipt must be at most 40 characters")
	}
	return nil
}
