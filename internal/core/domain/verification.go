package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetails is informational context sent with a verification request.
// It is not part of the signed payload.
type OrderDetails struct {
	Amount    decimal.Decimal `json:"amount"`
	Items     []LineItem      `json:"items,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// VerificationRequest carries the identifiers the checkout widget hands back
// after a successful user-side payment.
type VerificationRequest struct {
	OrderID      string        `json:"razorpay_order_id" validate:"required"`
	PaymentID    string        `json:"razorpay_payment_id" validate:"required"`
	Signature    string        `json:"razorpay_signature" validate:"required"`
	OrderDetails *OrderDetails `json:"order_details,omitempty"`
}

// Validate rejects malformed requests before any signature computation.
func (r *VerificationRequest) Validate() error {
	switch {
	case r.OrderID == "":
		return NewMissingRequiredFieldError("razorpay_order_id")
	case r.PaymentID == "":
		return NewMissingRequiredFieldError("razorpay_payment_id")
	case r.Signature == "":
		return NewMissingRequiredFieldError("razorpay_signature")
	}
	return nil
}

type VerificationResult struct {
	Success bool `json:"success"`
}

// WidgetResponse is the payload the checkout widget passes to its completion handler.
type WidgetResponse struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerificationRecord is one verification attempt as stored in the ledger.
type VerificationRecord struct {
	ID        uuid.UUID
	OrderID   string
	PaymentID string
	Verified  bool
	CreatedAt time.Time
}

func NewVerificationRecord(req *VerificationRequest, verified bool, now time.Time) *VerificationRecord {
	return &VerificationRecord{
		ID:        uuid.New(),
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Verified:  verified,
		CreatedAt: now,
	}
}
