package razorpay

import (
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
)

type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// OrderResponse mirrors the provider's order entity. Notes is omitted: the
// provider returns it as either an object or an empty array.
type OrderResponse struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`
}

func (r *OrderResponse) toDomain() *domain.Order {
	return &domain.Order{
		ID:         r.ID,
		Entity:     r.Entity,
		Amount:     r.Amount,
		AmountPaid: r.AmountPaid,
		AmountDue:  r.AmountDue,
		Currency:   r.Currency,
		Receipt:    r.Receipt,
		Status:     r.Status,
		Attempts:   r.Attempts,
		CreatedAt:  r.CreatedAt,
	}
}
