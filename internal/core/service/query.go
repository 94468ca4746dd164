package service

import (
	"context"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type OrderQueryService struct {
	ledger ports.OrderLedger
}

func NewOrderQueryService(ledger ports.OrderLedger) *OrderQueryService {
	return &OrderQueryService{
		ledger: ledger,
	}
}

func (s *OrderQueryService) GetOrder(ctx context.Context, orderID string) (*domain.LedgerOrder, error) {
	if orderID == "" {
		return nil, domain.NewMissingRequiredFieldError("order_id")
	}
	return s.ledger.FindByOrderID(ctx, orderID)
}

func (s *OrderQueryService) ListOrders(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.ledger.List(ctx, limit, offset)
}
