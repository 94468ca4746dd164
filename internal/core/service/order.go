package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
)

type OrderService struct {
	provider ports.PaymentProvider
	ledger   ports.OrderLedger
	logger   *slog.Logger
	now      func() time.Time
}

func NewOrderService(provider ports.PaymentProvider, ledger ports.OrderLedger, logger *slog.Logger) *OrderService {
	return &OrderService{
		provider: provider,
		ledger:   ledger,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateOrder mints a provider order for the given display amount. The
// provider is called exactly once; any provider failure is reported as
// ORDER_CREATION_FAILED without its detail.
func (s *OrderService) CreateOrder(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}

	req := domain.CreateOrderRequest{
		Amount:   domain.ToMinorUnits(cmd.Amount),
		Currency: cmd.Currency,
		Receipt:  cmd.Receipt,
	}

	order, err := s.provider.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("provider order creation failed",
			"receipt", req.Receipt,
			"amount", req.Amount,
			"currency", req.Currency,
			"error", err)
		return nil, domain.NewOrderCreationFailedError(err)
	}
	if order == nil || order.ID == "" {
		s.logger.Error("provider returned no order id", "receipt", req.Receipt)
		return nil, domain.NewOrderCreationFailedError(nil)
	}

	if err := s.ledger.RecordOrder(ctx, domain.NewLedgerOrder(order, cmd.Items, s.now())); err != nil {
		s.logger.Warn("failed to record order in ledger",
			"order_id", order.ID,
			"error", err)
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"amount", order.Amount,
		"currency", order.Currency)

	return order, nil
}
