package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
	"github.com/DanielPopoola/freshdairy-checkout/internal/observability"
)

// Reconciler periodically pulls provider status for orders the ledger has not
// seen paid yet.
type Reconciler struct {
	ledger    ports.OrderLedger
	provider  ports.PaymentProvider
	interval  time.Duration
	batchSize int
	minAge    time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewReconciler(
	ledger ports.OrderLedger,
	provider ports.PaymentProvider,
	interval time.Duration,
	batchSize int,
	minAge time.Duration,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		ledger:    ledger,
		provider:  provider,
		interval:  interval,
		batchSize: batchSize,
		minAge:    minAge,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting order reconciler", "interval", r.interval, "batch_size", r.batchSize, "min_age", r.minAge)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping order reconciler")
			return
		case <-ticker.C:
			r.run(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle and reports how many orders
// were synced.
func (r *Reconciler) RunOnce(ctx context.Context) int {
	return r.run(ctx)
}

func (r *Reconciler) run(ctx context.Context) int {
	unsettled, err := r.ledger.FindUnsettled(ctx, r.minAge, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch unsettled orders", "error", err)
		return 0
	}

	if len(unsettled) == 0 {
		return 0
	}

	r.logger.Info("reconciling orders", "count", len(unsettled))

	synced := 0
	for _, o := range unsettled {
		if ctx.Err() != nil {
			return synced
		}
		if r.syncOrder(ctx, o) {
			synced++
		}
	}
	return synced
}

func (r *Reconciler) syncOrder(ctx context.Context, o *domain.LedgerOrder) bool {
	remote, err := r.provider.FetchOrder(ctx, o.OrderID)
	if err != nil {
		observability.ReconciledOrders.WithLabelValues(observability.ResultFailure).Inc()
		r.logger.Error("failed to fetch order from provider", "order_id", o.OrderID, "error", err)
		return false
	}

	if err := r.ledger.UpdateProviderStatus(ctx, o.OrderID, remote.Status, r.now()); err != nil {
		observability.ReconciledOrders.WithLabelValues(observability.ResultFailure).Inc()
		r.logger.Error("failed to update provider status", "order_id", o.OrderID, "error", err)
		return false
	}

	observability.ReconciledOrders.WithLabelValues(remote.Status).Inc()

	if remote.Status != o.ProviderStatus {
		r.logger.Info("provider status changed", "order_id", o.OrderID, "from", o.ProviderStatus, "to", remote.Status)
	}

	o.ProviderStatus = remote.Status
	if o.PaidWithoutVerification() {
		r.logger.Warn("order paid at provider but no verified callback recorded",
			"order_id", o.OrderID,
			"receipt", o.Receipt,
			"amount", o.Amount,
		)
	}
	return true
}
