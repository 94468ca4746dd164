package ports

import (
	"context"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
)

// OrderLedger records orders created through the service and the outcome of
// their verification callbacks.
type OrderLedger interface {
	RecordOrder(ctx context.Context, order *domain.LedgerOrder) error
	RecordVerification(ctx context.Context, v *domain.VerificationRecord) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.LedgerOrder, error)
	List(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error)

	// FindUnsettled returns orders not yet paid at the provider that were
	// created more than olderThan ago.
	FindUnsettled(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.LedgerOrder, error)
	UpdateProviderStatus(ctx context.Context, orderID, status string, syncedAt time.Time) error
}
