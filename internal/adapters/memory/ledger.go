// Package memory provides an in-process OrderLedger used when no database is
// configured. Records do not survive a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
)

type OrderLedger struct {
	mu            sync.RWMutex
	orders        map[string]*domain.LedgerOrder
	verifications []domain.VerificationRecord
	now           func() time.Time
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{
		orders: make(map[string]*domain.LedgerOrder),
		now:    time.Now,
	}
}

var _ ports.OrderLedger = (*OrderLedger)(nil)

func (l *OrderLedger) RecordOrder(ctx context.Context, o *domain.LedgerOrder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.orders[o.OrderID]; ok {
		return fmt.Errorf("order %s already recorded", o.OrderID)
	}
	cp := *o
	cp.Items = append([]domain.LineItem(nil), o.Items...)
	l.orders[o.OrderID] = &cp
	return nil
}

func (l *OrderLedger) RecordVerification(ctx context.Context, v *domain.VerificationRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verifications = append(l.verifications, *v)
	if !v.Verified {
		return nil
	}

	o, ok := l.orders[v.OrderID]
	if !ok {
		return nil
	}
	paymentID, verified, at := v.PaymentID, true, v.CreatedAt
	o.PaymentID = &paymentID
	o.Verified = &verified
	o.VerifiedAt = &at
	o.UpdatedAt = l.now()
	return nil
}

func (l *OrderLedger) FindByOrderID(ctx context.Context, orderID string) (*domain.LedgerOrder, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.orders[orderID]
	if !ok {
		return nil, domain.NewOrderNotFoundError(orderID)
	}
	cp := *o
	return &cp, nil
}

func (l *OrderLedger) List(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error) {
	all := l.sorted(func(a, b *domain.LedgerOrder) bool { return a.CreatedAt.After(b.CreatedAt) })

	if offset >= len(all) {
		return []*domain.LedgerOrder{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (l *OrderLedger) FindUnsettled(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.LedgerOrder, error) {
	cutoff := l.now().Add(-olderThan)
	all := l.sorted(func(a, b *domain.LedgerOrder) bool {
		if a.LastSyncedAt == nil || b.LastSyncedAt == nil {
			return a.LastSyncedAt == nil && b.LastSyncedAt != nil
		}
		return a.LastSyncedAt.Before(*b.LastSyncedAt)
	})

	var out []*domain.LedgerOrder
	for _, o := range all {
		if o.ProviderStatus == domain.OrderStatusPaid || !o.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, o)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (l *OrderLedger) UpdateProviderStatus(ctx context.Context, orderID, status string, syncedAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, ok := l.orders[orderID]
	if !ok {
		return domain.NewOrderNotFoundError(orderID)
	}
	o.ProviderStatus = status
	o.LastSyncedAt = &syncedAt
	o.UpdatedAt = l.now()
	return nil
}

// sorted returns copies of all orders ordered by less.
func (l *OrderLedger) sorted(less func(a, b *domain.LedgerOrder) bool) []*domain.LedgerOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*domain.LedgerOrder, 0, len(l.orders))
	for _, o := range l.orders {
		cp := *o
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
