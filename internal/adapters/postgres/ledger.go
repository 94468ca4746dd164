package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `order_id, receipt, amount, currency, provider_status, items,
	payment_id, verified, verified_at, created_at, updated_at, last_synced_at`

type OrderLedger struct {
	pool *pgxpool.Pool
	q    Executor
}

func NewOrderLedger(db *DB) *OrderLedger {
	return &OrderLedger{
		pool: db.Pool,
		q:    db.Pool,
	}
}

var _ ports.OrderLedger = (*OrderLedger)(nil)

func (l *OrderLedger) RecordOrder(ctx context.Context, o *domain.LedgerOrder) error {
	items, err := json.Marshal(orEmpty(o.Items))
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	query := `INSERT INTO checkout_orders (
				order_id, receipt, amount, currency, provider_status, items, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = l.q.Exec(ctx, query,
		o.OrderID,
		o.Receipt,
		o.Amount,
		o.Currency,
		o.ProviderStatus,
		items,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("order %s already recorded: %w", o.OrderID, err)
		}
		return fmt.Errorf("failed to record order: %w", err)
	}
	return nil
}

// RecordVerification stores the attempt and, when it succeeded, marks the order
// verified. Both writes share a transaction.
func (l *OrderLedger) RecordVerification(ctx context.Context, v *domain.VerificationRecord) error {
	return l.WithTx(ctx, func(tx *OrderLedger) error {
		_, err := tx.q.Exec(ctx,
			`INSERT INTO checkout_verifications (id, order_id, payment_id, verified, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			v.ID, v.OrderID, v.PaymentID, v.Verified, v.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert verification: %w", err)
		}

		if !v.Verified {
			return nil
		}

		_, err = tx.q.Exec(ctx,
			`UPDATE checkout_orders
			 SET payment_id = $1, verified = TRUE, verified_at = $2, updated_at = NOW()
			 WHERE order_id = $3`,
			v.PaymentID, v.CreatedAt, v.OrderID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark order verified: %w", err)
		}
		return nil
	})
}

func (l *OrderLedger) FindByOrderID(ctx context.Context, orderID string) (*domain.LedgerOrder, error) {
	row := l.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM checkout_orders WHERE order_id = $1`, orderID)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewOrderNotFoundError(orderID)
		}
		return nil, err
	}
	return o, nil
}

func (l *OrderLedger) List(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error) {
	query := `SELECT ` + orderColumns + `
			  FROM checkout_orders
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := l.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	return collectOrders(rows)
}

func (l *OrderLedger) FindUnsettled(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.LedgerOrder, error) {
	cutoff := time.Now().Add(-olderThan)

	query := `SELECT ` + orderColumns + `
			  FROM checkout_orders
			  WHERE provider_status <> 'paid'
				AND created_at < $1
			  ORDER BY last_synced_at ASC NULLS FIRST
			  LIMIT $2`

	rows, err := l.q.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("query unsettled orders: %w", err)
	}
	return collectOrders(rows)
}

func (l *OrderLedger) UpdateProviderStatus(ctx context.Context, orderID, status string, syncedAt time.Time) error {
	cmdTag, err := l.q.Exec(ctx,
		`UPDATE checkout_orders
		 SET provider_status = $1, last_synced_at = $2, updated_at = NOW()
		 WHERE order_id = $3`,
		status, syncedAt, orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update provider status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.NewOrderNotFoundError(orderID)
	}
	return nil
}

// WithTx executes fn within a database transaction.
func (l *OrderLedger) WithTx(ctx context.Context, fn func(*OrderLedger) error) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&OrderLedger{pool: l.pool, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]*domain.LedgerOrder, error) {
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.LedgerOrder, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.LedgerOrder, error) {
	var (
		o     domain.LedgerOrder
		items []byte
	)
	err := row.Scan(
		&o.OrderID,
		&o.Receipt,
		&o.Amount,
		&o.Currency,
		&o.ProviderStatus,
		&items,
		&o.PaymentID,
		&o.Verified,
		&o.VerifiedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	return &o, nil
}

func orEmpty(items []domain.LineItem) []domain.LineItem {
	if items == nil {
		return []domain.LineItem{}
	}
	return items
}
