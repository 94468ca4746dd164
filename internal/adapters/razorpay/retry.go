package razorpay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/config"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
)

// RetryClient retries idempotent reads. Order creation is passed through
// untouched: a retried create could mint a second provider order.
type RetryClient struct {
	inner      ports.PaymentProvider
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner ports.PaymentProvider, cfg config.RetryConfig) *RetryClient {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

var _ ports.PaymentProvider = (*RetryClient)(nil)

func (r *RetryClient) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	return r.inner.CreateOrder(ctx, req)
}

// FetchOrder with retry logic
func (r *RetryClient) FetchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return retry(r, ctx, func(ctx context.Context) (*domain.Order, error) {
		return r.inner.FetchOrder(ctx, orderID)
	})
}

func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if providerErr, ok := IsProviderError(err); ok {
		return providerErr.IsRetryable()
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	// Transport failures and timeouts.
	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	var jitter time.Duration
	if r.baseDelay > 0 {
		jitter = time.Duration(rand.Int63n(int64(r.baseDelay)))
	}

	return base + jitter
}
