package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/cart"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu        sync.Mutex
	createCmd domain.CreateOrderCommand
	verifyReq domain.VerificationRequest
	creates   int
	verifies  int

	CreateOrderFn   func(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error)
	VerifyPaymentFn func(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error)
}

func (f *fakeAPI) CreateOrder(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
	f.mu.Lock()
	f.creates++
	f.createCmd = cmd
	f.mu.Unlock()
	if f.CreateOrderFn != nil {
		return f.CreateOrderFn(ctx, cmd)
	}
	return &domain.Order{
		ID:       "order_ABC",
		Amount:   domain.ToMinorUnits(cmd.Amount),
		Currency: cmd.Currency,
		Receipt:  cmd.Receipt,
	}, nil
}

func (f *fakeAPI) VerifyPayment(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	f.mu.Lock()
	f.verifies++
	f.verifyReq = req
	f.mu.Unlock()
	if f.VerifyPaymentFn != nil {
		return f.VerifyPaymentFn(ctx, req)
	}
	return &domain.VerificationResult{Success: true}, nil
}

type fakeWidget struct {
	opened  []domain.WidgetOptions
	OpenErr error
}

func (w *fakeWidget) Open(ctx context.Context, opts domain.WidgetOptions) error {
	if w.OpenErr != nil {
		return w.OpenErr
	}
	w.opened = append(w.opened, opts)
	return nil
}

type fakeNavigator struct {
	routes []string
}

func (n *fakeNavigator) Navigate(route string) {
	n.routes = append(n.routes, route)
}

type fixture struct {
	api    *fakeAPI
	widget *fakeWidget
	nav    *fakeNavigator
	cart   *cart.Store
	orch   *Orchestrator
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		api:    &fakeAPI{},
		widget: &fakeWidget{},
		nav:    &fakeNavigator{},
		cart:   cart.NewStore(),
	}
	f.cart.Add(domain.Product{ID: 1, Name: "Organic Whole Milk", Price: decimal.RequireFromString("12.75")}, 2)

	if opts.Now == nil {
		opts.Now = func() time.Time { return time.UnixMilli(1700000000000) }
	}
	opts.KeyID = "rzp_test_key"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.orch = NewOrchestrator(f.api, f.widget, f.nav, f.cart, logger, opts)
	return f
}

func TestOrchestrator_HappyPath(t *testing.T) {
	f := newFixture(t, Options{})

	require.NoError(t, f.orch.Checkout(context.Background()))
	assert.Equal(t, domain.StateAwaitingProviderCallback, f.orch.State())

	// 2 x 12.75 = 25.50 -> 2550 minor units
	assert.Equal(t, "order_1700000000000", f.api.createCmd.Receipt)
	assert.Equal(t, "INR", f.api.createCmd.Currency)
	require.Len(t, f.widget.opened, 1)
	opts := f.widget.opened[0]
	assert.Equal(t, int64(2550), opts.Amount)
	assert.Equal(t, "order_ABC", opts.OrderID)
	assert.Equal(t, "rzp_test_key", opts.Key)
	assert.Equal(t, "Fresh Dairy Hub", opts.Name)
	assert.Equal(t, "Payment for 1 items", opts.Description)
	assert.Equal(t, "#3B8069", opts.Theme.Color)
	assert.Equal(t, "1", opts.Notes["items_count"])

	opts.Handler(context.Background(), domain.WidgetResponse{
		OrderID:   "order_ABC",
		PaymentID: "pay_XYZ",
		Signature: "sig",
	})

	assert.Equal(t, domain.StateSuccess, f.orch.State())
	assert.Empty(t, f.cart.Items())
	assert.Equal(t, []string{RouteSuccess}, f.nav.routes)

	req := f.api.verifyReq
	assert.Equal(t, "pay_XYZ", req.PaymentID)
	require.NotNil(t, req.OrderDetails)
	assert.True(t, decimal.RequireFromString("25.50").Equal(req.OrderDetails.Amount))
	assert.Len(t, req.OrderDetails.Items, 1)
}

func TestOrchestrator_DeliveryFeeAdded(t *testing.T) {
	f := newFixture(t, Options{DeliveryFee: decimal.RequireFromString("40")})

	require.NoError(t, f.orch.Checkout(context.Background()))
	assert.True(t, decimal.RequireFromString("65.50").Equal(f.api.createCmd.Amount))
	assert.Equal(t, int64(6550), f.widget.opened[0].Amount)
}

func TestOrchestrator_CreateFailure(t *testing.T) {
	f := newFixture(t, Options{})
	f.api.CreateOrderFn = func(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
		return nil, domain.NewOrderCreationFailedError(nil)
	}

	err := f.orch.Checkout(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.StateFailure, f.orch.State())
	assert.Empty(t, f.widget.opened, "widget must not open")
	assert.Empty(t, f.nav.routes)
	assert.Len(t, f.cart.Items(), 1, "cart is kept")
}

func TestOrchestrator_CreateReturnsNoOrderID(t *testing.T) {
	f := newFixture(t, Options{})
	f.api.CreateOrderFn = func(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
		return &domain.Order{}, nil
	}

	err := f.orch.Checkout(context.Background())

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeOrderCreationFailed))
	assert.Equal(t, domain.StateFailure, f.orch.State())
	assert.Empty(t, f.widget.opened)
}

func TestOrchestrator_CreateTimeout(t *testing.T) {
	f := newFixture(t, Options{CreateTimeout: 20 * time.Millisecond})
	f.api.CreateOrderFn = func(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	err := f.orch.Checkout(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.StateFailure, f.orch.State())
	assert.Empty(t, f.widget.opened)
}

func TestOrchestrator_EmptyCart(t *testing.T) {
	f := newFixture(t, Options{})
	f.cart.Clear()

	err := f.orch.Checkout(context.Background())

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeEmptyCart))
	assert.Equal(t, domain.StateIdle, f.orch.State())
	assert.Equal(t, 0, f.api.creates)
}

func TestOrchestrator_NonPositiveTotal(t *testing.T) {
	f := newFixture(t, Options{})
	f.cart.Clear()
	f.cart.Add(domain.Product{ID: 9, Name: "Free Sample", Price: decimal.Zero}, 1)

	err := f.orch.Checkout(context.Background())

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
	assert.Equal(t, domain.StateIdle, f.orch.State())
}

func TestOrchestrator_VerificationRejected(t *testing.T) {
	f := newFixture(t, Options{})
	f.api.VerifyPaymentFn = func(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
		return &domain.VerificationResult{Success: false}, nil
	}
	require.NoError(t, f.orch.Checkout(context.Background()))

	state, err := f.orch.Complete(context.Background(), domain.WidgetResponse{OrderID: "order_ABC", PaymentID: "pay_1", Signature: "bad"})

	assert.Equal(t, domain.StateFailure, state)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeVerificationFailed))
	assert.Equal(t, []string{RouteFailure}, f.nav.routes)
	assert.Len(t, f.cart.Items(), 1, "cart is kept on failure")
}

func TestOrchestrator_VerificationNetworkError(t *testing.T) {
	f := newFixture(t, Options{VerifyTimeout: 20 * time.Millisecond})
	f.api.VerifyPaymentFn = func(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	require.NoError(t, f.orch.Checkout(context.Background()))

	state, err := f.orch.Complete(context.Background(), domain.WidgetResponse{OrderID: "order_ABC", PaymentID: "pay_1", Signature: "s"})

	assert.Equal(t, domain.StateFailure, state)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{RouteFailure}, f.nav.routes)
}

func TestOrchestrator_Dismiss(t *testing.T) {
	f := newFixture(t, Options{})
	require.NoError(t, f.orch.Checkout(context.Background()))

	f.widget.opened[0].OnDismiss()

	assert.Equal(t, domain.StateCancelled, f.orch.State())
	assert.Empty(t, f.nav.routes)
	assert.Len(t, f.cart.Items(), 1)

	// A late success callback after dismissal is rejected.
	_, err := f.orch.Complete(context.Background(), domain.WidgetResponse{OrderID: "order_ABC", PaymentID: "pay_1", Signature: "s"})
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidTransition))
	assert.Equal(t, 0, f.api.verifies)
}

func TestOrchestrator_WidgetOpenFailure(t *testing.T) {
	f := newFixture(t, Options{})
	f.widget.OpenErr = errors.New("script failed to load")

	err := f.orch.Checkout(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.StateFailure, f.orch.State())
}

func TestOrchestrator_RejectsOutOfOrderCalls(t *testing.T) {
	f := newFixture(t, Options{})

	_, err := f.orch.Complete(context.Background(), domain.WidgetResponse{})
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidTransition))

	assert.True(t, domain.IsErrorCode(f.orch.Dismiss(), domain.ErrCodeInvalidTransition))
	assert.True(t, domain.IsErrorCode(f.orch.Reset(), domain.ErrCodeInvalidTransition))

	require.NoError(t, f.orch.Checkout(context.Background()))
	assert.True(t, domain.IsErrorCode(f.orch.Checkout(context.Background()), domain.ErrCodeInvalidTransition))
	assert.Equal(t, 1, f.api.creates)
}

func TestOrchestrator_ResetAllowsRetry(t *testing.T) {
	f := newFixture(t, Options{})
	f.api.CreateOrderFn = func(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
		return nil, errors.New("boom")
	}
	require.Error(t, f.orch.Checkout(context.Background()))
	require.NoError(t, f.orch.Reset())
	assert.Equal(t, domain.StateIdle, f.orch.State())
	assert.Nil(t, f.orch.Order())

	f.api.CreateOrderFn = nil
	require.NoError(t, f.orch.Checkout(context.Background()))
	assert.Equal(t, domain.StateAwaitingProviderCallback, f.orch.State())
	assert.Equal(t, "order_ABC", f.orch.Order().ID)
	assert.Equal(t, 2, f.api.creates)
}
