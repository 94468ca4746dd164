// Package checkout drives one storefront checkout attempt: create an order,
// hand it to the provider's widget, then verify the widget's callback.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
	"github.com/shopspring/decimal"
)

const (
	RouteSuccess = "/payment/success"
	RouteFailure = "/payment/failure"
)

const (
	defaultMerchantName = "Fresh Dairy Hub"
	defaultThemeColor   = "#3B8069"
	defaultTimeout      = 15 * time.Second
)

type Options struct {
	KeyID         string
	MerchantName  string
	ThemeColor    string
	Currency      string
	DeliveryFee   decimal.Decimal
	CreateTimeout time.Duration
	VerifyTimeout time.Duration
	Customer      domain.Customer
	Now           func() time.Time
}

func (o *Options) setDefaults() {
	if o.MerchantName == "" {
		o.MerchantName = defaultMerchantName
	}
	if o.ThemeColor == "" {
		o.ThemeColor = defaultThemeColor
	}
	if o.Currency == "" {
		o.Currency = domain.DefaultCurrency
	}
	if o.CreateTimeout <= 0 {
		o.CreateTimeout = defaultTimeout
	}
	if o.VerifyTimeout <= 0 {
		o.VerifyTimeout = defaultTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Orchestrator runs one checkout attempt at a time. Network calls are made
// without holding the state lock.
type Orchestrator struct {
	api    ports.CheckoutAPI
	widget ports.CheckoutWidget
	nav    ports.Navigator
	cart   ports.CartStore
	logger *slog.Logger
	opts   Options

	mu     sync.Mutex
	state  domain.CheckoutState
	order  *domain.Order
	amount decimal.Decimal
	items  []domain.LineItem
}

func NewOrchestrator(
	api ports.CheckoutAPI,
	widget ports.CheckoutWidget,
	nav ports.Navigator,
	cart ports.CartStore,
	logger *slog.Logger,
	opts Options,
) *Orchestrator {
	opts.setDefaults()
	return &Orchestrator{
		api:    api,
		widget: widget,
		nav:    nav,
		cart:   cart,
		logger: logger,
		opts:   opts,
		state:  domain.StateIdle,
	}
}

func (o *Orchestrator) State() domain.CheckoutState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Order returns the order of the current attempt, if one was created.
func (o *Orchestrator) Order() *domain.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.order == nil {
		return nil
	}
	cp := *o.order
	return &cp
}

// Checkout creates an order for the cart total plus delivery fee and opens
// the widget. Guard failures leave the orchestrator idle. Order creation
// failures move it to FAILURE and the widget is not opened.
func (o *Orchestrator) Checkout(ctx context.Context) error {
	o.mu.Lock()
	if err := o.state.CanTransitionTo(domain.StateCreating); err != nil {
		o.mu.Unlock()
		return err
	}

	cartItems := o.cart.Items()
	if len(cartItems) == 0 {
		o.mu.Unlock()
		return domain.NewEmptyCartError()
	}

	amount := o.cart.TotalPrice().Add(o.opts.DeliveryFee)
	if err := domain.ValidateAmount(amount); err != nil {
		o.mu.Unlock()
		return err
	}

	items := make([]domain.LineItem, 0, len(cartItems))
	for _, it := range cartItems {
		items = append(items, it.LineItem())
	}

	o.state = domain.StateCreating
	o.amount = amount
	o.items = items
	o.order = nil
	o.mu.Unlock()

	cmd := domain.CreateOrderCommand{
		Amount:   amount,
		Currency: o.opts.Currency,
		Receipt:  fmt.Sprintf("order_%d", o.opts.Now().UnixMilli()),
		Items:    items,
	}

	createCtx, cancel := context.WithTimeout(ctx, o.opts.CreateTimeout)
	order, err := o.api.CreateOrder(createCtx, cmd)
	cancel()

	if err == nil && (order == nil || order.ID == "") {
		err = domain.NewOrderCreationFailedError(nil)
	}
	if err != nil {
		o.logger.Error("checkout order creation failed", "receipt", cmd.Receipt, "error", err)
		o.setState(domain.StateFailure)
		return err
	}

	o.mu.Lock()
	o.order = order
	o.state = domain.StateAwaitingProviderCallback
	o.mu.Unlock()

	if err := o.widget.Open(ctx, o.widgetOptions(order, len(cartItems))); err != nil {
		o.logger.Error("failed to open checkout widget", "order_id", order.ID, "error", err)
		o.setState(domain.StateFailure)
		return fmt.Errorf("open checkout widget: %w", err)
	}

	o.logger.Info("checkout widget opened", "order_id", order.ID, "amount", order.Amount)
	return nil
}

// Complete handles the widget's success callback by verifying the payment
// with the server. It clears the cart only when verification succeeds.
func (o *Orchestrator) Complete(ctx context.Context, resp domain.WidgetResponse) (domain.CheckoutState, error) {
	o.mu.Lock()
	if err := o.state.CanTransitionTo(domain.StateVerifying); err != nil {
		state := o.state
		o.mu.Unlock()
		return state, err
	}
	o.state = domain.StateVerifying
	req := domain.VerificationRequest{
		OrderID:   resp.OrderID,
		PaymentID: resp.PaymentID,
		Signature: resp.Signature,
		OrderDetails: &domain.OrderDetails{
			Amount:    o.amount,
			Items:     o.items,
			Timestamp: o.opts.Now().UTC(),
		},
	}
	o.mu.Unlock()

	verifyCtx, cancel := context.WithTimeout(ctx, o.opts.VerifyTimeout)
	result, err := o.api.VerifyPayment(verifyCtx, req)
	cancel()

	if err != nil || result == nil || !result.Success {
		o.logger.Warn("payment verification failed",
			"order_id", resp.OrderID,
			"payment_id", resp.PaymentID,
			"error", err)
		o.setState(domain.StateFailure)
		o.nav.Navigate(RouteFailure)
		if err == nil {
			err = domain.NewVerificationFailedError(nil)
		}
		return domain.StateFailure, err
	}

	o.setState(domain.StateSuccess)
	o.cart.Clear()
	o.logger.Info("payment verified", "order_id", resp.OrderID, "payment_id", resp.PaymentID)
	o.nav.Navigate(RouteSuccess)
	return domain.StateSuccess, nil
}

// Dismiss handles the user closing the widget without paying.
func (o *Orchestrator) Dismiss() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.state.CanTransitionTo(domain.StateCancelled); err != nil {
		return err
	}
	o.state = domain.StateCancelled
	o.logger.Info("checkout dismissed")
	return nil
}

// Reset returns a finished attempt to IDLE so the user can try again.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.state.CanTransitionTo(domain.StateIdle); err != nil {
		return err
	}
	o.state = domain.StateIdle
	o.order = nil
	o.items = nil
	o.amount = decimal.Zero
	return nil
}

func (o *Orchestrator) setState(s domain.CheckoutState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) widgetOptions(order *domain.Order, itemCount int) domain.WidgetOptions {
	return domain.WidgetOptions{
		Key:         o.opts.KeyID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        o.opts.MerchantName,
		Description: fmt.Sprintf("Payment for %d items", itemCount),
		OrderID:     order.ID,
		Prefill:     o.opts.Customer,
		Notes: map[string]string{
			"items_count": fmt.Sprintf("%d", itemCount),
		},
		Theme: domain.WidgetTheme{Color: o.opts.ThemeColor},
		Handler: func(ctx context.Context, resp domain.WidgetResponse) {
			_, _ = o.Complete(ctx, resp)
		},
		OnDismiss: func() {
			if err := o.Dismiss(); err != nil {
				o.logger.Warn("ignored widget dismissal", "error", err)
			}
		},
	}
}
