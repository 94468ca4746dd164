package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
)

var errWidgetNotOpen = errors.New("checkout widget is not open")

// terminalWidget stands in for the provider's hosted checkout. It prints the
// options and takes the callback from a line of input:
// "<order_id> <payment_id> <signature>" or "dismiss".
type terminalWidget struct {
	out io.Writer

	mu   sync.Mutex
	opts *domain.WidgetOptions
}

func newTerminalWidget(out io.Writer) *terminalWidget {
	return &terminalWidget{out: out}
}

func (w *terminalWidget) Open(ctx context.Context, opts domain.WidgetOptions) error {
	b, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode widget options: %w", err)
	}

	w.mu.Lock()
	w.opts = &opts
	w.mu.Unlock()

	fmt.Fprintf(w.out, "Checkout widget opened:\n%s\n", b)
	fmt.Fprintln(w.out, `Enter "<order_id> <payment_id> <signature>" to pay, or "dismiss" to cancel:`)
	return nil
}

// Await reads one callback line and dispatches it to the open widget's handlers.
func (w *terminalWidget) Await(ctx context.Context, in io.Reader) error {
	w.mu.Lock()
	opts := w.opts
	w.opts = nil
	w.mu.Unlock()

	if opts == nil {
		return errWidgetNotOpen
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read widget input: %w", err)
		}
		opts.OnDismiss()
		return nil
	}

	fields := strings.Fields(scanner.Text())
	switch {
	case len(fields) == 1 && strings.EqualFold(fields[0], "dismiss"):
		opts.OnDismiss()
	case len(fields) == 3:
		opts.Handler(ctx, domain.WidgetResponse{
			OrderID:   fields[0],
			PaymentID: fields[1],
			Signature: fields[2],
		})
	default:
		opts.OnDismiss()
		return fmt.Errorf("unrecognised widget input %q", scanner.Text())
	}
	return nil
}

type terminalNavigator struct {
	out io.Writer
}

func (n *terminalNavigator) Navigate(route string) {
	fmt.Fprintf(n.out, "Navigating to %s\n", route)
}
