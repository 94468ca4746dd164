package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/checkoutapi"
	"github.com/DanielPopoola/freshdairy-checkout/internal/cart"
	"github.com/DanielPopoola/freshdairy-checkout/internal/checkout"
	"github.com/DanielPopoola/freshdairy-checkout/internal/config"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/signature"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type checkoutFlags struct {
	serverURL string
	items     []string
	name      string
	email     string
	contact   string
}

func newRootCmd() *cobra.Command {
	flags := &checkoutFlags{}

	root := &cobra.Command{
		Use:           "checkout",
		Short:         "Run a Fresh Dairy Hub checkout from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, flags)
		},
	}

	root.Flags().StringVar(&flags.serverURL, "server", "", "checkout server URL (defaults to checkout.server_url)")
	root.Flags().StringArrayVar(&flags.items, "item", nil, "cart line as id:name:price:qty (repeatable)")
	root.Flags().StringVar(&flags.name, "name", "", "customer name for prefill")
	root.Flags().StringVar(&flags.email, "email", "", "customer email for prefill")
	root.Flags().StringVar(&flags.contact, "contact", "", "customer phone for prefill")

	root.AddCommand(newSignCmd())
	return root
}

func runCheckout(cmd *cobra.Command, flags *checkoutFlags) error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Logger.NewLogger()

	serverURL := cfg.Checkout.ServerURL
	if flags.serverURL != "" {
		serverURL = flags.serverURL
	}

	fee, err := decimal.NewFromString(cfg.Checkout.DeliveryFee)
	if err != nil {
		return fmt.Errorf("invalid delivery fee %q: %w", cfg.Checkout.DeliveryFee, err)
	}

	store := cart.NewStore()
	for _, raw := range flags.items {
		p, qty, err := parseItem(raw)
		if err != nil {
			return err
		}
		store.Add(p, qty)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := checkoutapi.NewClient(serverURL, nil)

	cfgCtx, cancel := context.WithTimeout(ctx, cfg.Checkout.CreateTimeout)
	public, err := client.FetchConfig(cfgCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("fetch payment config: %w", err)
	}

	out := cmd.OutOrStdout()
	widget := newTerminalWidget(out)

	orch := checkout.NewOrchestrator(client, widget, &terminalNavigator{out: out}, store, logger, checkout.Options{
		KeyID:         public.KeyID,
		MerchantName:  cfg.Checkout.MerchantName,
		ThemeColor:    cfg.Checkout.ThemeColor,
		Currency:      public.Currency,
		DeliveryFee:   fee,
		CreateTimeout: cfg.Checkout.CreateTimeout,
		VerifyTimeout: cfg.Checkout.VerifyTimeout,
		Customer: domain.Customer{
			Name:    flags.name,
			Email:   flags.email,
			Contact: flags.contact,
		},
	})

	fmt.Fprintf(out, "Cart: %d items, subtotal %s, delivery %s\n", store.TotalItems(), store.TotalPrice().StringFixed(2), fee.StringFixed(2))

	if err := orch.Checkout(ctx); err != nil {
		fmt.Fprintf(out, "Checkout failed: %v\n", err)
		return err
	}

	if err := widget.Await(ctx, cmd.InOrStdin()); err != nil {
		return err
	}

	state := orch.State()
	fmt.Fprintf(out, "Checkout finished: %s\n", state)
	if state == domain.StateFailure {
		return fmt.Errorf("payment was not verified")
	}
	return nil
}

// parseItem reads id:name:price:qty. The name may itself contain colons.
func parseItem(raw string) (domain.Product, int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 4 {
		return domain.Product{}, 0, fmt.Errorf("invalid item %q: want id:name:price:qty", raw)
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.Product{}, 0, fmt.Errorf("invalid item id in %q: %w", raw, err)
	}
	price, err := decimal.NewFromString(parts[len(parts)-2])
	if err != nil {
		return domain.Product{}, 0, fmt.Errorf("invalid item price in %q: %w", raw, err)
	}
	qty, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return domain.Product{}, 0, fmt.Errorf("invalid item quantity in %q: %w", raw, err)
	}

	name := strings.Join(parts[1:len(parts)-2], ":")
	if name == "" {
		return domain.Product{}, 0, fmt.Errorf("invalid item %q: name is empty", raw)
	}

	return domain.Product{ID: id, Name: name, Price: price}, qty, nil
}

func newSignCmd() *cobra.Command {
	var orderID, paymentID, secret string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the signature the provider would send for an order and payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("CHECKOUT_RAZORPAY__KEY_SECRET")
			}
			if orderID == "" || paymentID == "" || secret == "" {
				return fmt.Errorf("order id, payment id and secret are required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature.Sign(orderID, paymentID, secret))
			return nil
		},
	}

	cmd.Flags().StringVar(&orderID, "order-id", "", "provider order id")
	cmd.Flags().StringVar(&paymentID, "payment-id", "", "provider payment id")
	cmd.Flags().StringVar(&secret, "secret", "", "key secret (defaults to CHECKOUT_RAZORPAY__KEY_SECRET)")
	return cmd
}
