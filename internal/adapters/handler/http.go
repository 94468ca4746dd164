package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/go-playground/validator"
)

type OrderService interface {
	CreateOrder(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error)
}

type VerificationService interface {
	Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error)
}

type QueryService interface {
	GetOrder(ctx context.Context, orderID string) (*domain.LedgerOrder, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*domain.LedgerOrder, error)
}

// PublicConfig is the non-secret configuration the storefront needs to open
// the checkout widget.
type PublicConfig struct {
	KeyID    string
	Currency string
}

type CheckoutHandler struct {
	orderService  OrderService
	verifyService VerificationService
	queryService  QueryService
	public        PublicConfig
	validate      *validator.Validate
	logger        *slog.Logger
}

func NewCheckoutHandler(
	orderService OrderService,
	verifyService VerificationService,
	queryService QueryService,
	public PublicConfig,
	logger *slog.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		orderService:  orderService,
		verifyService: verifyService,
		queryService:  queryService,
		public:        public,
		validate:      validator.New(),
		logger:        logger,
	}
}

func (h *CheckoutHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payment", h.HandleCreateOrder)
	mux.HandleFunc("POST /api/payment/verify", h.HandleVerifyPayment)
	mux.HandleFunc("GET /api/payment/config", h.HandleGetConfig)
	mux.HandleFunc("GET /api/payment/orders", h.HandleListOrders)
	mux.HandleFunc("GET /api/payment/orders/{orderId}", h.HandleGetOrder)
}
