package handler

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/oapi-codegen/runtime"
)

type OrderView struct {
	OrderID        string            `json:"order_id"`
	Receipt        string            `json:"receipt"`
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	ProviderStatus string            `json:"provider_status"`
	Items          []domain.LineItem `json:"items"`
	PaymentID      *string           `json:"payment_id,omitempty"`
	Verified       *bool             `json:"verified,omitempty"`
	VerifiedAt     *time.Time        `json:"verified_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	LastSyncedAt   *time.Time        `json:"last_synced_at,omitempty"`
}

type OrderResponse struct {
	Success bool       `json:"success"`
	Order   *OrderView `json:"order"`
}

type OrderListResponse struct {
	Success bool         `json:"success"`
	Orders  []*OrderView `json:"orders"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func toOrderView(o *domain.LedgerOrder) *OrderView {
	items := o.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return &OrderView{
		OrderID:        o.OrderID,
		Receipt:        o.Receipt,
		Amount:         o.Amount,
		Currency:       o.Currency,
		ProviderStatus: o.ProviderStatus,
		Items:          items,
		PaymentID:      o.PaymentID,
		Verified:       o.Verified,
		VerifiedAt:     o.VerifiedAt,
		CreatedAt:      o.CreatedAt,
		LastSyncedAt:   o.LastSyncedAt,
	}
}

// HandleGetOrder returns the ledger record of an order
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        orderId  path      string  true  "Provider order id"
// @Success      200      {object}  OrderResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/payment/orders/{orderId} [get]
func (h *CheckoutHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", r.PathValue("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		respondWithError(w, domain.NewInvalidInputError("invalid orderId"))
		return
	}

	order, err := h.queryService.GetOrder(r.Context(), orderID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrderResponse{
		Success: true,
		Order:   toOrderView(order),
	})
}

// HandleListOrders pages through recorded orders, newest first
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        limit   query     int  false  "Page size (1-100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  OrderListResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /api/payment/orders [get]
func (h *CheckoutHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := 10, 0

	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		respondWithError(w, domain.NewInvalidInputError("invalid limit"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &offset); err != nil {
		respondWithError(w, domain.NewInvalidInputError("invalid offset"))
		return
	}

	orders, err := h.queryService.ListOrders(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, err)
		return
	}

	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	respondWithJSON(w, http.StatusOK, OrderListResponse{
		Success: true,
		Orders:  views,
		Limit:   limit,
		Offset:  offset,
	})
}
