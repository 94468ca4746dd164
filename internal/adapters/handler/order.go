package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/observability"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	Amount   decimal.Decimal   `json:"amount" swaggertype:"number" example:"25.50"`
	Currency string            `json:"currency,omitempty" validate:"omitempty,len=3" example:"INR"`
	Receipt  string            `json:"receipt" validate:"required,max=40" example:"order_1700000000000"`
	Items    []domain.LineItem `json:"items,omitempty" validate:"dive"`
}

type CreateOrderResponse struct {
	Success bool          `json:"success"`
	Order   *domain.Order `json:"order"`
}

// HandleCreateOrder creates a provider order for the given display amount
// @Summary      Create a payment order
// @Description  Converts the amount to minor units and creates an order with the payment provider.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest   true  "Order details"
// @Success      200      {object}  CreateOrderResponse  "Order created"
// @Failure      400      {object}  ErrorResponse        "Invalid amount or receipt"
// @Failure      500      {object}  ErrorResponse        "Failed to create payment"
// @Router       /api/payment [post]
func (h *CheckoutHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, domain.NewInvalidInputError("could not read request body"))
		return
	}

	var req CreateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, domain.NewInvalidInputError("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, domain.NewInvalidInputError(err.Error()))
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), domain.CreateOrderCommand{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Items:    req.Items,
	})
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeOrderCreationFailed) {
			observability.OrdersCreated.WithLabelValues(observability.ResultFailure).Inc()
		} else {
			observability.OrdersCreated.WithLabelValues(observability.ResultInvalid).Inc()
		}
		respondWithError(w, err)
		return
	}

	observability.OrdersCreated.WithLabelValues(observability.ResultSuccess).Inc()
	respondWithJSON(w, http.StatusOK, CreateOrderResponse{
		Success: true,
		Order:   order,
	})
}
