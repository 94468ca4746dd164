package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/observability"
)

type VerifyPaymentResponse struct {
	Success bool `json:"success"`
}

// HandleVerifyPayment checks the signature the checkout widget returned
// @Summary      Verify a payment
// @Description  Recomputes HMAC-SHA256(secret, order_id|payment_id) and compares it with the supplied signature.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      domain.VerificationRequest  true  "Widget callback payload"
// @Success      200      {object}  VerifyPaymentResponse       "Signature valid"
// @Failure      400      {object}  ErrorResponse               "Missing fields or signature mismatch"
// @Failure      500      {object}  ErrorResponse               "Internal server error"
// @Router       /api/payment/verify [post]
func (h *CheckoutHandler) HandleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, domain.NewInvalidInputError("could not read request body"))
		return
	}

	var req domain.VerificationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		observability.Verifications.WithLabelValues(observability.ResultInvalid).Inc()
		respondWithError(w, domain.NewInvalidInputError("invalid request body"))
		return
	}

	result, err := h.verifyService.Verify(r.Context(), req)
	if err != nil {
		observability.Verifications.WithLabelValues(observability.ResultInvalid).Inc()
		respondWithError(w, err)
		return
	}

	if !result.Success {
		observability.Verifications.WithLabelValues(observability.ResultMismatch).Inc()
		respondWithError(w, domain.NewVerificationFailedError(nil))
		return
	}

	observability.Verifications.WithLabelValues(observability.ResultSuccess).Inc()
	respondWithJSON(w, http.StatusOK, VerifyPaymentResponse{Success: true})
}
