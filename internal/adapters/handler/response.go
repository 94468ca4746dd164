package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

const msgInternalError = "Internal server error"

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondWithError maps domain errors to HTTP statuses. Anything else is an
// internal error and its text is not sent to the client.
func respondWithError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	code := "INTERNAL_ERROR"
	message := msgInternalError
	status := http.StatusInternalServerError

	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeInvalidAmount, domain.ErrCodeInvalidInput, domain.ErrCodeEmptyCart, domain.ErrCodeVerificationFailed:
			status = http.StatusBadRequest
		case domain.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		case domain.ErrCodeInvalidTransition:
			status = http.StatusConflict
		case domain.ErrCodeOrderCreationFailed:
			status = http.StatusInternalServerError
		default:
			status = http.StatusBadRequest
		}
	}

	respondWithJSON(w, status, ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
	})
}
