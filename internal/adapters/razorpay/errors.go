package razorpay

import (
	"errors"
	"fmt"
)

// ProviderError is a non-2xx answer from the Razorpay API.
type ProviderError struct {
	Code        string
	Description string
	Reason      string
	StatusCode  int
}

// ErrorResponse is the provider's error envelope.
type ErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
		Source      string `json:"source"`
		Step        string `json:"step"`
		Reason      string `json:"reason"`
	} `json:"error"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("razorpay error [%s]: %s (status: %d)", e.Code, e.Description, e.StatusCode)
}

// IsRetryable reports server-side and rate-limit failures.
func (e *ProviderError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

func IsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}
