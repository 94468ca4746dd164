package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInvalidTransition   = "INVALID_TRANSITION"
	ErrCodeOrderCreationFailed = "ORDER_CREATION_FAILED"
	ErrCodeVerificationFailed  = "VERIFICATION_FAILED"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
)

// Messages returned to clients. Provider details never leave the server.
const (
	MsgOrderCreationFailed = "Failed to create payment"
	MsgVerificationFailed  = "Payment verification failed"
)

func NewInvalidAmountError(amount string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %s", amount),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidInputError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

func NewEmptyCartError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyCart,
		Message: "cart is empty",
	}
}

func NewInvalidTransitionError(from, to CheckoutState) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

// NewOrderCreationFailedError hides the provider failure behind a fixed message.
func NewOrderCreationFailedError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeOrderCreationFailed,
		Message: MsgOrderCreationFailed,
		Err:     err,
	}
}

func NewVerificationFailedError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeVerificationFailed,
		Message: MsgVerificationFailed,
		Err:     err,
	}
}

func NewOrderNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOrderNotFound,
		Message: fmt.Sprintf("order with ID %s not found", id),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
