package razorpay_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/razorpay"
	"github.com/DanielPopoola/freshdairy-checkout/internal/config"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRetryConfig = config.RetryConfig{
	BaseDelay:  time.Millisecond,
	MaxRetries: 3,
}

func TestRetryClient_FetchOrder_Success(t *testing.T) {
	mockProvider := mocks.NewMockPaymentProvider(t)
	retryClient := razorpay.NewRetryClient(mockProvider, testRetryConfig)

	expected := &domain.Order{ID: "order_1", Status: domain.OrderStatusAttempted}
	mockProvider.EXPECT().
		FetchOrder(mock.Anything, "order_1").
		Return(expected, nil).
		Once()

	order, err := retryClient.FetchOrder(context.Background(), "order_1")

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestRetryClient_FetchOrder_RetriesOn5xx(t *testing.T) {
	mockProvider := mocks.NewMockPaymentProvider(t)
	retryClient := razorpay.NewRetryClient(mockProvider, testRetryConfig)

	// First two calls fail with 500
	mockProvider.EXPECT().
		FetchOrder(mock.Anything, "order_1").
		Return(nil, &razorpay.ProviderError{
			Code:        "SERVER_ERROR",
			Description: "The server encountered an error",
			StatusCode:  500,
		}).
		Twice()

	// Third call succeeds
	expected := &domain.Order{ID: "order_1", Status: domain.OrderStatusPaid}
	mockProvider.EXPECT().
		FetchOrder(mock.Anything, "order_1").
		Return(expected, nil).
		Once()

	order, err := retryClient.FetchOrder(context.Background(), "order_1")

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestRetryClient_FetchOrder_DoesNotRetryOn4xx(t *testing.T) {
	mockProvider := mocks.NewMockPaymentProvider(t)
	retryClient := razorpay.NewRetryClient(mockProvider, testRetryConfig)

	expectedErr := &razorpay.ProviderError{
		Code:        "BAD_REQUEST_ERROR",
		Description: "The id provided does not exist",
		StatusCode:  400,
	}

	// Should only be called once (no retry on 4xx)
	mockProvider.EXPECT().
		FetchOrder(mock.Anything, "order_missing").
		Return(nil, expectedErr).
		Once()

	order, err := retryClient.FetchOrder(context.Background(), "order_missing")

	assert.Nil(t, order)
	assert.Equal(t, expectedErr, err)
}

func TestRetryClient_FetchOrder_ExhaustsRetries(t *testing.T) {
	mockProvider := mocks.NewMockPaymentProvider(t)
	retryClient := razorpay.NewRetryClient(mockProvider, testRetryConfig)

	mockProvider.EXPECT().
		FetchOrder(mock.Anything, "order_1").
		Return(nil, errors.New("connection reset by peer")).
		Times(3)

	_, err := retryClient.FetchOrder(context.Background(), "order_1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryClient_FetchOrder_StopsOnCancelledContext(t *testing.T) {
	mockProvider := mocks.NewMockPaymentProvider(t)
	retryClient := razorpay.NewRetryClient(mockProvider, testRetryConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retryClient.FetchOrder(ctx, "order_1")

	assert.ErrorIs(t, err, context.Canceled)
	mockProvider.AssertNotCalled(t, "FetchOrder", mock.Anything, mock.Anything)
}

func TestRetryClient_CreateOrder_NeverRetries(t *testing.T) {
	mockProvider := mocks.NewMockPaymentProvider(t)
	retryClient := razorpay.NewRetryClient(mockProvider, testRetryConfig)

	req := domain.CreateOrderRequest{Amount: 1000, Currency: "INR", Receipt: "r-1"}
	mockProvider.EXPECT().
		CreateOrder(mock.Anything, req).
		Return(nil, &razorpay.ProviderError{Code: "SERVER_ERROR", StatusCode: 503}).
		Once()

	_, err := retryClient.CreateOrder(context.Background(), req)

	require.Error(t, err)
}
