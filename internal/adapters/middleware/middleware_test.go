package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRecovery(t *testing.T) {
	h := Recovery(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestTimeout(t *testing.T) {
	h := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, timeoutBody, rec.Body.String())
}

func TestLogging_PassesThrough(t *testing.T) {
	h := Logging(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Metrics(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func newValidatedHandler(t *testing.T) http.Handler {
	t.Helper()
	doc, err := api.GetSwagger()
	require.NoError(t, err)

	validate, err := OpenAPIValidator(doc, testLogger())
	require.NoError(t, err)

	return validate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestOpenAPIValidator(t *testing.T) {
	h := newValidatedHandler(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"valid create", http.MethodPost, "/api/payment", `{"amount":25.5,"receipt":"order_1"}`, http.StatusOK},
		{"create missing receipt", http.MethodPost, "/api/payment", `{"amount":25.5}`, http.StatusBadRequest},
		{"create amount as string", http.MethodPost, "/api/payment", `{"amount":"abc","receipt":"order_1"}`, http.StatusBadRequest},
		{"create receipt too long", http.MethodPost, "/api/payment", `{"amount":1,"receipt":"` + strings.Repeat("r", 41) + `"}`, http.StatusBadRequest},
		{"valid verify", http.MethodPost, "/api/payment/verify", `{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"s"}`, http.StatusOK},
		{"verify missing signature", http.MethodPost, "/api/payment/verify", `{"razorpay_order_id":"o","razorpay_payment_id":"p"}`, http.StatusBadRequest},
		{"list with bad limit", http.MethodGet, "/api/payment/orders?limit=abc", "", http.StatusBadRequest},
		{"list with valid limit", http.MethodGet, "/api/payment/orders?limit=5", "", http.StatusOK},
		{"route outside contract", http.MethodGet, "/healthz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusBadRequest {
				body := decodeError(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, "INVALID_INPUT", body.Code)
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}
