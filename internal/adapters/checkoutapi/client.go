// Package checkoutapi is the storefront's HTTP client for the checkout server.
package checkoutapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the server at baseURL. Timeouts come from the
// caller's context, so the http.Client carries none of its own.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

var _ ports.CheckoutAPI = (*Client)(nil)

// createOrderBody sends the amount as a JSON number; decimal.Decimal would
// marshal it as a string.
type createOrderBody struct {
	Amount   json.Number       `json:"amount"`
	Currency string            `json:"currency,omitempty"`
	Receipt  string            `json:"receipt"`
	Items    []domain.LineItem `json:"items,omitempty"`
}

type createOrderResult struct {
	Success bool          `json:"success"`
	Order   *domain.Order `json:"order"`
}

type verifyResult struct {
	Success bool `json:"success"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PublicConfig is what GET /api/payment/config exposes.
type PublicConfig struct {
	Success  bool   `json:"success"`
	KeyID    string `json:"key_id"`
	Currency string `json:"currency"`
}

// StatusError is a non-2xx answer that did not map to a domain error.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("checkout server returned %d: %s", e.StatusCode, e.Message)
}

func (c *Client) CreateOrder(ctx context.Context, cmd domain.CreateOrderCommand) (*domain.Order, error) {
	body := createOrderBody{
		Amount:   json.Number(cmd.Amount.String()),
		Currency: cmd.Currency,
		Receipt:  cmd.Receipt,
		Items:    cmd.Items,
	}

	resp, err := doRequest[createOrderBody, createOrderResult](c, ctx, http.MethodPost, "/api/payment", &body)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeInvalidAmount) || domain.IsErrorCode(err, domain.ErrCodeInvalidInput) {
			return nil, err
		}
		return nil, domain.NewOrderCreationFailedError(err)
	}
	if !resp.Success || resp.Order == nil || resp.Order.ID == "" {
		return nil, domain.NewOrderCreationFailedError(fmt.Errorf("response carried no order"))
	}
	return resp.Order, nil
}

// VerifyPayment reports a signature mismatch as an unsuccessful result rather
// than an error.
func (c *Client) VerifyPayment(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	resp, err := doRequest[domain.VerificationRequest, verifyResult](c, ctx, http.MethodPost, "/api/payment/verify", &req)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeVerificationFailed) {
			return &domain.VerificationResult{Success: false}, nil
		}
		return nil, err
	}
	return &domain.VerificationResult{Success: resp.Success}, nil
}

func (c *Client) FetchConfig(ctx context.Context) (*PublicConfig, error) {
	return doRequest[any, PublicConfig](c, ctx, http.MethodGet, "/api/payment/config", nil)
}

func doRequest[Req any, Resp any](c *Client, ctx context.Context, method, path string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}

	var out Resp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}
	return &out, nil
}

// decodeError turns 4xx bodies carrying a code back into domain errors.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	if resp.StatusCode < 500 && body.Code != "" {
		return &domain.DomainError{Code: body.Code, Message: body.Message}
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: body.Message}
}
