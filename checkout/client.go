package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const checkoutPath = "/api/checkout"

// DefaultTimeout bounds a checkout request when no timeout is configured.
// Timeout policy belongs to the transport, not the flow, and should come
// from configuration in real deployments.
const DefaultTimeout = 10 * time.Second

// PaymentClient submits a checkout request to the payment collaborator and
// returns its verdict. Implementations decide nothing about SUCCESS vs
// FAILED; that is the collaborator's call.
type PaymentClient interface {
	Checkout(ctx context.Context, req Request) (Result, error)
}

// HTTPClient is the PaymentClient for the real backend, posting to
// <baseURL>/api/checkout.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// HTTPClientOption defines a function type to modify the HTTPClient instance.
type HTTPClientOption func(*HTTPClient)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client entirely.
func WithHTTPClient(client *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// NewHTTPClient creates a PaymentClient for the backend at baseURL
// (e.g. "http://localhost:8080").
func NewHTTPClient(baseURL string, options ...HTTPClientOption) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, errors.New("[NewHTTPClient] baseURL is required")
	}

	c := &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// Checkout posts the request and decodes the collaborator's verdict.
// Transport failures and contract violations come back as errors; the
// caller (the Flow) downgrades them to an ERROR result.
func (c *HTTPClient) Checkout(ctx context.Context, req Request) (Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, errors.Wrap(err, "[HTTPClient.Checkout] marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkoutPath, bytes.NewReader(body))
	if err != nil {
		return Result{}, errors.Wrap(err, "[HTTPClient.Checkout] build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Result{}, errors.Wrap(err, "[HTTPClient.Checkout] post")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, errors.Wrapf(ErrUnexpectedResponse, "[HTTPClient.Checkout] status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, errors.Wrap(err, "[HTTPClient.Checkout] decode response")
	}

	switch result.Status {
	case StatusSuccess, StatusFailed, StatusError:
		return result, nil
	default:
		return Result{}, errors.Wrapf(ErrUnexpectedResponse, "[HTTPClient.Checkout] status %q", result.Status)
	}
}

var _ PaymentClient = (*HTTPClient)(nil)
