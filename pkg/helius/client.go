// Package helius is a thin client for the Helius webhook management API.
package helius

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chainsafe/helisync/internal/metrics"
	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
)

const (
	defaultTimeout = 30 * time.Second

	webhooksPath = "/v0/webhooks"

	// Limit error-body reads so a misbehaving provider cannot exhaust memory.
	maxErrBodyBytes = 4096

	opCreate = "create_webhook"
	opDelete = "delete_webhook"
)

// Client creates and deletes provider webhooks.
type Client struct {
	baseURL    string
	apiKey     string
	txTypes    []string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a Client for baseURL subscribing to txTypes.
func NewClient(baseURL, apiKey string, txTypes []string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		txTypes:    append([]string(nil), txTypes...),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createWebhookRequest struct {
	AccountAddresses []string `json:"accountAddresses"`
	TransactionTypes []string `json:"transactionTypes"`
	WebhookURL       string   `json:"webhookURL"`
	WebhookType      string   `json:"webhookType"`
	Encoding         string   `json:"encoding"`
}

// CreateWebhook registers webhookURL for enhanced transaction delivery and
// returns the provider's response body unchanged.
func (c *Client) CreateWebhook(ctx context.Context, webhookURL string) (json.RawMessage, error) {
	body, err := json.Marshal(&createWebhookRequest{
		AccountAddresses: []string{},
		TransactionTypes: c.txTypes,
		WebhookURL:       webhookURL,
		WebhookType:      "enhanced",
		Encoding:         "json",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal create webhook request: %w", err)
	}

	resp, err := c.do(ctx, opCreate, http.MethodPost, webhooksPath, body)
	if err != nil {
		return nil, apperrors.ExternalServiceError(err, "Failed to register webhook")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ExternalServiceError(fmt.Errorf("read create webhook response: %w", err), "Failed to register webhook")
	}
	if !json.Valid(raw) {
		return nil, apperrors.ExternalServiceError(errors.New("provider returned invalid JSON"), "Failed to register webhook")
	}
	return raw, nil
}

// DeleteWebhook removes the provider webhook with the given id.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	resp, err := c.do(ctx, opDelete, http.MethodDelete, webhooksPath+"/"+url.PathEscape(webhookID), nil)
	if err != nil {
		return apperrors.ExternalServiceError(err, "Failed to delete webhook")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// do sends the request and returns the response only for 2xx statuses.
func (c *Client) do(ctx context.Context, op, method, path string, body []byte) (*http.Response, error) {
	u := c.baseURL + path + "?" + url.Values{"api-key": []string{c.apiKey}}.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(op, "error").Inc()
		// the api key travels in the query string; keep it out of errors
		return nil, fmt.Errorf("call provider %s: %w", op, redact(err, c.apiKey))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		metrics.ProviderRequests.WithLabelValues(op, "error").Inc()
		return nil, readHTTPError(op, resp)
	}

	metrics.ProviderRequests.WithLabelValues(op, "success").Inc()
	return resp, nil
}

func readHTTPError(op string, resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
	if err != nil {
		return fmt.Errorf("provider %s returned %d and body read failed: %w", op, resp.StatusCode, err)
	}
	return fmt.Errorf("provider %s returned %d: %s", op, resp.StatusCode, string(b))
}

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(msg, secret, "REDACTED"))
}
