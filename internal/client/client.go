// Package client is a typed HTTP client for the storefront API. Calls go
// through a bulkhead and a circuit breaker; only transport failures and 5xx
// responses count against the breaker.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/patterns"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const sessionHeader = "X-Session-ID"

// APIError is a non-2xx response from the storefront
type APIError struct {
	Status  int                          `json:"-"`
	Code    string                       `json:"error"`
	Message string                       `json:"message"`
	Fields  map[string]models.FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		return fmt.Sprintf("storefront returned %d %s: %s", e.Status, e.Code, strings.Join(names, ", "))
	}
	return fmt.Sprintf("storefront returned %d %s: %s", e.Status, e.Code, e.Message)
}

// Options configures a Client
type Options struct {
	BaseURL     string
	Concurrency int
	Breaker     patterns.BreakerSettings
}

// Client talks to one storefront
type Client struct {
	http     *resty.Client
	circuit  *patterns.CircuitBreakerWrapper
	bulkhead *patterns.Bulkhead
}

// New creates a client for the storefront at opts.BaseURL
func New(opts Options) *Client {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 10
	}
	if opts.Breaker == (patterns.BreakerSettings{}) {
		opts.Breaker = patterns.DefaultBreakerSettings()
	}

	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
			SetTimeout(patterns.SubmitTimeout).
			SetHeader("Content-Type", "application/json").
			SetRetryCount(0), // the breaker decides, not resty
		circuit:  patterns.NewCircuitBreakerWithSettings("Storefront", "storefront-client", opts.Breaker),
		bulkhead: patterns.NewBulkhead(opts.Concurrency, "storefront", "storefront-client"),
	}
}

// CircuitState reports the breaker state
func (c *Client) CircuitState() string {
	return c.circuit.GetState()
}

// do sends one request and decodes a 2xx body into out. Client errors come
// back as *APIError without tripping the breaker.
func (c *Client) do(ctx context.Context, method, path, sessionID string, body, out interface{}) error {
	var apiErr *APIError

	err := c.bulkhead.Execute(ctx, func(ctx context.Context) error {
		_, cbErr := c.circuit.Execute(func() (interface{}, error) {
			req := c.http.R().SetContext(ctx)
			if sessionID != "" {
				req.SetHeader(sessionHeader, sessionID)
			}
			if body != nil {
				req.SetBody(body)
			}

			resp, httpErr := req.Execute(method, path)
			if httpErr != nil {
				return nil, fmt.Errorf("HTTP error: %w", httpErr)
			}

			if resp.IsError() {
				e := &APIError{Status: resp.StatusCode()}
				if err := json.Unmarshal(resp.Body(), e); err != nil {
					e.Message = resp.String()
				}
				if resp.StatusCode() >= http.StatusInternalServerError {
					return nil, e
				}
				apiErr = e
				return nil, nil
			}

			if out != nil && len(resp.Body()) > 0 {
				if err := json.Unmarshal(resp.Body(), out); err != nil {
					return nil, fmt.Errorf("failed to parse response: %w", err)
				}
			}
			return nil, nil
		})
		return patterns.FormatError("Storefront", cbErr)
	})
	if err != nil {
		log.WithFields(log.Fields{
			"method": method,
			"path":   path,
			"error":  err,
		}).Warn("Storefront request failed")
		return err
	}
	if apiErr != nil {
		return apiErr
	}
	return nil
}
