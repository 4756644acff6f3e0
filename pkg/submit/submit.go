/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package submit registers encoded compute driver artifacts with the
// Dataloop control plane. It wraps the gateway's compute endpoints with
// retrying HTTP, client-side rate limiting, and per-request IDs.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/defaults"
	"github.com/dataloop-ai/computectl/pkg/errors"
	"github.com/dataloop-ai/computectl/pkg/logging"
)

const (
	defaultRetryMax   = 3
	defaultRateLimit  = rate.Limit(5) // requests per second
	defaultRateBurst  = 5
	headerRequestID   = "X-Request-ID"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Driver is the control-plane record created for a registered compute
// driver.
type Driver struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Client talks to the control-plane compute API of one environment.
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
	limiter *rate.Limiter
}

// Option is a functional option for configuring Client instances.
type Option func(*Client)

// WithBaseURL overrides the environment-derived gateway URL. Used by
// tests pointing the client at a local server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithRetryMax overrides the retry count for transient failures.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

// WithRetryWait overrides the backoff window between retries.
func WithRetryWait(min, max time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = min
		c.http.RetryWaitMax = max
	}
}

// WithRateLimit overrides the client-side request rate limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// New creates a control-plane client for the given environment.
func New(env compute.Environment, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = defaultRetryMax
	rc.HTTPClient.Timeout = defaults.HTTPClientTimeout
	rc.Logger = logging.NewLogLogger(slog.LevelDebug)

	c := &Client{
		baseURL: env.GatewayURL(),
		http:    rc,
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// createComputeRequest is the gateway payload for driver registration.
type createComputeRequest struct {
	Org    string `json:"org"`
	Type   string `json:"type"`
	Config string `json:"config"`
}

// setDefaultRequest marks a driver as the org default.
type setDefaultRequest struct {
	UpdateExistingServices bool `json:"updateExistingServices"`
}

// CreateCompute registers a base64 driver artifact for an organization
// and returns the created driver record.
func (c *Client) CreateCompute(ctx context.Context, orgID, artifact string) (*Driver, error) {
	body := createComputeRequest{
		Org:    orgID,
		Type:   "kubernetes",
		Config: artifact,
	}

	var driver Driver
	url := fmt.Sprintf("%s/compute", c.baseURL)
	if err := c.do(ctx, http.MethodPost, url, body, &driver); err != nil {
		return nil, err
	}

	slog.Info("compute driver created",
		"org", orgID,
		"driver", driver.ID,
		"status", driver.Status)
	return &driver, nil
}

// SetDefaultDriver marks a driver as the default compute driver for an
// organization. When updateExistingServices is true, the control plane
// migrates running services to the new driver.
func (c *Client) SetDefaultDriver(ctx context.Context, orgID, driverID string, updateExistingServices bool) error {
	body := setDefaultRequest{
		UpdateExistingServices: updateExistingServices,
	}

	url := fmt.Sprintf("%s/orgs/%s/compute/%s/default", c.baseURL, orgID, driverID)
	if err := c.do(ctx, http.MethodPost, url, body, nil); err != nil {
		return err
	}

	slog.Info("default compute driver set",
		"org", orgID,
		"driver", driverID,
		"updateExistingServices", updateExistingServices)
	return nil
}

// do sends one JSON request and decodes the JSON response into out when
// out is non-nil. Rate limiting applies before the request; retries for
// transient failures happen inside the retryable client.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to encode request body", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create request", err)
	}
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeUnavailable,
			"control-plane request failed", err,
			map[string]any{"url": url})
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp, url)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "failed to decode response", err)
		}
	}
	return nil
}

// statusError maps an HTTP error response to a structured error. The
// response body is included in context for diagnostics, truncated to keep
// log records bounded.
func statusError(resp *http.Response, url string) error {
	const maxBody = 512
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	clCtx := map[string]any{
		"url":    url,
		"status": resp.StatusCode,
		"body":   string(raw),
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewWithContext(errors.ErrCodeUnauthorized,
			"control plane rejected credentials", clCtx)
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewWithContext(errors.ErrCodeNotFound,
			"control-plane resource not found", clCtx)
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.NewWithContext(errors.ErrCodeUnavailable,
			"control plane unavailable", clCtx)
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"control plane rejected request", clCtx)
	}
}
