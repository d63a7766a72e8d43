package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Config holds the connection settings for the sync service.
type Config struct {
	BaseURL         string
	AccessToken     string
	Timeout         time.Duration
	RateLimitPerSec float64
	Burst           int
}

// Client is the HTTP implementation of Gateway.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new sync service client. A non-positive rate disables throttling.
func NewClient(cfg Config) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimitPerSec > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), burst)
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		limiter:     limiter,
	}
}

// Perform sends an operation via POST /api/v1/operations.
func (c *Client) Perform(ctx context.Context, op Operation, entityID string, payload any) (Result, error) {
	url := fmt.Sprintf("%s/api/v1/operations", c.baseURL)

	body, err := json.Marshal(performRequest{Operation: op, EntityID: entityID, Payload: payload})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limiter wait for %s: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return Result{}, fmt.Errorf("remote %s error %d: %s", op, resp.StatusCode, string(raw))
		}
		return Result{}, fmt.Errorf("failed to decode %s response: %w", op, err)
	}

	// An envelope on a non-2xx status still counts as an answer.
	if resp.StatusCode >= http.StatusBadRequest && result.Success {
		result.Success = false
		if result.Error == "" {
			result.Error = fmt.Sprintf("status %d", resp.StatusCode)
		}
	}
	return result, nil
}

// Fetch reads GET /api/v1/{resource}[/{id}].
func (c *Client) Fetch(ctx context.Context, resource Resource, entityID string) ([]byte, error) {
	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, resource)
	if entityID != "" {
		url += "/" + entityID
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait for %s: %w", resource, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch %s request: %w", resource, err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", resource, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, resource, entityID)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("remote fetch %s error %d: %s", resource, resp.StatusCode, string(raw))
	}
	return raw, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}
}

var _ Gateway = (*Client)(nil)
