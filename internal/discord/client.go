package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math/rand/v2"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/handler"
)

// API paths served by the advisor
const (
	pathCalculate  = "/api/v1/calculate"
	pathRoadmap    = "/api/v1/roadmap"
	pathUnlockPath = "/api/v1/classes/unlock-path"
	pathHealth     = "/healthz"
)

// Retry defaults
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultTimeout    = 10 * time.Second
)

// APIError is a non-2xx answer from the advisor API
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, k := range sortedKeys(e.Fields) {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("API error: %s (%s)", e.Message, strings.Join(parts, "; "))
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

// APIClient handles communication with the advisor HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
// with exponential backoff and jitter.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(rand.Int64N(100)) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = decodeAPIError(resp)
		resp.Body.Close()
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// getJSON issues the request and decodes a 200 answer into out
func (c *APIClient) getJSON(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads an ErrorResponse or ValidationErrorResponse body
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(raw) > 0 {
		var body handler.ValidationErrorResponse
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Message = body.Error
			apiErr.Fields = body.Fields
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return apiErr
}

// Calculate asks the advisor for an elevator-vote recommendation
func (c *APIClient) Calculate(ctx context.Context, input domain.CalculatorInput) (*domain.CalculationResult, error) {
	var result domain.CalculationResult
	if err := c.getJSON(ctx, http.MethodPost, pathCalculate, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RunPlan fetches the ten-run roadmap for a style
func (c *APIClient) RunPlan(ctx context.Context, style string, squad bool) (*handler.RoadmapResponse, error) {
	q := url.Values{}
	q.Set("style", style)
	q.Set("squad", strconv.FormatBool(squad))

	var out handler.RoadmapResponse
	if err := c.getJSON(ctx, http.MethodGet, pathRoadmap+"?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnlockPath fetches the suggested class unlock order
func (c *APIClient) UnlockPath(ctx context.Context, gold int, style string) (*handler.UnlockPathResponse, error) {
	q := url.Values{}
	q.Set("gold", strconv.Itoa(gold))
	q.Set("style", style)

	var out handler.UnlockPathResponse
	if err := c.getJSON(ctx, http.MethodGet, pathUnlockPath+"?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ErrAPIUnhealthy is returned by Health when the API answers but is not OK
var ErrAPIUnhealthy = errors.New("advisor API unhealthy")

// Health checks the advisor liveness endpoint without retrying
func (c *APIClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+pathHealth, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrAPIUnhealthy, resp.StatusCode)
	}
	return nil
}
