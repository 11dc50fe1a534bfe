package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

type metricsRecorder interface {
	ObserveUpstreamRequest(resource string, status int, duration time.Duration)
}

// Client consumes the external school REST backend. All endpoints are GET
// and return the common envelope, so the client only knows how to fetch and
// decode; resource methods live in the sibling files.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics metricsRecorder
}

// Config tunes the upstream client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New constructs an upstream client.
func New(cfg Config, logger *zap.Logger, metrics metricsRecorder) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: metrics,
	}
}

// envelope is the backend's common response contract. The subject endpoint
// deviates and puts its list under "subjects".
type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Subjects json.RawMessage `json:"subjects"`
	Count    int             `json:"count"`
	Error    string          `json:"error"`
}

// get fetches a path and returns the decoded envelope. Failures come back
// as a normalized *appErrors.Error carrying the backend's message, status
// and raw body, with status defaulting to 500 per the consumer contract.
func (c *Client) get(ctx context.Context, resource, path string) (*envelope, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, appErrors.Upstream(err, 0, "", nil)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveUpstreamRequest(resource, 0, duration)
		}
		c.logger.Warn("upstream request failed", zap.String("url", url), zap.Error(err))
		return nil, appErrors.Upstream(err, 0, "", nil)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(resource, resp.StatusCode, duration)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Upstream(err, 0, "", nil)
	}

	var env envelope
	if len(body) > 0 {
		// Some endpoints return a bare array instead of the envelope.
		if body[0] == '[' {
			env.Success = true
			env.Data = json.RawMessage(body)
		} else if err := json.Unmarshal(body, &env); err != nil {
			return nil, appErrors.Upstream(err, resp.StatusCode, "invalid upstream response", string(body))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Error
		if message == "" {
			message = fmt.Sprintf("upstream returned status %d", resp.StatusCode)
		}
		c.logger.Warn("upstream returned error",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return nil, appErrors.Upstream(nil, resp.StatusCode, message, json.RawMessage(body))
	}

	return &env, nil
}

// IsNoRecords reports whether the error is the backend's "no records found"
// detail-view response, which call sites treat as a valid empty collection.
func IsNoRecords(err error) bool {
	appErr := appErrors.FromError(err)
	if appErr == nil {
		return false
	}
	return strings.Contains(strings.ToLower(appErr.Message), "no records found")
}

func decodeList(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return appErrors.Upstream(err, 0, "invalid upstream payload", nil)
	}
	return nil
}
