// Package toolclient calls the tool HTTP services the way an orchestrator
// does: POST the tool arguments as JSON, treat any non-2xx status as a
// failure carrying the response body.
package toolclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/logger"
)

const (
	hanoiPath       = "/tool/hanoi"
	matrixPath      = "/tool/matrix"
	requestIDHeader = "X-Request-ID"

	// maxResponseBytes caps how much of a response is read.
	maxResponseBytes = 64 << 20

	defaultTimeout = 30 * time.Second
)

// Error is a non-2xx response from a tool service.
type Error struct {
	// Status is the HTTP status code.
	Status int

	// Detail is the "detail" field of the error body, or the raw body
	// when it is not the usual error shape.
	Detail string

	// RequestID is the correlation ID sent with the request.
	RequestID string
}

// Error formats the failure like the orchestrator reports it.
func (e *Error) Error() string {
	return fmt.Sprintf("tool returned %d: %s", e.Status, e.Detail)
}

// IsClientError reports a 4xx status.
func (e *Error) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// Client talks to one tool service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the service at baseURL, e.g. http://localhost:6102.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HanoiResult is the Hanoi service response.
type HanoiResult struct {
	Moves []string `json:"moves"`
	Count int      `json:"count"`
}

// SolveHanoi calls POST /tool/hanoi.
func (c *Client) SolveHanoi(ctx context.Context, n int) (*HanoiResult, error) {
	var out HanoiResult
	if err := c.post(ctx, hanoiPath, map[string]int{"n": n}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvertMatrix calls POST /tool/matrix.
func (c *Client) InvertMatrix(ctx context.Context, m domain.Matrix) (domain.Matrix, error) {
	return c.InvertMatrixJSON(ctx, encodeMatrix(m))
}

// InvertMatrixJSON calls POST /tool/matrix with a matrix that is already
// JSON, so malformed input reaches the service unchanged.
func (c *Client) InvertMatrixJSON(ctx context.Context, raw json.RawMessage) (domain.Matrix, error) {
	var out domain.Matrix
	body := struct {
		Matrix json.RawMessage `json:"matrix"`
	}{Matrix: raw}
	if err := c.post(ctx, matrixPath, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	logger.Debug("%s POST %s -> %d in %s", requestID, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Status:    resp.StatusCode,
			Detail:    detailFrom(data),
			RequestID: requestID,
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// detailFrom extracts {"detail": "..."} or falls back to the raw body.
func detailFrom(body []byte) string {
	var e struct {
		Detail *string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != nil {
		return *e.Detail
	}
	return strings.TrimSpace(string(body))
}

// AsError returns the *Error inside err, if any.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func encodeMatrix(m domain.Matrix) json.RawMessage {
	data, err := json.Marshal(m)
	if err != nil {
		// [][]float64 only fails on NaN or Inf; send null and let the service reject it.
		return json.RawMessage("null")
	}
	return data
}
