// Package api is the HTTP gateway to the TutorFind backend. Every backend
// capability is one named method on Client; all of them funnel through a
// single transport that normalizes failures into *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/team13/tutorfind-cli/internal/config"
	"github.com/team13/tutorfind-cli/internal/logging"
)

// HTTPClient interface for HTTP requests (enables testing)
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Verify http.Client implements HTTPClient
var _ HTTPClient = (*http.Client)(nil)

// Client issues requests against one backend origin. It holds no session
// state; callers pass a bearer token per operation.
type Client struct {
	baseURL string
	http    HTTPClient
	log     *logging.Logger
}

// New creates a client for the configured backend origin.
func New() *Client {
	return NewWithClient(config.Env().APIURL, &http.Client{})
}

// NewWithClient creates a client with an explicit origin and HTTP client.
func NewWithClient(baseURL string, hc HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     logging.New("api"),
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// request describes one backend call. Built per call, never retained.
type request struct {
	method string
	path   string
	token  string
	body   any
}

// do performs the request and decodes a JSON payload into out (when out is
// non-nil and the response declares JSON). One resolution per call: no
// retries, no timeout beyond what the context carries.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if req.method == "" {
		req.method = http.MethodGet
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.New().String()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	log := c.log.WithRequestID(requestID)
	log.Debug("request", map[string]any{"method": req.method, "path": req.path})
	start := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Error("request_failed", map[string]any{"path": req.path}, err)
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: failureMessage(payload, isJSON)}
		log.Error("request_error", map[string]any{"path": req.path, "status": resp.StatusCode}, apiErr)
		return apiErr
	}

	log.TimedEvent("request_done", start, map[string]any{"path": req.path, "status": resp.StatusCode})

	if out == nil || len(payload) == 0 {
		return nil
	}
	if !isJSON {
		// Plain-text success payload; only string targets can hold it.
		if s, ok := out.(*string); ok {
			*s = string(payload)
		}
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// failureMessage extracts the error text per the backend contract: the JSON
// payload's "message" field if present, else the raw text, else a fixed
// fallback.
func failureMessage(payload []byte, isJSON bool) string {
	if isJSON {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
			return body.Message
		}
		return "Request failed"
	}
	if text := strings.TrimSpace(string(payload)); text != "" {
		return text
	}
	return "Request failed"
}
