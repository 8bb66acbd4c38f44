// Package api is the HTTP client for the remote execution and assistant service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/zhubert/codepad/internal/errors"
	"github.com/zhubert/codepad/internal/logger"
)

const (
	runPath  = "/run"
	chatPath = "/ai-chat"
)

// RunRequest is the body of POST /run.
type RunRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Input    string `json:"input"`
}

// RunResponse is the body returned by POST /run. A non-empty Error means the
// program failed to compile or run; Output is then ignored.
type RunResponse struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ChatRequest is the body of POST /ai-chat.
type ChatRequest struct {
	Message  string `json:"message"`
	Code     string `json:"code"`
	Language string `json:"language"`
}

// ChatResponse is the body returned by POST /ai-chat.
type ChatResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Client talks to the codepad service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for baseURL. A zero timeout leaves the
// transport's own limits in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, baseURL)
}

// NewClientWithHTTP creates a client with a custom HTTP client (for testing).
func NewClientWithHTTP(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Run submits a program. The returned error is always KindTransport; a
// failure reported by the service comes back in RunResponse.Error.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunResponse, error) {
	var resp RunResponse
	err := c.post(ctx, "api.Run", runPath, req, &resp)
	return resp, err
}

// Chat sends one assistant message together with the editor contents.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var resp ChatResponse
	err := c.post(ctx, "api.Chat", chatPath, req, &resp)
	return resp, err
}

func (c *Client) post(ctx context.Context, op pkgerrors.Op, path string, body, out any) error {
	log := logger.WithComponent("api")
	endpoint := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.TransportFailed(op, path, fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.TransportFailed(op, path, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "endpoint", endpoint, "error", err)
		return pkgerrors.TransportFailed(op, path, err)
	}
	defer resp.Body.Close()

	log.Debug("response received", "endpoint", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pkgerrors.ServerStatus(op, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn("undecodable response", "endpoint", endpoint, "error", err)
		return pkgerrors.MalformedResponse(op, path, err)
	}
	return nil
}
