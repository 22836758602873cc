package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gracemobile/backend/internal/classify"
	"github.com/gracemobile/backend/internal/model/chat"
)

// ExchangeResult mirrors the wire envelope of one submitted exchange.
type ExchangeResult struct {
	SessionID   string            `json:"sessionId"`
	UserMessage chat.Message      `json:"userMessage"`
	BotMessage  chat.Message      `json:"botMessage"`
	Response    classify.Response `json:"response"`
}

// SessionDetail is a session together with its full ordered transcript.
type SessionDetail struct {
	chat.Session
	Messages []chat.Message `json:"messages"`
}

// API is the transport surface the conversation state consumes.
type API interface {
	SubmitExchange(ctx context.Context, sessionID, content string) (*ExchangeResult, error)
	ListSessions(ctx context.Context) ([]chat.Summary, error)
	GetSession(ctx context.Context, sessionID string) (*SessionDetail, error)
}

// HTTPClient talks to the GraceMobile API over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient targets a server base URL such as "http://localhost:4000".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SubmitExchange posts one input and returns the persisted pair.
func (c *HTTPClient) SubmitExchange(ctx context.Context, sessionID, content string) (*ExchangeResult, error) {
	payload := map[string]string{"content": content}
	if sessionID != "" {
		payload["sessionId"] = sessionID
	}

	var result ExchangeResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat/message", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSessions fetches all sessions, newest first.
func (c *HTTPClient) ListSessions(ctx context.Context) ([]chat.Summary, error) {
	var summaries []chat.Summary
	if err := c.doJSON(ctx, http.MethodGet, "/api/chat/sessions", nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetSession fetches one session with its transcript.
func (c *HTTPClient) GetSession(ctx context.Context, sessionID string) (*SessionDetail, error) {
	var detail SessionDetail
	if err := c.doJSON(ctx, http.MethodGet, "/api/chat/sessions/"+sessionID, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return fmt.Errorf("client: %s %s: %s", method, path, failure.Error)
		}
		return fmt.Errorf("client: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

var _ API = (*HTTPClient)(nil)
