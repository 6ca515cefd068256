package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/projects-hub/server/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key is set. No request is made.
var ErrNotConfigured = errors.New("AI API key not configured")

// UpstreamError carries a non-success status and the verbatim response body
// from the completion service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI error: %d - %s", e.Status, e.Body)
}

// TransportError wraps a failed HTTP exchange: dial, DNS, TLS or timeout
// failures where no response arrived. The underlying message is surfaced to
// the user as-is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "AI request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client is a single-turn chat-completions client. One request, one
// response; no retries, no streaming.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxTokens  int
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	return &Client{
		BaseURL:   cfg.AI.BaseURL,
		APIKey:    cfg.AI.APIKey,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
		HTTPClient: &http.Client{
			Timeout:   2 * time.Minute,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger: log,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and returns the trimmed
// text of the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNotConfigured
	}

	body, err := sonic.Marshal(completionRequest{
		Model:     c.Model,
		Messages:  []message{{Role: "user", Content: prompt}},
		MaxTokens: c.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("X-Title", "Projects Hub")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Logger.Error("completion request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result completionResponse
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
