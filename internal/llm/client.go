// Package llm talks to the Groq OpenAI-compatible chat completions API.
// Every benchmark run drives one of four hosted models through the same
// sampling settings, so the request body is fixed apart from the model id
// and its reasoning_effort.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client generates one completion from a system+user message pair.
type Client interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Sampling settings sent with every request.
const (
	requestTemperature = 1
	requestTopP        = 1
	requestMaxTokens   = 8192
)

// backoffUnit scales the exponential retry delay. Tests swap it out.
var backoffUnit = time.Second

// GroqClient implements Client against the Groq API.
type GroqClient struct {
	apiKey      string
	baseURL     string
	model       Model
	httpClient  *http.Client
	logger      *zap.Logger
	mu          sync.Mutex
	lastRequest time.Time
}

// DefaultGroqConfig returns sensible defaults for a model choice.
func DefaultGroqConfig(apiKey string, model Model) GroqConfig {
	return GroqConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   model,
		Timeout: 5 * time.Minute,
	}
}

// NewGroqClient creates a Groq client with default configuration.
func NewGroqClient(apiKey string, model Model, logger *zap.Logger) *GroqClient {
	return NewGroqClientWithConfig(DefaultGroqConfig(apiKey, model), logger)
}

// NewGroqClientWithConfig creates a Groq client with custom config.
func NewGroqClientWithConfig(config GroqConfig, logger *zap.Logger) *GroqClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroqClient{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// CompleteWithSystem sends a system+user message pair and returns the
// completion text.
func (c *GroqClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// Auto-apply timeout if context has no deadline
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	c.logger.Debug("sending completion request",
		zap.String("model", c.model.ID()),
		zap.Int("system_len", len(systemPrompt)),
		zap.Int("user_len", len(userPrompt)))

	if c.apiKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	// Rate limiting
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if elapsed < 100*time.Millisecond {
		time.Sleep(100*time.Millisecond - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()

	reqBody := GroqRequest{
		Model: c.model.ID(),
		Messages: []GroqMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:         requestTemperature,
		MaxCompletionTokens: requestMaxTokens,
		TopP:                requestTopP,
		ReasoningEffort:     c.model.ReasoningEffort(),
		Stream:              false,
		ResponseFormat:      &GroqResponseFormat{Type: "json_object"},
	}

	// Retry loop for rate limits
	maxRetries := 3
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			time.Sleep(time.Duration(1<<uint(i-1)) * backoffUnit)
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		// Read fully and close before any retry so the connection can be
		// reused instead of holding bodies open across attempts.
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			c.logger.Warn("rate limited, backing off", zap.Int("attempt", i+1))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
		}

		var groqResp GroqResponse
		if err := json.Unmarshal(body, &groqResp); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}

		if groqResp.Error != nil {
			return "", fmt.Errorf("API error: %s", groqResp.Error.Message)
		}

		if len(groqResp.Choices) == 0 {
			return "", fmt.Errorf("no completion returned")
		}

		response := strings.TrimSpace(groqResp.Choices[0].Message.Content)
		c.logger.Debug("completion returned",
			zap.Duration("elapsed", time.Since(startTime)),
			zap.Int("response_len", len(response)),
			zap.Int("completion_tokens", groqResp.Usage.CompletionTokens))
		return response, nil
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}
