package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient implements Client over an OpenAI-compatible chat completions
// endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Ensure OpenAIClient implements Client
var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a generation client for the given endpoint and
// model. An empty baseURL targets the OpenAI API; any OpenAI-compatible
// server works via a custom baseURL.
func NewOpenAIClient(apiKey string, baseURL string, model string, logger *zap.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrAuth)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends a single-turn chat completion request and returns the
// generated text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrInvalidRequest)
	}

	response, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		c.logger.Warn("generation request failed", zap.Error(err))
		return "", classifyError(err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", ErrUnavailable)
	}

	c.logger.Debug(
		"generation request completed",
		zap.String("model", c.model),
		zap.Int("promptTokens", response.Usage.PromptTokens),
		zap.Int("completionTokens", response.Usage.CompletionTokens),
	)

	return response.Choices[0].Message.Content, nil
}

// classifyError maps vendor errors onto the package taxonomy so callers
// never need to import the vendor SDK.
func classifyError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatusCode
	} else if errors.As(err, &reqErr) {
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case status >= http.StatusBadRequest:
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return fmt.Errorf("generation request failed: %w", err)
}
