package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"greanium/internal/config"
	"greanium/internal/logger"
)

// AnthropicChatClient asks Anthropic directly with the Greanium system
// prompt. The SDK client is created on first use.
type AnthropicChatClient struct {
	apiKey     string
	model      string
	maxTokens  int64
	baseURL    string
	httpClient *http.Client

	once   sync.Once
	client *anthropic.Client
	err    error
}

// NewAnthropicChatClient creates an Anthropic chat client.
func NewAnthropicChatClient(apiKey, model string, maxTokens int64, httpClient *http.Client) *AnthropicChatClient {
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &AnthropicChatClient{apiKey: apiKey, model: model, maxTokens: maxTokens, httpClient: httpClient}
}

// WithBaseURL overrides the API endpoint.
func (c *AnthropicChatClient) WithBaseURL(baseURL string) *AnthropicChatClient {
	c.baseURL = baseURL
	return c
}

// Provider returns "anthropic".
func (c *AnthropicChatClient) Provider() string {
	return config.ProviderAnthropic
}

func (c *AnthropicChatClient) init() error {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.err = fmt.Errorf("anthropic API key not configured")
			return
		}
		options := []option.RequestOption{option.WithAPIKey(c.apiKey)}
		if c.httpClient != nil {
			options = append(options, option.WithHTTPClient(c.httpClient))
		}
		if c.baseURL != "" {
			options = append(options, option.WithBaseURL(c.baseURL))
		}
		client := anthropic.NewClient(options...)
		c.client = &client
		logger.Debug("Anthropic client initialized", "model", c.model)
	})
	return c.err
}

// Ask sends one user message and concatenates the text blocks of the reply.
func (c *AnthropicChatClient) Ask(ctx context.Context, prompt string) (string, error) {
	if err := c.init(); err != nil {
		return "", err
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt()}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var content strings.Builder
	for _, block := range message.Content {
		content.WriteString(block.Text)
	}
	if content.Len() == 0 {
		return "", &RemoteError{Endpoint: "anthropic", Detail: "empty response content"}
	}
	return content.String(), nil
}
