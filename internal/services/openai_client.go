package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"greanium/internal/config"
	"greanium/internal/logger"
)

// OpenAIChatClient asks OpenAI directly with the Greanium system prompt.
// The SDK client is created on first use.
type OpenAIChatClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	once   sync.Once
	client *openai.Client
	err    error
}

// NewOpenAIChatClient creates an OpenAI chat client.
func NewOpenAIChatClient(apiKey, model string, httpClient *http.Client) *OpenAIChatClient {
	return &OpenAIChatClient{apiKey: apiKey, model: model, httpClient: httpClient}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func (c *OpenAIChatClient) WithBaseURL(baseURL string) *OpenAIChatClient {
	c.baseURL = baseURL
	return c
}

// Provider returns "openai".
func (c *OpenAIChatClient) Provider() string {
	return config.ProviderOpenAI
}

func (c *OpenAIChatClient) init() error {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.err = fmt.Errorf("openai API key not configured")
			return
		}
		options := []option.RequestOption{option.WithAPIKey(c.apiKey)}
		if c.httpClient != nil {
			options = append(options, option.WithHTTPClient(c.httpClient))
		}
		if c.baseURL != "" {
			options = append(options, option.WithBaseURL(c.baseURL))
		}
		client := openai.NewClient(options...)
		c.client = &client
		logger.Debug("OpenAI client initialized", "model", c.model)
	})
	return c.err
}

// Ask sends one user message and returns the first choice.
func (c *OpenAIChatClient) Ask(ctx context.Context, prompt string) (string, error) {
	if err := c.init(); err != nil {
		return "", err
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt()),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", &RemoteError{Endpoint: "openai", Detail: "no choices returned"}
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", &RemoteError{Endpoint: "openai", Detail: "empty response content"}
	}
	return content, nil
}
