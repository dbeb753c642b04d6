package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"greanium/internal/config"
	"greanium/internal/logger"
)

// GeminiChatClient asks Google Gemini directly with the Greanium system
// prompt. The SDK client is created on first use.
type GeminiChatClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	once   sync.Once
	client *genai.Client
	err    error
}

// NewGeminiChatClient creates a Gemini chat client.
func NewGeminiChatClient(apiKey, model string, httpClient *http.Client) *GeminiChatClient {
	return &GeminiChatClient{apiKey: apiKey, model: model, httpClient: httpClient}
}

// WithBaseURL overrides the API endpoint.
func (c *GeminiChatClient) WithBaseURL(baseURL string) *GeminiChatClient {
	c.baseURL = baseURL
	return c
}

// Provider returns "gemini".
func (c *GeminiChatClient) Provider() string {
	return config.ProviderGemini
}

func (c *GeminiChatClient) init(ctx context.Context) error {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.err = fmt.Errorf("google API key not configured")
			return
		}
		clientConfig := &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if c.httpClient != nil {
			clientConfig.HTTPClient = c.httpClient
		}
		if c.baseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
		}
		client, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			c.err = fmt.Errorf("failed to create Gemini client: %w", err)
			return
		}
		c.client = client
		logger.Debug("Gemini client initialized", "model", c.model)
	})
	return c.err
}

// Ask sends one user turn and joins the text parts of the first candidate,
// skipping thought parts.
func (c *GeminiChatClient) Ask(ctx context.Context, prompt string) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", err
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(), genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &RemoteError{Endpoint: "gemini", Detail: "no candidates returned"}
	}

	var content strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		content.WriteString(part.Text)
	}
	if content.Len() == 0 {
		return "", &RemoteError{Endpoint: "gemini", Detail: "empty response content"}
	}
	return content.String(), nil
}
