package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"greanium/internal/config"
	"greanium/internal/data/embedded"
	"greanium/internal/logger"
)

// ChatClient answers a single free-text question.
type ChatClient interface {
	// Ask sends prompt and returns the reply text. A reply that cannot be
	// produced is either a *RemoteError (the collaborator answered with an
	// error) or any other error (it could not be reached).
	Ask(ctx context.Context, prompt string) (string, error)
	// Provider names the collaborator for logs.
	Provider() string
}

// HTTPChatClient calls the backend's POST /ai endpoint.
type HTTPChatClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPChatClient creates a client for the backend at baseURL.
func NewHTTPChatClient(baseURL string, client *http.Client) *HTTPChatClient {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &HTTPChatClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/ai",
		client:   client,
	}
}

// Provider returns "http".
func (c *HTTPChatClient) Provider() string {
	return config.ProviderHTTP
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error"`
}

// Ask posts {prompt} and reads {reply} or {error}. Only the presence of
// those fields is checked; the status code matters only when neither is
// present.
func (c *HTTPChatClient) Ask(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode prompt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Endpoint: "/ai", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Endpoint: "/ai", Err: err}
	}

	var payload chatResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", &StatusError{Endpoint: "/ai", StatusCode: resp.StatusCode, Status: resp.Status}
		}
		return "", &TransportError{Endpoint: "/ai", Err: fmt.Errorf("invalid response: %w", err)}
	}

	if payload.Reply != "" {
		return payload.Reply, nil
	}
	detail := payload.Error
	if detail == "" {
		detail = "Unknown error"
	}
	return "", &RemoteError{Endpoint: "/ai", Detail: detail}
}

// Default models per provider when chat.model is not set.
var defaultModels = map[string]string{
	config.ProviderOpenAI:    "gpt-4o-mini",
	config.ProviderAnthropic: "claude-3-5-haiku-latest",
	config.ProviderGemini:    "gemini-2.0-flash",
}

// NewChatClient builds the chat collaborator selected by cfg.Chat.Provider.
func NewChatClient(cfg *config.Config, client *http.Client) (ChatClient, error) {
	model := cfg.Chat.Model
	if model == "" {
		model = defaultModels[cfg.Chat.Provider]
	}

	var chat ChatClient
	switch cfg.Chat.Provider {
	case config.ProviderHTTP, "":
		chat = NewHTTPChatClient(cfg.BaseURL, client)
	case config.ProviderOpenAI:
		chat = NewOpenAIChatClient(cfg.Chat.APIKey, model, client)
	case config.ProviderAnthropic:
		chat = NewAnthropicChatClient(cfg.Chat.APIKey, model, int64(cfg.Chat.MaxTokens), client)
	case config.ProviderGemini:
		chat = NewGeminiChatClient(cfg.Chat.APIKey, model, client)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", cfg.Chat.Provider)
	}

	logger.Debug("Chat client selected", "provider", chat.Provider(), "model", model)
	return chat, nil
}

// systemPrompt returns the embedded Greanium instruction.
func systemPrompt() string {
	return strings.TrimSpace(embedded.SystemPrompt)
}
