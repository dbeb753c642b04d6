package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greanium/internal/config"
)

func TestHTTPChatClient_Ask(t *testing.T) {
	var received chatRequest
	server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"/ai": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			respond(http.StatusOK, `{"reply":"Line one\nLine two"}`)(w, r)
		},
	})

	client := NewHTTPChatClient(server.URL+"/", server.Client())
	reply, err := client.Ask(context.Background(), "what do you build?")
	require.NoError(t, err)
	assert.Equal(t, "Line one\nLine two", reply)
	assert.Equal(t, "what do you build?", received.Prompt)
	assert.Equal(t, config.ProviderHTTP, client.Provider())
}

func TestHTTPChatClient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantRemote string
		wantStatus int
	}{
		{name: "error payload", status: http.StatusInternalServerError, body: `{"error":"API key not configured"}`, wantRemote: "API key not configured"},
		{name: "error payload with 200", status: http.StatusOK, body: `{"error":"rate limited"}`, wantRemote: "rate limited"},
		{name: "neither field", status: http.StatusOK, body: `{}`, wantRemote: "Unknown error"},
		{name: "empty reply", status: http.StatusOK, body: `{"reply":""}`, wantRemote: "Unknown error"},
		{name: "non-json failure", status: http.StatusBadGateway, body: `bad gateway`, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
				"/ai": respond(tt.status, tt.body),
			})

			_, err := NewHTTPChatClient(server.URL, server.Client()).Ask(context.Background(), "hi")
			require.Error(t, err)

			if tt.wantRemote != "" {
				var remote *RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, tt.wantRemote, remote.Detail)
				return
			}
			var status *StatusError
			require.True(t, errors.As(err, &status))
			assert.Equal(t, tt.wantStatus, status.StatusCode)
		})
	}
}

func TestHTTPChatClient_InvalidJSONWithOK(t *testing.T) {
	server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"/ai": respond(http.StatusOK, `<html>`),
	})

	_, err := NewHTTPChatClient(server.URL, server.Client()).Ask(context.Background(), "hi")
	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Contains(t, err.Error(), "invalid response")
}

func TestHTTPChatClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPChatClient(url, nil).Ask(context.Background(), "hi")
	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	var remote *RemoteError
	assert.False(t, errors.As(err, &remote))
}

func TestOpenAIChatClient_Ask(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"I build terminals."}}]
		}`))
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIChatClient("sk-test", "gpt-4o-mini", server.Client()).WithBaseURL(server.URL + "/v1/")
	reply, err := client.Ask(context.Background(), "what do you build?")
	require.NoError(t, err)
	assert.Equal(t, "I build terminals.", reply)

	assert.Equal(t, "gpt-4o-mini", body["model"])
	messages, ok := body["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
}

func TestChatClients_MissingAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		client ChatClient
		want   string
	}{
		{name: "openai", client: NewOpenAIChatClient("", "gpt-4o-mini", nil), want: "openai API key not configured"},
		{name: "anthropic", client: NewAnthropicChatClient("", "claude-3-5-haiku-latest", 1024, nil), want: "anthropic API key not configured"},
		{name: "gemini", client: NewGeminiChatClient("", "gemini-2.0-flash", nil), want: "google API key not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.client.Ask(context.Background(), "hi")
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, tt.name, tt.client.Provider())
		})
	}
}

func TestNewChatClient(t *testing.T) {
	tests := []struct {
		provider string
		want     interface{}
	}{
		{provider: config.ProviderHTTP, want: &HTTPChatClient{}},
		{provider: "", want: &HTTPChatClient{}},
		{provider: config.ProviderOpenAI, want: &OpenAIChatClient{}},
		{provider: config.ProviderAnthropic, want: &AnthropicChatClient{}},
		{provider: config.ProviderGemini, want: &GeminiChatClient{}},
	}

	for _, tt := range tests {
		t.Run("provider "+tt.provider, func(t *testing.T) {
			cfg := &config.Config{BaseURL: "http://localhost:5000", Chat: config.Chat{Provider: tt.provider, MaxTokens: 256}}
			client, err := NewChatClient(cfg, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, client)
		})
	}

	_, err := NewChatClient(&config.Config{Chat: config.Chat{Provider: "llama"}}, nil)
	assert.ErrorContains(t, err, "unsupported chat provider")
}

func TestSystemPrompt(t *testing.T) {
	prompt := systemPrompt()
	assert.NotEmpty(t, prompt)
	assert.Equal(t, strings.TrimSpace(prompt), prompt)
}
