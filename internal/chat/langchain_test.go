package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestToLangchainMessages(t *testing.T) {
	out := toLangchainMessages([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleAssistant, Content: "stats"},
		{Role: RoleUser, Content: "hi"},
	})
	require.Len(t, out, 3)

	assert.Equal(t, llms.ChatMessageTypeSystem, out[0].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, out[1].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, out[2].Role)
	assert.Equal(t, []llms.ContentPart{llms.TextContent{Text: "hi"}}, out[2].Parts)
}

func TestLangchainClientComplete(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse)) //nolint:errcheck
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewLangchainClient("test-key", server.URL+"/v1", Options{Temperature: DefaultTemperature})
	require.NoError(t, err)

	completion, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)

	assert.Equal(t, "반가워요! 😊", completion.Reply)
	assert.Equal(t, DefaultModel, completion.Model)
	assert.Equal(t, DefaultModel, body["model"])
}

func TestGenerationInt(t *testing.T) {
	info := map[string]any{"a": 3, "b": int64(4), "c": float64(5), "d": "6"}
	assert.Equal(t, int64(3), generationInt(info, "a"))
	assert.Equal(t, int64(4), generationInt(info, "b"))
	assert.Equal(t, int64(5), generationInt(info, "c"))
	assert.Equal(t, int64(0), generationInt(info, "d"))
	assert.Equal(t, int64(0), generationInt(info, "missing"))
}

func TestLangchainClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   ErrorKind
	}{
		{name: "RateLimited", status: http.StatusTooManyRequests, body: `{"error":{"message":"slow down","type":"rate_limit_exceeded"}}`, kind: Transient},
		{name: "ServerError", status: http.StatusInternalServerError, body: `{"error":{"message":"oops","type":"server_error"}}`, kind: Transient},
		{name: "BadGateway", status: http.StatusBadGateway, body: `{"error":{"message":"upstream","type":"server_error"}}`, kind: Transient},
		{name: "BadRequest", status: http.StatusBadRequest, body: `{"error":{"message":"bad","type":"invalid_request_error"}}`, kind: Permanent},
		{name: "Unauthorized", status: http.StatusUnauthorized, body: `{"error":{"message":"no key","type":"invalid_request_error"}}`, kind: Permanent},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			baseURL := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(test.status)
				w.Write([]byte(test.body)) //nolint:errcheck
			})

			client, err := NewLangchainClient("test-key", strings.TrimSuffix(baseURL, "/"), Options{})
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
			require.Error(t, err)

			var cerr *CompletionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, test.kind, cerr.Kind)
		})
	}
}

func TestClassifyLangchainError(t *testing.T) {
	status := func(code int) error {
		return fmt.Errorf("API returned unexpected status code: %d: details", code)
	}

	assert.Equal(t, Transient, classifyLangchainError(status(429)))
	assert.Equal(t, Transient, classifyLangchainError(status(503)))
	assert.Equal(t, Transient, classifyLangchainError(status(408)))
	assert.Equal(t, Permanent, classifyLangchainError(status(400)))
	assert.Equal(t, Permanent, classifyLangchainError(status(404)))
	assert.Equal(t, Transient, classifyLangchainError(fmt.Errorf("call: %w", context.DeadlineExceeded)))
	assert.Equal(t, Permanent, classifyLangchainError(errors.New("invalid response")))
}

func TestGenerationString(t *testing.T) {
	info := map[string]any{"Model": "gpt-4o", "Other": 3}
	assert.Equal(t, "gpt-4o", generationString(info, "Model"))
	assert.Equal(t, "", generationString(info, "Other"))
	assert.Equal(t, "", generationString(nil, "Model"))
}
