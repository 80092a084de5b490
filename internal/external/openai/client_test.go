package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"returnhub/internal/domain/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatReq
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "gpt-4o-mini", req.Model)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			require.NotNil(t, req.ResponseFormat)
			assert.Equal(t, "json_object", req.ResponseFormat.Type)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": `{"summary":"ok"}`}},
				},
			})
		}))
		defer server.Close()

		client := New(server.URL, "test-key", "", nil)

		out, err := client.Complete(context.Background(), analysis.Prompt{
			System: "answer with JSON",
			User:   "analyze this",
		})

		require.NoError(t, err)
		assert.Equal(t, `{"summary":"ok"}`, out)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := New(server.URL, "test-key", "", nil)

		_, err := client.Complete(context.Background(), analysis.Prompt{})

		assert.Error(t, err)
	})

	t.Run("provider error payload is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"message": "model overloaded", "type": "server_error"},
			})
		}))
		defer server.Close()

		client := New(server.URL, "test-key", "", nil)

		_, err := client.Complete(context.Background(), analysis.Prompt{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client := New(server.URL, "test-key", "", nil)

		_, err := client.Complete(context.Background(), analysis.Prompt{})

		assert.Error(t, err)
	})
}

func TestClient_Model(t *testing.T) {
	assert.Equal(t, "gpt-4o-mini", New("http://x", "k", "", nil).Model())
	assert.Equal(t, "gpt-4.1", New("http://x", "k", "gpt-4.1", nil).Model())
}
