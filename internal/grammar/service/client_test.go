package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/posts/internal/errors"
)

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		corrector, err := NewClient("https://api.openai.com", "", "gpt-4o-mini", 0)
		assert.Nil(t, corrector)
		assert.Error(t, err)
	})

	t.Run("valid configuration", func(t *testing.T) {
		corrector, err := NewClient("https://api.openai.com/", "sk-test", "gpt-4o-mini", 10*time.Second)
		require.NoError(t, err)
		assert.NotNil(t, corrector)
	})
}

func TestClient_Correct(t *testing.T) {
	t.Run("returns trimmed correction", func(t *testing.T) {
		var gotAuth string
		var gotReq chatCompletionRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/chat/completions", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "  She does not like apples.  "}},
				},
			})
		}))
		defer server.Close()

		corrector, err := NewClient(server.URL, "sk-test", "gpt-4o-mini", 5*time.Second)
		require.NoError(t, err)

		corrected, err := corrector.Correct(context.Background(), "she dont like apples")
		require.NoError(t, err)
		assert.Equal(t, "She does not like apples.", corrected)

		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "gpt-4o-mini", gotReq.Model)
		require.Len(t, gotReq.Messages, 1)
		assert.Equal(t, "user", gotReq.Messages[0].Role)
		assert.Contains(t, gotReq.Messages[0].Content,
			"Correct the following sentence for grammar and return only the corrected sentence:")
		assert.Contains(t, gotReq.Messages[0].Content, `"she dont like apples"`)
	})

	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		corrector, err := NewClient(server.URL, "sk-test", "gpt-4o-mini", 5*time.Second)
		require.NoError(t, err)

		corrected, err := corrector.Correct(context.Background(), "hello")
		assert.Empty(t, corrected)
		assert.ErrorIs(t, err, apperrors.ErrCollaborator)
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		corrector, err := NewClient(server.URL, "sk-test", "gpt-4o-mini", 5*time.Second)
		require.NoError(t, err)

		corrected, err := corrector.Correct(context.Background(), "hello")
		assert.Empty(t, corrected)
		assert.ErrorIs(t, err, apperrors.ErrCollaborator)
	})

	t.Run("empty content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "   "}},
				},
			})
		}))
		defer server.Close()

		corrector, err := NewClient(server.URL, "sk-test", "gpt-4o-mini", 5*time.Second)
		require.NoError(t, err)

		corrected, err := corrector.Correct(context.Background(), "hello")
		assert.Empty(t, corrected)
		assert.ErrorIs(t, err, apperrors.ErrCollaborator)
	})

	t.Run("connection failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		corrector, err := NewClient(server.URL, "sk-test", "gpt-4o-mini", time.Second)
		require.NoError(t, err)

		corrected, err := corrector.Correct(context.Background(), "hello")
		assert.Empty(t, corrected)
		assert.ErrorIs(t, err, apperrors.ErrCollaborator)
	})
}
