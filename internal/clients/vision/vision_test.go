package vision_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/habitproof/internal/clients/vision"
	"github.com/stretchr/testify/assert"
)

func chatServer(t *testing.T, status int, content string, apiError string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test_key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		assert.NoError(t, sonic.ConfigDefault.Unmarshal(body, &req))
		assert.NotEmpty(t, req["model"])

		w.WriteHeader(status)
		resp := map[string]any{}
		if apiError != "" {
			resp["error"] = map[string]any{"message": apiError}
		} else {
			resp["choices"] = []map[string]any{
				{"message": map[string]any{"content": content}},
			}
		}
		out, _ := sonic.ConfigDefault.Marshal(resp)
		w.Write(out)
	}))
}

func newClient(serverURL string) *vision.Client {
	return vision.New(vision.Config{BaseURL: serverURL, APIKey: "test_key"})
}

func TestJudge(t *testing.T) {
	ctx := context.Background()
	prompt := "Does this image show someone reading?"

	t.Run("positive verdict", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, "YES\nAn open book is clearly visible.", "")
		defer server.Close()
		verdict, err := newClient(server.URL).Judge(ctx, "https://cdn.example.com/a.jpg", prompt)
		assert.NoError(t, err)
		assert.True(t, verdict.Pass)
		assert.Equal(t, "An open book is clearly visible.", verdict.Explanation)
	})

	t.Run("negative verdict", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, "NO\nThe image shows a television.", "")
		defer server.Close()
		verdict, err := newClient(server.URL).Judge(ctx, "https://cdn.example.com/a.jpg", prompt)
		assert.NoError(t, err)
		assert.False(t, verdict.Pass)
		assert.Equal(t, "The image shows a television.", verdict.Explanation)
	})

	t.Run("verdict without explanation", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, "YES", "")
		defer server.Close()
		verdict, err := newClient(server.URL).Judge(ctx, "https://cdn.example.com/a.jpg", prompt)
		assert.NoError(t, err)
		assert.True(t, verdict.Pass)
		assert.Equal(t, "No explanation provided.", verdict.Explanation)
	})

	t.Run("API error payload", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, "", "model overloaded")
		defer server.Close()
		_, err := newClient(server.URL).Judge(ctx, "https://cdn.example.com/a.jpg", prompt)
		assert.ErrorContains(t, err, "model overloaded")
	})

	t.Run("non-200 without choices", func(t *testing.T) {
		server := chatServer(t, http.StatusServiceUnavailable, "", "")
		defer server.Close()
		_, err := newClient(server.URL).Judge(ctx, "https://cdn.example.com/a.jpg", prompt)
		assert.Error(t, err)
	})
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	suggestionJSON := `{
		"verificationType": "photo",
		"verificationPrompt": "Does this image show a running cold shower?",
		"reasoning": "Photo proof is straightforward.",
		"alternatives": [{"type": "manual", "description": "Confirm manually"}]
	}`

	t.Run("plain JSON", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, suggestionJSON, "")
		defer server.Close()
		suggestion, err := newClient(server.URL).Suggest(ctx, "Cold Shower", "Take a cold shower")
		assert.NoError(t, err)
		assert.Equal(t, "photo", suggestion.VerificationType)
		assert.Len(t, suggestion.Alternatives, 1)
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, "```json\n"+suggestionJSON+"\n```", "")
		defer server.Close()
		suggestion, err := newClient(server.URL).Suggest(ctx, "Cold Shower", "Take a cold shower")
		assert.NoError(t, err)
		assert.Equal(t, "Does this image show a running cold shower?", suggestion.VerificationPrompt)
	})

	t.Run("missing required fields", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, `{"reasoning": "because"}`, "")
		defer server.Close()
		_, err := newClient(server.URL).Suggest(ctx, "Cold Shower", "Take a cold shower")
		assert.ErrorContains(t, err, "missing required fields")
	})

	t.Run("non-JSON response", func(t *testing.T) {
		server := chatServer(t, http.StatusOK, "I think a photo would be best.", "")
		defer server.Close()
		_, err := newClient(server.URL).Suggest(ctx, "Cold Shower", "Take a cold shower")
		assert.ErrorContains(t, err, "parsing suggestion response")
	})
}
