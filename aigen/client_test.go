package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/designkit/layout"
)

var (
	testIntent = layout.Intent{Type: layout.Dashboard, Style: layout.StyleModern, ColorScheme: layout.SchemeDark, Description: "sales overview"}
	testFrame  = layout.Frame{ID: "f", Width: 1440, Height: 900}
)

const designReply = "Here is your design:\n```json\n" + `{
  "design": {
    "layout": "sidebar with <b>grid</b>",
    "elements": [
      {"type": "container", "properties": {"height": "120", "fill": "#111827"}},
      {"type": "button", "properties": {"label": "Tom & Jerry <script>x</script>", "x": 40}}
    ],
    "style": {
      "colors": ["#111827", "#3b82f6", "#60a5fa", "#f3f4f6"],
      "typography": {"headings": "Inter", "body": "Inter"},
      "spacing": {"padding": "32", "gap": 24}
    }
  }
}` + "\n```\nEnjoy {not json}"

func chatBody(content string) []byte {
	data, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
	})
	return data
}

func TestGenerateWithoutKeyMakesNoRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, srv.Client(), nil)
	_, err := c.Generate(context.Background(), "  ", testIntent, testFrame)
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestGenerateSendsRequestAndDecodes(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "https://designkit.local", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "designkit", r.Header.Get("X-Title"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write(chatBody(designReply))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, Referer: "https://designkit.local", Title: "designkit"}, srv.Client(), nil)
	resp, err := c.Generate(context.Background(), "sk-test", testIntent, testFrame)
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, DefaultTemperature, got.Temperature)
	assert.Equal(t, DefaultMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "dashboard with a modern style and dark color scheme")
	assert.Contains(t, got.Messages[0].Content, "Additional requirements: sales overview")

	assert.Equal(t, "sidebar with grid", resp.Design.Layout)
	require.Len(t, resp.Design.Elements, 2)
	assert.Equal(t, "container", resp.Design.Elements[0].Type)
	assert.Equal(t, "120", resp.Design.Elements[0].Properties["height"])
	assert.Equal(t, "Tom & Jerry ", resp.Design.Elements[1].Properties["label"])
	assert.Equal(t, 32.0, resp.Design.Style.Spacing.Padding)
	assert.Len(t, resp.Design.Style.Colors, 4)
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, srv.Client(), nil)
	_, err := c.Generate(context.Background(), "sk-test", testIntent, testFrame)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "rate limited")
}

func TestGenerateInvalidFormat(t *testing.T) {
	replies := [][]byte{
		chatBody("I cannot help with that."),
		chatBody(`{"layout": "missing design wrapper"}`),
		[]byte(`{"choices": []}`),
		[]byte(`not json at all`),
	}
	for _, reply := range replies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(reply)
		}))
		c := NewClient(Config{Endpoint: srv.URL}, srv.Client(), nil)
		_, err := c.Generate(context.Background(), "sk-test", testIntent, testFrame)
		srv.Close()
		require.ErrorIs(t, err, ErrInvalidFormat, "reply %s", reply)
	}
}

func TestGenerateHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatBody(designReply))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(Config{Endpoint: srv.URL}, srv.Client(), nil)
	_, err := c.Generate(ctx, "sk-test", testIntent, testFrame)
	require.ErrorIs(t, err, context.Canceled)
}
