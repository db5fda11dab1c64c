package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"result": map[string]any{"message_id": 42},
		})
	}))
	defer srv.Close()

	c := NewClient("bot-token", "chat-123", srv.URL)
	msgID, err := c.SendMessage(context.Background(), "<b>hello</b>")

	require.NoError(t, err)
	require.Equal(t, int64(42), msgID)
	require.Equal(t, "/botbot-token/sendMessage", gotPath)
	require.Equal(t, "chat-123", gotBody.ChatID)
	require.Equal(t, "<b>hello</b>", gotBody.Text)
	require.Equal(t, "HTML", gotBody.ParseMode)
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer srv.Close()

	c := NewClient("bot-token", "chat-123", srv.URL)
	_, err := c.SendMessage(context.Background(), "hello")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Contains(t, apiErr.Description, "chat not found")
}

func TestConfigured(t *testing.T) {
	require.True(t, NewClient("t", "c", "").Configured())
	require.False(t, NewClient("", "c", "").Configured())
	require.False(t, NewClient("t", "", "").Configured())
}

func TestGetMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bott/getMe", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	c := NewClient("t", "c", srv.URL)
	require.NoError(t, c.GetMe(context.Background()))
}
