package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Telegram Bot API. The bot token and chat id stay inside
// this process; browser clients only ever see the relay endpoints.
type Client struct {
	BaseURL    string
	Token      string
	ChatID     string
	HTTPClient *http.Client
}

const defaultBaseURL = "https://api.telegram.org"

// APIError carries the Bot API failure description for logging.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error (%d): %s", e.StatusCode, e.Description)
}

// NewClient builds a client for the given bot token and fixed recipient chat.
// If baseURL is empty the public Bot API endpoint is used.
func NewClient(token, chatID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		ChatID:     chatID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether both credential parts are present.
func (c *Client) Configured() bool {
	return c.Token != "" && c.ChatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// SendMessage posts HTML-formatted text to the fixed chat and returns the
// Telegram message id.
func (c *Client) SendMessage(ctx context.Context, text string) (int64, error) {
	payload := sendMessageRequest{
		ChatID:    c.ChatID,
		Text:      text,
		ParseMode: "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.BaseURL, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var parsed apiResponse
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("decode telegram response: %w", err)
	}
	if !parsed.OK {
		return 0, &APIError{StatusCode: resp.StatusCode, Description: parsed.Description}
	}
	return parsed.Result.MessageID, nil
}

// GetMe verifies the bot token is valid.
func (c *Client) GetMe(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/bot%s/getMe", c.BaseURL, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !parsed.OK {
		return &APIError{StatusCode: resp.StatusCode, Description: parsed.Description}
	}
	return nil
}
