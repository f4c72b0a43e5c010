// Package notifier delivers the analysis digest over the Telegram Bot
// API and serves bot commands via long polling. Raw net/http, no bot
// framework.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// TelegramNotifier sends HTML-formatted messages to one chat. BaseURL
// is overridable for tests; empty means the public API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Client   *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		Client:   newHTTPClient(proxyURL, 30*time.Second),
	}
}

// newHTTPClient is the shared client shape for the bot API endpoints.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// api builds the bot method URL.
func (t *TelegramNotifier) api(method string) string {
	base := t.BaseURL
	if base == "" {
		base = telegramAPI
	}
	return fmt.Sprintf("%s/bot%s/%s", base, t.BotToken, method)
}

// sendMessage is the wire payload. The digest relies on HTML markup and
// carries raw vendor URLs, so link previews stay off.
type sendMessage struct {
	ChatID         string `json:"chat_id"`
	Text           string `json:"text"`
	ParseMode      string `json:"parse_mode"`
	DisablePreview bool   `json:"disable_web_page_preview"`
}

// apiEnvelope is Telegram's uniform response wrapper.
type apiEnvelope struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Send delivers one message to the configured chat.
func (t *TelegramNotifier) Send(text string) error {
	body, err := json.Marshal(sendMessage{
		ChatID:         t.ChatID,
		Text:           text,
		ParseMode:      "HTML",
		DisablePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	resp, err := t.Client.Post(t.api("sendMessage"), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram read response: %w", err)
	}
	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("telegram: status %d, unparseable body %q", resp.StatusCode, raw)
	}
	if !env.OK {
		return fmt.Errorf("telegram: %d %s", env.ErrorCode, env.Description)
	}
	return nil
}

// SendWithRetry retries transient failures with exponential backoff,
// respecting ctx between attempts.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		lastErr = t.Send(text)
		if lastErr == nil {
			return nil
		}
		if attempt >= maxRetries {
			break
		}
		backoff := time.Duration(1<<uint(attempt)) * time.Second
		log.Printf("[WARN] telegram send attempt %d/%d failed: %v, retrying in %v",
			attempt+1, maxRetries+1, lastErr, backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("telegram: %d attempts exhausted: %w", maxRetries+1, lastErr)
}
