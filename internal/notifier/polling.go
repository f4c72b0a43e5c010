package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// CommandHandler maps a normalized command to a reply; an empty reply
// suppresses the response message.
type CommandHandler func(command string) string

const (
	pollTimeout = 30 * time.Second
	pollBackoff = 5 * time.Second
)

type pollUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// StartPolling consumes getUpdates until ctx is cancelled, dispatching
// each command message to handler. Group-style commands ("/score@bot")
// are normalized to their bare form before dispatch.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	// Long polls hold the connection for pollTimeout; the client needs
	// headroom past that.
	client := newHTTPClient("", pollTimeout+5*time.Second)
	var offset int64

	for ctx.Err() == nil {
		updates, err := t.fetchUpdates(ctx, client, offset)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("[WARN] telegram poll: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(pollBackoff):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			cmd := normalizeCommand(u)
			if cmd == "" {
				continue
			}
			log.Printf("[INFO] telegram command: %s", cmd)
			if reply := handler(cmd); reply != "" {
				if err := t.Send(reply); err != nil {
					log.Printf("[ERROR] telegram reply: %v", err)
				}
			}
		}
	}
	log.Println("[INFO] telegram polling stopped")
}

func (t *TelegramNotifier) fetchUpdates(ctx context.Context, client *http.Client, offset int64) ([]pollUpdate, error) {
	u := fmt.Sprintf("%s?offset=%d&timeout=%d&allowed_updates=[\"message\"]",
		t.api("getUpdates"), offset, int(pollTimeout.Seconds()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read updates: %w", err)
	}

	var payload struct {
		apiEnvelope
		Result []pollUpdate `json:"result"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	if !payload.OK {
		return nil, fmt.Errorf("getUpdates: %d %s", payload.ErrorCode, payload.Description)
	}
	return payload.Result, nil
}

// normalizeCommand extracts "/cmd" from an update, stripping any @bot
// suffix and arguments. Non-command messages return "".
func normalizeCommand(u pollUpdate) string {
	if u.Message == nil {
		return ""
	}
	text := strings.TrimSpace(u.Message.Text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		text = text[:i]
	}
	if i := strings.IndexByte(text, '@'); i >= 0 {
		text = text[:i]
	}
	return text
}
