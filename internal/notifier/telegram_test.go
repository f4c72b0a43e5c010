package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testNotifier(baseURL string) *TelegramNotifier {
	return &TelegramNotifier{
		BotToken: "token",
		ChatID:   "42",
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSendPayload(t *testing.T) {
	var got sendMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := testNotifier(srv.URL)
	if err := n.Send("<b>hello</b>"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if path != "/bottoken/sendMessage" {
		t.Errorf("path = %q, want /bottoken/sendMessage", path)
	}
	if got.ChatID != "42" {
		t.Errorf("chat_id = %q, want 42", got.ChatID)
	}
	if got.Text != "<b>hello</b>" {
		t.Errorf("text = %q", got.Text)
	}
	if got.ParseMode != "HTML" {
		t.Errorf("parse_mode = %q, want HTML", got.ParseMode)
	}
	if !got.DisablePreview {
		t.Error("expected link previews disabled")
	}
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"chat not found"}`))
	}))
	defer srv.Close()

	err := testNotifier(srv.URL).Send("hi")
	if err == nil {
		t.Fatal("expected error for ok=false response")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error %q should carry the API description", err)
	}
}

func TestSendWithRetryRecovers(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(`{"ok":false,"error_code":429,"description":"too many requests"}`))
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := testNotifier(srv.URL)
	if err := n.SendWithRetry(context.Background(), "hi", 2); err != nil {
		t.Fatalf("SendWithRetry: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestSendWithRetryHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error_code":500,"description":"boom"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := testNotifier(srv.URL).SendWithRetry(ctx, "hi", 3)
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestNormalizeCommand(t *testing.T) {
	msg := func(text string) pollUpdate {
		u := pollUpdate{Message: &struct {
			Text string `json:"text"`
			Chat struct {
				ID int64 `json:"id"`
			} `json:"chat"`
		}{}}
		u.Message.Text = text
		return u
	}

	tests := []struct {
		name string
		u    pollUpdate
		want string
	}{
		{"plain", msg("/score"), "/score"},
		{"group suffix", msg("/score@ecotrackbot"), "/score"},
		{"arguments", msg("/sectors now please"), "/sectors"},
		{"tab argument", msg("/advice\tnow"), "/advice"},
		{"surrounding space", msg("  /refresh  "), "/refresh"},
		{"not a command", msg("hello there"), ""},
		{"empty text", msg(""), ""},
		{"no message", pollUpdate{}, ""},
	}
	for _, tt := range tests {
		if got := normalizeCommand(tt.u); got != tt.want {
			t.Errorf("%s: normalizeCommand = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStartPollingDispatches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var served bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.Write([]byte(`{"ok":true}`))
			return
		}
		if served {
			w.Write([]byte(`{"ok":true,"result":[]}`))
			return
		}
		served = true
		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":7,"message":{"text":"/score@ecotrackbot","chat":{"id":42}}},
			{"update_id":8,"message":{"text":"not a command","chat":{"id":42}}}
		]}`))
	}))
	defer srv.Close()

	got := make(chan string, 1)
	n := testNotifier(srv.URL)
	done := make(chan struct{})
	go func() {
		n.StartPolling(ctx, func(cmd string) string {
			got <- cmd
			cancel()
			return ""
		})
		close(done)
	}()

	select {
	case cmd := <-got:
		if cmd != "/score" {
			t.Errorf("dispatched %q, want /score", cmd)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no command dispatched")
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not stop after cancel")
	}
}
