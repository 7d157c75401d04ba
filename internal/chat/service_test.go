package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReplyUsesUpstream(t *testing.T) {
	var gotPrompt string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		if err := json.Unmarshal(body, &req); err == nil && len(req.Contents) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"I hear you."}]}}]}`))
	}))
	defer upstream.Close()

	svc := NewService("test-key", upstream.URL)
	reply := svc.Reply(context.Background(), "I feel overwhelmed", []Message{
		{Text: "hi", IsUser: true},
		{Text: "hello, I'm Mentrix", IsUser: false},
	})
	if reply != "I hear you." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if !strings.Contains(gotPrompt, "User: hi") || !strings.Contains(gotPrompt, "Mentrix: hello, I'm Mentrix") {
		t.Fatalf("history missing from prompt:\n%s", gotPrompt)
	}
	if !strings.Contains(gotPrompt, "Current user message: I feel overwhelmed") {
		t.Fatalf("message missing from prompt")
	}
}

func TestReplyTrimsHistoryToSixTurns(t *testing.T) {
	var gotPrompt string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		_ = json.Unmarshal(body, &req)
		gotPrompt = req.Contents[0].Parts[0].Text
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer upstream.Close()

	history := []Message{
		{Text: "first", IsUser: true},
		{Text: "second", IsUser: false},
		{Text: "third", IsUser: true},
		{Text: "fourth", IsUser: false},
		{Text: "fifth", IsUser: true},
		{Text: "sixth", IsUser: false},
		{Text: "seventh", IsUser: true},
	}
	svc := NewService("test-key", upstream.URL)
	svc.Reply(context.Background(), "now", history)

	if strings.Contains(gotPrompt, "first") {
		t.Fatalf("oldest turn should be dropped")
	}
	if !strings.Contains(gotPrompt, "second") || !strings.Contains(gotPrompt, "seventh") {
		t.Fatalf("recent turns missing from prompt")
	}
}

func TestReplyFallsBackOnUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer upstream.Close()

	svc := NewService("test-key", upstream.URL)
	reply := svc.Reply(context.Background(), "hello", nil)
	if !isFallback(reply) {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestReplyFallsBackWithoutKey(t *testing.T) {
	svc := NewService("", "http://unused.invalid")
	reply := svc.Reply(context.Background(), "hello", nil)
	if !isFallback(reply) {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func isFallback(reply string) bool {
	for _, f := range fallbackReplies {
		if reply == f {
			return true
		}
	}
	return false
}
