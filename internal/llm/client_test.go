package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseModel(t *testing.T) {
	for _, m := range Models() {
		got, err := ParseModel(string(m))
		if err != nil {
			t.Errorf("ParseModel(%s): %v", m, err)
		}
		if got != m {
			t.Errorf("ParseModel(%s) = %s", m, got)
		}
		if got.ID() == "" {
			t.Errorf("model %s has no provider id", m)
		}
	}

	if _, err := ParseModel("claude"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestReasoningEffort(t *testing.T) {
	tests := []struct {
		model Model
		want  string
	}{
		{ModelGPT, "medium"},
		{ModelQwen, "default"},
		{ModelDeepseek, ""},
		{ModelLlama, ""},
	}
	for _, tt := range tests {
		if got := tt.model.ReasoningEffort(); got != tt.want {
			t.Errorf("%s.ReasoningEffort() = %q, want %q", tt.model, got, tt.want)
		}
	}
}

func TestGroqClientRequestShape(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "  {\"nodes\": {}}  "}}]}`))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", ModelGPT, nil)
	client.baseURL = server.URL

	got, err := client.CompleteWithSystem(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("CompleteWithSystem: %v", err)
	}
	if got != `{"nodes": {}}` {
		t.Errorf("response not trimmed: %q", got)
	}

	if body["model"] != "openai/gpt-oss-120b" {
		t.Errorf("model = %v", body["model"])
	}
	if body["temperature"] != float64(1) {
		t.Errorf("temperature = %v", body["temperature"])
	}
	if body["max_completion_tokens"] != float64(8192) {
		t.Errorf("max_completion_tokens = %v", body["max_completion_tokens"])
	}
	if body["top_p"] != float64(1) {
		t.Errorf("top_p = %v", body["top_p"])
	}
	if v, ok := body["stream"]; !ok || v != false {
		t.Errorf("stream = %v (present %v), want explicit false", v, ok)
	}
	if v, ok := body["stop"]; !ok || v != nil {
		t.Errorf("stop = %v (present %v), want explicit null", v, ok)
	}
	rf, ok := body["response_format"].(map[string]any)
	if !ok || rf["type"] != "json_object" {
		t.Errorf("response_format = %v", body["response_format"])
	}
	msgs, ok := body["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("messages = %v", body["messages"])
	}
	first := msgs[0].(map[string]any)
	second := msgs[1].(map[string]any)
	if first["role"] != "system" || first["content"] != "system text" {
		t.Errorf("system message = %v", first)
	}
	if second["role"] != "user" || second["content"] != "user text" {
		t.Errorf("user message = %v", second)
	}
}

func TestGroqClientReasoningEffortPerModel(t *testing.T) {
	tests := []struct {
		model Model
		want  string // "" means the key must be absent
	}{
		{ModelGPT, "medium"},
		{ModelQwen, "default"},
		{ModelDeepseek, ""},
		{ModelLlama, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			var body map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&body)
				w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
			}))
			defer server.Close()

			client := NewGroqClient("test-key", tt.model, nil)
			client.baseURL = server.URL

			if _, err := client.CompleteWithSystem(context.Background(), "s", "u"); err != nil {
				t.Fatalf("CompleteWithSystem: %v", err)
			}

			got, present := body["reasoning_effort"]
			if tt.want == "" {
				if present {
					t.Errorf("reasoning_effort should be omitted, got %v", got)
				}
			} else if got != tt.want {
				t.Errorf("reasoning_effort = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestGroqClientRetriesRateLimits(t *testing.T) {
	defer func(orig time.Duration) { backoffUnit = orig }(backoffUnit)
	backoffUnit = time.Millisecond

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices": [{"message": {"content": "done"}}]}`))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", ModelLlama, nil)
	client.baseURL = server.URL

	got, err := client.CompleteWithSystem(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("CompleteWithSystem: %v", err)
	}
	if got != "done" {
		t.Errorf("response = %q", got)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type notifyCloser struct {
	io.ReadCloser
	once    sync.Once
	onClose func()
}

func (c *notifyCloser) Close() error {
	c.once.Do(c.onClose)
	return c.ReadCloser.Close()
}

func TestGroqClientClosesBodyBeforeRetrying(t *testing.T) {
	defer func(orig time.Duration) { backoffUnit = orig }(backoffUnit)
	backoffUnit = time.Millisecond

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices": [{"message": {"content": "done"}}]}`))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", ModelLlama, nil)
	client.baseURL = server.URL

	var mu sync.Mutex
	open := 0
	client.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		if open != 0 {
			t.Errorf("%d response bodies still open at next attempt", open)
		}
		mu.Unlock()

		resp, err := http.DefaultTransport.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		mu.Lock()
		open++
		mu.Unlock()
		resp.Body = &notifyCloser{ReadCloser: resp.Body, onClose: func() {
			mu.Lock()
			open--
			mu.Unlock()
		}}
		return resp, nil
	})

	if _, err := client.CompleteWithSystem(context.Background(), "s", "u"); err != nil {
		t.Fatalf("CompleteWithSystem: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if open != 0 {
		t.Errorf("%d response bodies left open", open)
	}
}

func TestGroqClientGivesUpAfterMaxRetries(t *testing.T) {
	defer func(orig time.Duration) { backoffUnit = orig }(backoffUnit)
	backoffUnit = time.Millisecond

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGroqClient("test-key", ModelLlama, nil)
	client.baseURL = server.URL

	_, err := client.CompleteWithSystem(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4", attempts)
	}
}

func TestGroqClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("boom"))
			},
			wantErr: "API request failed with status 500",
		},
		{
			name: "APIError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error": {"message": "model decommissioned", "type": "invalid_request_error"}}`))
			},
			wantErr: "API error: model decommissioned",
		},
		{
			name: "NoChoices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices": []}`))
			},
			wantErr: "no completion returned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewGroqClient("test-key", ModelQwen, nil)
			client.baseURL = server.URL

			_, err := client.CompleteWithSystem(context.Background(), "s", "u")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := err.Error(); !strings.Contains(got, tt.wantErr) {
				t.Errorf("error = %q, want substring %q", got, tt.wantErr)
			}
		})
	}
}

func TestGroqClientRequiresAPIKey(t *testing.T) {
	client := NewGroqClient("", ModelGPT, nil)
	if _, err := client.CompleteWithSystem(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for missing API key")
	}
}
