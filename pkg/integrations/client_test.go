package integrations

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"X-Api-Key": "secret"}
	client := NewClient(5*time.Second, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Fatal("NewClient() http client is nil")
	}
	if client.http.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.http.Timeout)
	}
	if client.headers["X-Api-Key"] != "secret" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewHTTPClientDefaultTimeout(t *testing.T) {
	if got := NewHTTPClient(0).Timeout; got != DefaultTimeout {
		t.Errorf("NewHTTPClient(0).Timeout = %v, want %v", got, DefaultTimeout)
	}
}

func TestClientPostJSON(t *testing.T) {
	type request struct {
		Content string `json:"content"`
	}
	type response struct {
		Echo string `json:"echo"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(response{Echo: req.Content})
	}))
	defer server.Close()

	client := NewClient(time.Second, nil)
	var resp response
	if err := client.PostJSON(context.Background(), server.URL, nil, request{Content: "hello"}, &resp); err != nil {
		t.Fatalf("PostJSON() error: %v", err)
	}
	if resp.Echo != "hello" {
		t.Errorf("echo = %q, want %q", resp.Echo, "hello")
	}
}

func TestClientPostJSONHeadersOverrideDefaults(t *testing.T) {
	var gotDefault, gotOverride string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDefault = r.Header.Get("X-Default")
		gotOverride = r.Header.Get("X-Override")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(time.Second, map[string]string{"X-Default": "default", "X-Override": "default"})
	var resp map[string]any
	err := client.PostJSON(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, struct{}{}, &resp)
	if err != nil {
		t.Fatalf("PostJSON() error: %v", err)
	}
	if gotDefault != "default" {
		t.Errorf("X-Default = %q, want %q", gotDefault, "default")
	}
	if gotOverride != "overridden" {
		t.Errorf("X-Override = %q, want %q", gotOverride, "overridden")
	}
}

func TestClientPostJSONErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    errors.Code
		wantMessage string
	}{
		{"json error body", http.StatusUnauthorized, `{"code":"unauthorized","message":"bad key"}`, errors.ErrCodeAPI, "bad key"},
		{"plain error body", http.StatusBadGateway, "upstream down", errors.ErrCodeAPI, "upstream down"},
		{"malformed success body", http.StatusOK, `{"sentences": [`, errors.ErrCodeResponseFormat, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var resp map[string]any
			err := NewClient(time.Second, nil).PostJSON(context.Background(), server.URL, nil, struct{}{}, &resp)
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("error = %v, want code %s", err, tt.wantCode)
			}
			if tt.wantMessage == "" {
				return
			}
			var apiErr *errors.APIError
			if !stderrors.As(err, &apiErr) {
				t.Fatalf("error %v does not wrap *errors.APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClientPostJSONTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	var resp map[string]any
	err := NewClient(time.Second, nil).PostJSON(context.Background(), url, nil, struct{}{}, &resp)
	if !errors.Is(err, errors.ErrCodeRequest) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeRequest)
	}
}

func TestClientPostJSONCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var resp map[string]any
	err := NewClient(time.Second, nil).PostJSON(ctx, server.URL, nil, struct{}{}, &resp)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
	if errors.ExitCode(err) != errors.ExitInterrupted {
		t.Errorf("ExitCode = %d, want %d", errors.ExitCode(err), errors.ExitInterrupted)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests []string
	statuses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, _, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestClientReportsHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var resp map[string]any
	if err := NewClient(time.Second, nil).PostJSON(context.Background(), server.URL+"/syntax/dependencies", nil, struct{}{}, &resp); err != nil {
		t.Fatalf("PostJSON() error: %v", err)
	}

	if len(hooks.requests) != 1 || hooks.requests[0] != "POST /syntax/dependencies" {
		t.Errorf("requests = %v", hooks.requests)
	}
	if len(hooks.statuses) != 1 || hooks.statuses[0] != http.StatusOK {
		t.Errorf("statuses = %v", hooks.statuses)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code    int
		wantErr bool
	}{
		{200, false},
		{201, false},
		{204, false},
		{301, true},
		{400, true},
		{404, true},
		{500, true},
	}

	for _, tt := range tests {
		err := checkStatus(tt.code, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkStatus(%d) error = %v, wantErr %v", tt.code, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeAPI) {
			t.Errorf("checkStatus(%d) code = %s, want %s", tt.code, errors.GetCode(err), errors.ErrCodeAPI)
		}
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxErrorBody+10)
	if got := truncate(long, maxErrorBody); len(got) != maxErrorBody+3 {
		t.Errorf("len(truncate) = %d, want %d", len(got), maxErrorBody+3)
	}
	if got := truncate("short", maxErrorBody); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	// "é" is two bytes; cutting at 1 must not split it.
	if got := truncate("éé", 1); got != "..." {
		t.Errorf("truncate(éé, 1) = %q, want %q", got, "...")
	}
}
