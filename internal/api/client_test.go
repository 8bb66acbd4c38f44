package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgerrors "github.com/zhubert/codepad/internal/errors"
)

func TestClient_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/run" {
			t.Errorf("path = %s, want /run", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var req RunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Code != "print(input())" || req.Language != "python" || req.Input != "42" {
			t.Errorf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RunResponse{Output: "42\n"})
	}))
	defer server.Close()

	c := NewClientWithHTTP(server.Client(), server.URL+"/")
	resp, err := c.Run(context.Background(), RunRequest{Code: "print(input())", Language: "python", Input: "42"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if resp.Output != "42\n" || resp.Error != "" {
		t.Errorf("Run() = %+v", resp)
	}
}

func TestClient_Run_ApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	resp, err := NewClientWithHTTP(server.Client(), server.URL).Run(context.Background(), RunRequest{})
	if err != nil {
		t.Fatalf("an error field in a 2xx body is not a transport error: %v", err)
	}
	if resp.Error != "boom" {
		t.Errorf("resp.Error = %q, want boom", resp.Error)
	}
}

func TestClient_Chat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai-chat" {
			t.Errorf("path = %s, want /ai-chat", r.URL.Path)
		}
		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Message != "why?" || req.Code != "x = 1" || req.Language != "r" {
			t.Errorf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(ChatResponse{Message: "because"})
	}))
	defer server.Close()

	resp, err := NewClientWithHTTP(server.Client(), server.URL).Chat(context.Background(), ChatRequest{Message: "why?", Code: "x = 1", Language: "r"})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if resp.Message != "because" {
		t.Errorf("resp.Message = %q", resp.Message)
	}
}

func TestClient_TransportErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>gateway</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewClientWithHTTP(server.Client(), server.URL)
			if _, err := c.Run(context.Background(), RunRequest{}); !pkgerrors.Is(err, pkgerrors.KindTransport) {
				t.Errorf("Run() error = %v, want transport error", err)
			}
			if _, err := c.Chat(context.Background(), ChatRequest{}); !pkgerrors.Is(err, pkgerrors.KindTransport) {
				t.Errorf("Chat() error = %v, want transport error", err)
			}
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second).Run(context.Background(), RunRequest{})
	if !pkgerrors.Is(err, pkgerrors.KindTransport) {
		t.Errorf("error = %v, want transport error", err)
	}
}

func TestNewClient_TrimsSlash(t *testing.T) {
	c := NewClient("http://127.0.0.1:8000///", 0)
	if c.BaseURL() != "http://127.0.0.1:8000" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}
