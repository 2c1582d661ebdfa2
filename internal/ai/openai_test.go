package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newCompletionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Model          string `json:"model"`
			ResponseFormat struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %q", body.ResponseFormat.Type)
		}
		if len(body.Messages) != 2 || !strings.Contains(body.Messages[1].Content, "Destination: Lisbon") {
			t.Errorf("unexpected messages %+v", body.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error": {"message": "upstream unavailable", "type": "server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  body.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIGenerator_GenerateItinerary(t *testing.T) {
	srv := newCompletionServer(t, http.StatusOK, minimalReply)
	gen := NewOpenAIGenerator("test-key", "", srv.URL+"/v1")

	res, err := gen.GenerateItinerary(context.Background(), lisbonRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if res.Destinations[0].Name != "Belem Tower" {
		t.Errorf("destinations = %+v", res.Destinations)
	}
}

func TestOpenAIGenerator_UpstreamError(t *testing.T) {
	srv := newCompletionServer(t, http.StatusServiceUnavailable, "")
	gen := NewOpenAIGenerator("test-key", "gpt-4o-mini", srv.URL+"/v1")

	_, err := gen.GenerateItinerary(context.Background(), lisbonRequest())
	if !errors.Is(err, ErrNoUsableOutput) {
		t.Fatalf("expected ErrNoUsableOutput, got %v", err)
	}
}

func TestOpenAIGenerator_MalformedReply(t *testing.T) {
	srv := newCompletionServer(t, http.StatusOK, `{"weather": "sunny"}`)
	gen := NewOpenAIGenerator("test-key", "gpt-4o-mini", srv.URL+"/v1")

	_, err := gen.GenerateItinerary(context.Background(), lisbonRequest())
	if !errors.Is(err, ErrNoUsableOutput) {
		t.Fatalf("expected ErrNoUsableOutput, got %v", err)
	}
}
