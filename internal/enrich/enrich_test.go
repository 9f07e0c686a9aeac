package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMockSuggestionByCompanyName(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		fragment string
		pros     int
		cons     int
	}{
		{"apple copy", "Apple Store", "iPhone lineup", 3, 2},
		{"volt copy", "VoltRide Test", "EV mobility", 3, 2},
		{"ride matches volt copy", "RideNow", "EV mobility", 3, 2},
		{"generic fallback", "Acme Corp", "interactive demos", 3, 2},
		{"empty name falls back", "", "interactive demos", 3, 2},
	}

	m := NewMock(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Generate(context.Background(), Input{CompanyName: tt.company})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !strings.Contains(got.Description, tt.fragment) {
				t.Errorf("description %q missing %q", got.Description, tt.fragment)
			}
			if len(got.Pros) != tt.pros || len(got.Cons) != tt.cons {
				t.Errorf("got %d pros, %d cons; want %d and %d",
					len(got.Pros), len(got.Cons), tt.pros, tt.cons)
			}
		})
	}
}

func TestMockGenerateHonorsCancellation(t *testing.T) {
	m := NewMock(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, Input{CompanyName: "Apple"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if in.CompanyName != "AeroDynamics" {
			t.Errorf("got company %q", in.CompanyName)
		}
		json.NewEncoder(w).Encode(Suggestion{
			Description: "desc",
			Pros:        []string{"p"},
			Cons:        []string{"c"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	got, err := c.Generate(context.Background(), Input{CompanyName: "AeroDynamics"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Description != "desc" || len(got.Pros) != 1 || len(got.Cons) != 1 {
		t.Errorf("unexpected suggestion: %+v", got)
	}
}

func TestClientGenerateFailuresCollapse(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"endpoint error status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"Missing OPENAI_API_KEY"}`, http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, nil)
			_, err := c.Generate(context.Background(), Input{})
			if !errors.Is(err, ErrGenerationFailed) {
				t.Errorf("got %v, want ErrGenerationFailed", err)
			}
		})
	}
}

func TestClientGenerateUnreachableEndpoint(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", nil)
	_, err := c.Generate(context.Background(), Input{})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("got %v, want ErrGenerationFailed", err)
	}
}

func TestOpenAIGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("got auth header %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Model != "gpt-4o-mini" || req.MaxTokens != 300 {
			t.Errorf("unexpected sampling settings: %+v", req)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Error("response_format json_object not requested")
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		content, _ := json.Marshal(Suggestion{
			Description: "desc",
			Pros:        []string{"a", "b", "c"},
			Cons:        []string{"d", "e", "f"},
		})
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": string(content)}},
			},
		})
	}))
	defer srv.Close()

	o := NewOpenAI("test-key", "gpt-4o-mini", 300, 0.7)
	o.apiURL = srv.URL

	got, err := o.Generate(context.Background(), Input{CompanyName: "AeroDynamics"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Description != "desc" || len(got.Pros) != 3 {
		t.Errorf("unexpected suggestion: %+v", got)
	}
}

func TestOpenAIGenerateUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	o := NewOpenAI("bad-key", "gpt-4o-mini", 300, 0.7)
	o.apiURL = srv.URL

	_, err := o.Generate(context.Background(), Input{})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
	if !strings.Contains(upstream.Detail, "invalid key") {
		t.Errorf("detail %q missing upstream body", upstream.Detail)
	}
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	o := NewOpenAI("test-key", "gpt-4o-mini", 300, 0.7)
	o.apiURL = srv.URL

	if _, err := o.Generate(context.Background(), Input{}); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestBuildPromptPlaceholders(t *testing.T) {
	prompt := buildPrompt(Input{})
	for _, want := range []string{"Unknown brand", "N/A", "Not provided"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing placeholder %q", want)
		}
	}

	prompt = buildPrompt(Input{CompanyName: "AeroDynamics", ProductRef: "AD-204", CurrentDescription: "old"})
	for _, want := range []string{"AeroDynamics", "AD-204", "old"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing field %q", want)
		}
	}
}
