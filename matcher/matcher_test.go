package matcher

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"length mismatch", []float64{1, 0}, []float64{1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNilClient(t *testing.T) {
	var m *Client
	if _, _, ok := m.BestCommand(context.Background(), "look around"); ok {
		t.Error("nil client must never match")
	}
	if _, _, ok := m.BestCharacter(context.Background(), "the agent"); ok {
		t.Error("nil client must never match")
	}
	if err := m.Warm(context.Background(), nil, nil); err != nil {
		t.Errorf("nil client Warm should be a no-op, got %v", err)
	}
}

func TestUnreachableEndpointFallsThrough(t *testing.T) {
	m := New("http://127.0.0.1:1/api/embeddings", "test-model")
	if err := m.Warm(context.Background(), []string{"Manuel"}, []string{"Map"}); err == nil {
		t.Error("Warm against unreachable endpoint should report an error")
	}
	if _, _, ok := m.BestCommand(context.Background(), "look around"); ok {
		t.Error("unreachable endpoint must not produce a match")
	}
}

// embedServer returns canned unit vectors keyed by prompt substring.
func embedServer(t *testing.T, vectors map[string][]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req embedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		vec, ok := vectors[req.Prompt]
		if !ok {
			// Default direction far from everything meaningful.
			vec = []float64{0, 0, 1}
		}
		json.NewEncoder(w).Encode(embedResponse{Embedding: vec})
	}))
}

func TestBestCommand(t *testing.T) {
	vectors := map[string][]float64{
		commandVocabulary["look"]:   {1, 0, 0},
		commandVocabulary["status"]: {0, 1, 0},
		"check out the area":        {0.95, 0.05, 0},
	}
	srv := embedServer(t, vectors)
	defer srv.Close()

	m := New(srv.URL, "test-model")
	if err := m.Warm(context.Background(), nil, nil); err != nil {
		t.Fatalf("Warm: %v", err)
	}

	cmd, score, ok := m.BestCommand(context.Background(), "check out the area")
	if !ok || cmd != "look" {
		t.Errorf("BestCommand = %q, %v, %v; want look", cmd, score, ok)
	}
	if score < CommandThreshold {
		t.Errorf("score %v below threshold yet matched", score)
	}

	// An input orthogonal to every command stays unmatched.
	if cmd, _, ok := m.BestCommand(context.Background(), "completely unrelated"); ok {
		t.Errorf("orthogonal input matched %q", cmd)
	}
}

func TestBestItem(t *testing.T) {
	vectors := map[string][]float64{
		itemVocabulary["water bottle"]: {1, 0, 0},
		itemVocabulary["map"]:          {0, 1, 0},
		"something to drink from":      {0.9, 0.1, 0},
	}
	srv := embedServer(t, vectors)
	defer srv.Close()

	m := New(srv.URL, "test-model")
	if err := m.Warm(context.Background(), nil, []string{"Water Bottle", "Map"}); err != nil {
		t.Fatalf("Warm: %v", err)
	}

	item, _, ok := m.BestItem(context.Background(), "something to drink from")
	if !ok || item != "water bottle" {
		t.Errorf("BestItem = %q, %v; want water bottle", item, ok)
	}
}

func TestBestCharacter(t *testing.T) {
	vectors := map[string][]float64{
		"Manuel":          {1, 0, 0},
		"Agent Hernandez": {0, 1, 0},
		"the smuggler":    {0.85, 0.15, 0},
	}
	srv := embedServer(t, vectors)
	defer srv.Close()

	m := New(srv.URL, "test-model")
	if err := m.Warm(context.Background(), []string{"Manuel", "Agent Hernandez"}, nil); err != nil {
		t.Fatalf("Warm: %v", err)
	}

	name, _, ok := m.BestCharacter(context.Background(), "the smuggler")
	if !ok || name != "manuel" {
		t.Errorf("BestCharacter = %q, %v; want manuel", name, ok)
	}
}

func TestWarmPartialFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls%2 == 0 {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(embedResponse{Embedding: []float64{1, 0}})
	}))
	defer srv.Close()

	m := New(srv.URL, "test-model")
	err := m.Warm(context.Background(), nil, nil)
	if err == nil {
		t.Error("Warm should surface the first failure")
	}
	if len(m.commands) == 0 {
		t.Error("Warm should keep the vectors that did arrive")
	}
}
