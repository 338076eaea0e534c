// Package matcher is an optional semantic command matcher backed by an
// Ollama-style embeddings endpoint. Free-form input the parser cannot
// place is compared against precomputed vocabulary vectors by cosine
// similarity. Every failure mode — no server, bad response, low score,
// nil client — degrades to the deterministic parser; the game never
// depends on the matcher being reachable.
package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
)

// Similarity thresholds. Commands need a confident match; characters and
// items are lower-stakes since the caller verifies presence anyway.
const (
	CommandThreshold = 0.7
	EntityThreshold  = 0.6
)

const requestTimeout = 5 * time.Second

// commandVocabulary maps canonical commands to paraphrase descriptions
// that anchor their embedding.
var commandVocabulary = map[string]string{
	"look":       "examine surroundings, check environment, see what's around, observe area",
	"status":     "check health, view inventory, see stats, character status, personal condition",
	"talk":       "speak to character, converse with person, chat with npc, communicate",
	"take":       "pick up item, grab object, collect thing, acquire item",
	"use":        "utilize item, employ object, make use of, activate",
	"move north": "go north, travel northward, head north, walk north",
	"move south": "go south, travel southward, head south, walk south",
	"move east":  "go east, travel eastward, head east, walk east",
	"move west":  "go west, travel westward, head west, walk west",
	"help":       "show commands, display help, list options, assistance",
	"quit":       "exit game, end session, stop playing, leave game",
}

// itemVocabulary enriches item embeddings beyond their bare names.
var itemVocabulary = map[string]string{
	"water bottle":  "container for drinking water, hydration, liquid container",
	"canned food":   "preserved food, nutrition, sustenance, meal",
	"blanket":       "cloth for warmth, covering, protection from cold",
	"map":           "navigation tool, directions, guide, area layout",
	"flashlight":    "portable light, torch, illumination tool",
	"first aid kit": "medical supplies, bandages, treatment, health items",
	"compass":       "navigation tool, direction finder, orientation device",
	"family photo":  "picture of loved ones, personal memento, memory",
	"money":         "currency, cash, funds, financial resource",
	"id papers":     "identification documents, passport, legal papers",
}

// Client talks to the embeddings endpoint and caches vocabulary vectors.
// A nil *Client is valid: every method reports no match.
type Client struct {
	url   string
	model string
	httpc *http.Client

	commands   map[string][]float64
	characters map[string][]float64
	items      map[string][]float64
}

// New returns a Client for the given endpoint and model. No network
// traffic happens until Warm or a Best* call.
func New(url, model string) *Client {
	return &Client{
		url:        url,
		model:      model,
		httpc:      &http.Client{Timeout: requestTimeout},
		commands:   make(map[string][]float64),
		characters: make(map[string][]float64),
		items:      make(map[string][]float64),
	}
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed fetches the embedding vector for a text.
func (m *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(embedRequest{Model: m.model, Prompt: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embeddings endpoint returned %s", resp.Status)
	}

	var er embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, err
	}
	if len(er.Embedding) == 0 {
		return nil, fmt.Errorf("embeddings endpoint returned an empty vector")
	}
	return er.Embedding, nil
}

// Warm precomputes embeddings for the command vocabulary and the given
// character and item names. Returns the first error but keeps whatever
// vectors were fetched before it; partial vocabularies still match.
func (m *Client) Warm(ctx context.Context, characters, items []string) error {
	if m == nil {
		return nil
	}

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for cmd, desc := range commandVocabulary {
		vec, err := m.Embed(ctx, desc)
		if err != nil {
			record(err)
			continue
		}
		m.commands[cmd] = vec
	}
	for _, name := range characters {
		vec, err := m.Embed(ctx, name)
		if err != nil {
			record(err)
			continue
		}
		m.characters[strings.ToLower(name)] = vec
	}
	for _, name := range items {
		key := strings.ToLower(name)
		desc := key
		if d, ok := itemVocabulary[key]; ok {
			desc = d
		}
		vec, err := m.Embed(ctx, desc)
		if err != nil {
			record(err)
			continue
		}
		m.items[key] = vec
	}
	return firstErr
}

// cosine is the cosine similarity of two vectors, 0 when either is
// degenerate or lengths differ.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// best returns the highest-similarity key for the input, or false when
// nothing clears the threshold or the endpoint is unreachable.
func (m *Client) best(ctx context.Context, input string, vecs map[string][]float64, threshold float64) (string, float64, bool) {
	if m == nil || len(vecs) == 0 {
		return "", 0, false
	}

	inputVec, err := m.Embed(ctx, input)
	if err != nil {
		return "", 0, false
	}

	var bestKey string
	var bestScore float64
	for key, vec := range vecs {
		if s := cosine(inputVec, vec); s > bestScore {
			bestScore = s
			bestKey = key
		}
	}
	if bestScore < threshold {
		return "", 0, false
	}
	return bestKey, bestScore, true
}

// BestCommand matches free-form input against the command vocabulary.
func (m *Client) BestCommand(ctx context.Context, input string) (string, float64, bool) {
	if m == nil {
		return "", 0, false
	}
	return m.best(ctx, input, m.commands, CommandThreshold)
}

// BestCharacter matches a description against known character names.
func (m *Client) BestCharacter(ctx context.Context, input string) (string, float64, bool) {
	if m == nil {
		return "", 0, false
	}
	return m.best(ctx, input, m.characters, EntityThreshold)
}

// BestItem matches a description against known item names.
func (m *Client) BestItem(ctx context.Context, input string) (string, float64, bool) {
	if m == nil {
		return "", 0, false
	}
	return m.best(ctx, input, m.items, EntityThreshold)
}
