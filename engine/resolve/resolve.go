// Package resolve matches loose player references ("agent", "water")
// against the items and characters actually present. Matching is
// case-insensitive: exact name first, then prefix, then any word or
// substring match.
package resolve

import (
	"strings"

	"github.com/nathoo/borderline/engine/character"
)

// Item resolves a query against a list of item names.
func Item(items []string, query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}

	for _, it := range items {
		if strings.ToLower(it) == query {
			return it, true
		}
	}
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(it), query) {
			return it, true
		}
	}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), query) {
			return it, true
		}
	}
	return "", false
}

// Character resolves a query against the characters present.
func Character(chars []*character.Character, query string) (*character.Character, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, false
	}

	for _, c := range chars {
		if strings.ToLower(c.Name) == query {
			return c, true
		}
	}
	for _, c := range chars {
		if strings.HasPrefix(strings.ToLower(c.Name), query) {
			return c, true
		}
	}
	for _, c := range chars {
		name := strings.ToLower(c.Name)
		for _, word := range strings.Fields(name) {
			if word == query || strings.HasPrefix(word, query) {
				return c, true
			}
		}
		if strings.Contains(name, query) {
			return c, true
		}
	}
	return nil, false
}
