// Package catalog loads the bundled per-language card decks.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vibeflip/vibeflip/pkg/card"
	"github.com/vibeflip/vibeflip/pkg/language"
)

//go:embed cards.json
var bundled []byte

// Catalog holds the fixed per-language decks. Decks are immutable once
// loaded; ids are unique within a language's deck.
type Catalog struct {
	decks map[string][]card.Card
}

// Load parses the bundled deck resource. Loading never fails hard: a
// missing or malformed resource yields an empty catalog, and callers
// cascade to the sentinel fallback card.
func Load() *Catalog {
	c, err := Parse(bundled)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: load bundled decks: %v\n", err)
		return &Catalog{decks: map[string][]card.Card{}}
	}
	return c
}

// Parse builds a catalog from a JSON document mapping language name to
// an ordered list of cards. Decks with duplicate ids are rejected.
func Parse(data []byte) (*Catalog, error) {
	var decks map[string][]card.Card
	if err := json.Unmarshal(data, &decks); err != nil {
		return nil, err
	}
	for lang, deck := range decks {
		seen := make(map[string]struct{}, len(deck))
		for _, c := range deck {
			if c.ID == "" {
				return nil, fmt.Errorf("catalog: %s deck has a card without an id", lang)
			}
			if _, dup := seen[c.ID]; dup {
				return nil, fmt.Errorf("catalog: %s deck has duplicate card id %q", lang, c.ID)
			}
			seen[c.ID] = struct{}{}
		}
	}
	return &Catalog{decks: decks}, nil
}

// Empty returns a catalog with no decks at all. Used to simulate a
// failed resource load.
func Empty() *Catalog {
	return &Catalog{decks: map[string][]card.Card{}}
}

// Deck returns the ordered card deck for lang, falling back to the
// default language's deck when lang is unknown or its deck is empty.
// The returned slice may be empty when the catalog failed to load; it
// must not be mutated.
func (c *Catalog) Deck(lang string) []card.Card {
	if deck := c.decks[lang]; len(deck) > 0 {
		return deck
	}
	return c.decks[language.Default]
}

// Languages returns the languages that have a non-empty deck.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.decks))
	for _, lang := range language.Supported() {
		if len(c.decks[lang]) > 0 {
			out = append(out, lang)
		}
	}
	return out
}
