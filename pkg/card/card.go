// Package card defines the motivation card value type.
package card

import (
	"fmt"
	"strings"
)

// Category identifies the mood of a card.
type Category string

const (
	// Zen cards nudge toward calm and rest.
	Zen Category = "zen"
	// Bold cards nudge toward action.
	Bold Category = "bold"
)

// AllCategories returns the list of supported card categories.
func AllCategories() []Category {
	return []Category{Zen, Bold}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Empty input defaults to Zen.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return Zen, nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return Zen, fmt.Errorf("card: unknown category %q", raw)
}

// Card is one unit of motivational content. Action is optional; the empty
// string means the card carries no challenge.
type Card struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Action   string   `json:"action,omitempty"`
	Category Category `json:"category"`
}

// HasAction reports whether the card carries a challenge action.
func (c Card) HasAction() bool {
	return c.Action != ""
}

func (c Card) String() string {
	if c.HasAction() {
		return fmt.Sprintf("%s (%s)", c.Text, c.Action)
	}
	return c.Text
}

// FallbackID is the id of the sentinel card returned when no deck is
// available at all.
const FallbackID = "fallback"

// Fallback returns the sentinel card used when every deck is empty. It is
// never persisted to history.
func Fallback() Card {
	return Card{
		ID:       FallbackID,
		Text:     "Take a deep breath. Today is yours.",
		Category: Zen,
	}
}

// IsFallback reports whether c is the sentinel fallback card.
func (c Card) IsFallback() bool {
	return c.ID == FallbackID
}
