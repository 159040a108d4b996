// Package assign picks exactly one card per calendar day.
//
// Determinism comes from persistence, not seeding: the pick on a history
// miss is uniformly random, and the write-once history makes every later
// call that day resolve to the same card.
package assign

import (
	"math/rand/v2"
	"time"

	"github.com/vibeflip/vibeflip/pkg/card"
	"github.com/vibeflip/vibeflip/pkg/catalog"
	"github.com/vibeflip/vibeflip/pkg/datekey"
	"github.com/vibeflip/vibeflip/pkg/history"
	"github.com/vibeflip/vibeflip/pkg/store"
)

// Engine assigns the daily card. Construct one per process and hand it
// to the composition root; it owns no goroutines.
type Engine struct {
	Catalog *catalog.Catalog
	History *history.Store

	// Window is the recency exclusion window in days; zero or negative
	// means the default.
	Window int

	// Now and IntN are injectable for tests.
	Now  func() time.Time
	IntN func(n int) int
}

// New returns an engine with the default window, clock, and randomness.
func New(cat *catalog.Catalog, hist *history.Store) *Engine {
	return &Engine{Catalog: cat, History: hist, Window: store.DefaultWindow}
}

func (e *Engine) window() int {
	if e.Window > 0 {
		return e.Window
	}
	return store.DefaultWindow
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) intN(n int) int {
	if e.IntN != nil {
		return e.IntN(n)
	}
	return rand.IntN(n)
}

// TodayCard returns the card assigned to the current local calendar day
// for lang, creating and persisting the assignment if none exists yet.
// It never fails: an unknown language resolves to the default deck, and
// an entirely empty catalog yields the sentinel fallback card.
func (e *Engine) TodayCard(lang string) card.Card {
	return e.CardOn(datekey.For(e.now()), lang)
}

// CardOn resolves the assignment for an explicit dateKey. See TodayCard.
func (e *Engine) CardOn(dateKey, lang string) card.Card {
	deck := e.Catalog.Deck(lang)
	if len(deck) == 0 {
		// Total catalog failure. Degraded mode: a fixed card, no
		// history write.
		return card.Fallback()
	}
	byID := indexDeck(deck)

	// Cache hit: deterministic and side-effect free.
	if id, ok := e.History.Get(dateKey); ok {
		if c, ok := byID[id]; ok {
			return c
		}
	}

	pick := e.pick(deck, dateKey)

	// Write-once put. If a concurrent caller won the race (or an entry
	// existed under an id no longer in the deck), the re-read decides:
	// whatever the history actually stored is today's card.
	e.History.Put(dateKey, pick.ID)
	if id, ok := e.History.Get(dateKey); ok {
		if c, ok := byID[id]; ok {
			return c
		}
	}

	// Persistence failed or the stored id is unknown to this deck; the
	// session still gets a card, it just may not survive a restart.
	return pick
}

// pick chooses uniformly from the deck minus recently assigned ids,
// falling back to the whole deck when the exclusion window ate it all.
func (e *Engine) pick(deck []card.Card, asOf string) card.Card {
	exclude := e.History.RecentCardIDs(e.window(), asOf)
	pool := make([]card.Card, 0, len(deck))
	for _, c := range deck {
		if _, recent := exclude[c.ID]; !recent {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		// Routine when the window is at least the deck size; never
		// block assignment on exhaustion.
		pool = deck
	}
	return pool[e.intN(len(pool))]
}

func indexDeck(deck []card.Card) map[string]card.Card {
	byID := make(map[string]card.Card, len(deck))
	for _, c := range deck {
		byID[c.ID] = c
	}
	return byID
}
