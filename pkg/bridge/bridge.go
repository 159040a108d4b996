// Package bridge projects the day's revealed card and the active
// language into the shared namespace for the widget process.
//
// The widget never writes: it reads the projection and re-reads when the
// store's watch channel signals a change. Writing a projection is what
// triggers that signal, so publish-then-observe needs no extra plumbing.
package bridge

import (
	"time"

	"github.com/vibeflip/vibeflip/pkg/card"
	"github.com/vibeflip/vibeflip/pkg/datekey"
	"github.com/vibeflip/vibeflip/pkg/history"
	"github.com/vibeflip/vibeflip/pkg/language"
	"github.com/vibeflip/vibeflip/pkg/store"
)

// Shared-namespace keys. They match the original widget payload so a
// legacy namespace migrates without translation.
const (
	QuoteKey       = "widgetQuote"
	ActionKey      = "widgetAction"
	QuoteDateKey   = "widgetQuoteDate"
	LanguageKey    = "selectedLanguage"
	InitializedKey = "hasInitializedLanguage"
)

// Projection is the denormalized snapshot of today's revealed card.
// Readers must treat it as absent when DateKey is not their own today.
type Projection struct {
	Text     string
	Action   string
	DateKey  string
	Language string
}

// State is today's reveal state as observed by the widget process.
type State int

const (
	// NotRevealed means no card has been revealed today.
	NotRevealed State = iota
	// RevealedWithData means the projection payload is present for today.
	RevealedWithData
	// RevealedNoData means history shows a reveal today but no projection
	// payload exists (the reveal predates the widget). Terminal for the
	// day; renders distinctly from NotRevealed.
	RevealedNoData
)

func (s State) String() string {
	switch s {
	case RevealedWithData:
		return "revealed"
	case RevealedNoData:
		return "revealed (no card data)"
	default:
		return "not revealed"
	}
}

// Bridge mirrors reveal and language state into the shared namespace.
type Bridge struct {
	KV      store.KV
	History *history.Store

	// Now and Detect are injectable for tests.
	Now    func() time.Time
	Detect func() string
}

// New returns a bridge over the shared namespace.
func New(kv store.KV, hist *history.Store) *Bridge {
	return &Bridge{KV: kv, History: hist}
}

func (b *Bridge) today() string {
	if b.Now != nil {
		return datekey.For(b.Now())
	}
	return datekey.Today()
}

func (b *Bridge) detect() string {
	if b.Detect != nil {
		return b.Detect()
	}
	return language.Detect()
}

// PublishReveal writes the projection for an interactively revealed
// card. Callers invoke it on the reveal event only, never on a silent
// cache-hit resolution. It reports whether the full payload landed.
func (b *Bridge) PublishReveal(c card.Card, dateKey, lang string) bool {
	if c.IsFallback() || dateKey == "" {
		return false
	}
	ok := b.KV.Put(QuoteKey, c.Text)
	if c.HasAction() {
		ok = b.KV.Put(ActionKey, c.Action) && ok
	} else {
		b.KV.Delete(ActionKey)
	}
	ok = b.KV.Put(LanguageKey, language.Normalize(lang)) && ok
	// The date lands last: a reader that sees today's date sees the
	// payload written before it.
	ok = b.KV.Put(QuoteDateKey, dateKey) && ok
	return ok
}

// ReadReveal returns today's projection. A snapshot dated any other day
// is stale and reads as absent.
func (b *Bridge) ReadReveal() (Projection, bool) {
	date, ok := b.KV.Get(QuoteDateKey)
	if !ok || !datekey.SameDay(date, b.today()) {
		return Projection{}, false
	}
	text, ok := b.KV.Get(QuoteKey)
	if !ok {
		return Projection{}, false
	}
	action, _ := b.KV.Get(ActionKey)
	lang, _ := b.KV.Get(LanguageKey)
	return Projection{Text: text, Action: action, DateKey: date, Language: lang}, true
}

// IsRevealedToday reports whether today's card has been revealed,
// from either the projection or the history blob. The history check
// covers reveals made by app versions that predate the projection.
func (b *Bridge) IsRevealedToday() bool {
	today := b.today()
	if date, ok := b.KV.Get(QuoteDateKey); ok && datekey.SameDay(date, today) {
		return true
	}
	if b.History != nil {
		if _, ok := b.History.Get(today); ok {
			return true
		}
	}
	return false
}

// RevealState classifies today for the widget surface.
func (b *Bridge) RevealState() State {
	if _, ok := b.ReadReveal(); ok {
		return RevealedWithData
	}
	if b.IsRevealedToday() {
		return RevealedNoData
	}
	return NotRevealed
}

// Language returns the active language from the shared namespace,
// detecting from the environment when nothing is set yet.
func (b *Bridge) Language() string {
	if lang, ok := b.KV.Get(LanguageKey); ok && language.IsSupported(lang) {
		return lang
	}
	return b.detect()
}

// SetLanguage mirrors a supported language into the shared namespace,
// which in turn invalidates the widget's cached view. Unsupported
// values are refused.
func (b *Bridge) SetLanguage(lang string) bool {
	if !language.IsSupported(lang) {
		return false
	}
	return b.KV.Put(LanguageKey, lang)
}

// SeedLanguage performs the one-time first-run language detection. On
// later calls it is a no-op; either way it returns the active language.
func (b *Bridge) SeedLanguage() string {
	if b.KV.PutIfAbsent(InitializedKey, "true") {
		detected := b.detect()
		// Respect a language that somehow landed before the flag did.
		b.KV.PutIfAbsent(LanguageKey, detected)
	}
	return b.Language()
}
