package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/vibeflip/vibeflip/pkg/card"
	"github.com/vibeflip/vibeflip/pkg/history"
	"github.com/vibeflip/vibeflip/pkg/language"
	"github.com/vibeflip/vibeflip/pkg/store"
)

var (
	day1 = time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	day2 = time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
)

func testBridge(now time.Time) (*Bridge, *store.Memory) {
	mem := store.NewMemory()
	b := New(mem, history.Open(mem, nil))
	b.Now = func() time.Time { return now }
	b.Detect = func() string { return language.English }
	return b, mem
}

func sample() card.Card {
	return card.Card{ID: "2", Text: "Do what you've been putting off.", Action: "Start right now, even for 5 minutes.", Category: card.Bold}
}

func TestPublishThenReadSameDay(t *testing.T) {
	b, _ := testBridge(day1)

	if !b.PublishReveal(sample(), "2026-08-30", language.English) {
		t.Fatal("publish did not land")
	}

	p, ok := b.ReadReveal()
	if !ok {
		t.Fatal("projection absent after publish")
	}
	if p.Text != sample().Text || p.Action != sample().Action {
		t.Fatalf("projection payload wrong: %#v", p)
	}
	if p.DateKey != "2026-08-30" || p.Language != language.English {
		t.Fatalf("projection metadata wrong: %#v", p)
	}
}

func TestProjectionStaleAfterRollover(t *testing.T) {
	b, mem := testBridge(day1)
	b.PublishReveal(sample(), "2026-08-30", language.English)

	// Same namespace, next calendar day.
	next := New(mem, nil)
	next.Now = func() time.Time { return day2 }
	if _, ok := next.ReadReveal(); ok {
		t.Fatal("yesterday's projection must read as absent")
	}
	if next.RevealState() != NotRevealed {
		t.Fatalf("state after rollover: %v", next.RevealState())
	}
}

func TestPublishClearsPreviousAction(t *testing.T) {
	b, _ := testBridge(day1)
	b.PublishReveal(sample(), "2026-08-30", language.English)

	noAction := card.Card{ID: "3", Text: "Smile at a stranger.", Category: card.Zen}
	b.PublishReveal(noAction, "2026-08-30", language.English)

	p, ok := b.ReadReveal()
	if !ok {
		t.Fatal("projection absent")
	}
	if p.Action != "" {
		t.Fatalf("stale action leaked: %q", p.Action)
	}
}

func TestPublishRefusesSentinel(t *testing.T) {
	b, mem := testBridge(day1)
	if b.PublishReveal(card.Fallback(), "2026-08-30", language.English) {
		t.Fatal("sentinel must not be projected")
	}
	if _, ok := mem.Get(QuoteKey); ok {
		t.Fatal("sentinel wrote a projection")
	}
}

func TestRevealStateNoData(t *testing.T) {
	mem := store.NewMemory()
	hist := history.Open(mem, nil)
	hist.Put("2026-08-30", "4") // revealed by an older app version

	b := New(mem, hist)
	b.Now = func() time.Time { return day1 }

	if !b.IsRevealedToday() {
		t.Fatal("history entry should count as revealed")
	}
	if got := b.RevealState(); got != RevealedNoData {
		t.Fatalf("state: got %v, want RevealedNoData", got)
	}
}

func TestRevealStateMachine(t *testing.T) {
	b, _ := testBridge(day1)

	if b.RevealState() != NotRevealed {
		t.Fatalf("initial state: %v", b.RevealState())
	}
	b.PublishReveal(sample(), "2026-08-30", language.English)
	if b.RevealState() != RevealedWithData {
		t.Fatalf("after publish: %v", b.RevealState())
	}
}

func TestSetLanguageMirrorsAndRefusesUnsupported(t *testing.T) {
	b, mem := testBridge(day1)

	if b.SetLanguage("Klingon") {
		t.Fatal("unsupported language accepted")
	}
	if !b.SetLanguage(language.Spanish) {
		t.Fatal("supported language refused")
	}
	if v, _ := mem.Get(LanguageKey); v != language.Spanish {
		t.Fatalf("mirror: got %q", v)
	}
	if b.Language() != language.Spanish {
		t.Fatalf("language: got %q", b.Language())
	}
}

func TestSeedLanguageRunsOnce(t *testing.T) {
	b, mem := testBridge(day1)
	b.Detect = func() string { return language.Russian }

	if got := b.SeedLanguage(); got != language.Russian {
		t.Fatalf("first seed: got %q", got)
	}

	// A later detector result must not overwrite the seeded value.
	b.Detect = func() string { return language.Spanish }
	if got := b.SeedLanguage(); got != language.Russian {
		t.Fatalf("second seed changed language: %q", got)
	}
	if v, _ := mem.Get(InitializedKey); v != "true" {
		t.Fatalf("seed flag: %q", v)
	}
}

func TestPublishSignalsWatcher(t *testing.T) {
	b, mem := testBridge(day1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := mem.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	b.PublishReveal(sample(), "2026-08-30", language.English)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == QuoteDateKey {
				// The date write lands last; by the time this event is
				// seen, the full payload is readable.
				if _, ok := b.ReadReveal(); !ok {
					t.Fatal("payload not readable after signal")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for publish signal")
		}
	}
}
