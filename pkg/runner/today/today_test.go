package today

import (
	"context"
	"testing"

	"github.com/vibeflip/vibeflip/pkg/assign"
	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/catalog"
	"github.com/vibeflip/vibeflip/pkg/datekey"
	"github.com/vibeflip/vibeflip/pkg/history"
	"github.com/vibeflip/vibeflip/pkg/language"
	"github.com/vibeflip/vibeflip/pkg/store"
)

func testToday(t *testing.T, cat *catalog.Catalog) (*Today, *bridge.Bridge) {
	t.Helper()
	mem := store.NewMemory()
	hist := history.Open(mem, nil)
	b := bridge.New(mem, hist)
	b.Detect = func() string { return language.English }
	return &Today{Engine: assign.New(cat, hist), Bridge: b}, b
}

func TestRevealPublishesProjection(t *testing.T) {
	n, b := testToday(t, catalog.Load())

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}

	p, ok := b.ReadReveal()
	if !ok {
		t.Fatal("reveal did not publish a projection")
	}
	if p.DateKey != datekey.Today() {
		t.Fatalf("projection dated %q, want today", p.DateKey)
	}
	if p.Text == "" {
		t.Fatal("projection has no text")
	}
}

func TestPeekDoesNotPublish(t *testing.T) {
	n, b := testToday(t, catalog.Load())
	n.Peek = true

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if _, ok := b.ReadReveal(); ok {
		t.Fatal("peek must not project to the widget")
	}
	if b.RevealState() != bridge.RevealedNoData {
		// Peek still assigns and persists; only the projection is skipped.
		t.Fatalf("state after peek: %v", b.RevealState())
	}
}

func TestFallbackIsNotPublished(t *testing.T) {
	n, b := testToday(t, catalog.Empty())

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if _, ok := b.ReadReveal(); ok {
		t.Fatal("sentinel fallback must not be projected")
	}
	if b.RevealState() != bridge.NotRevealed {
		t.Fatalf("state after fallback: %v", b.RevealState())
	}
}

func TestExplicitLanguageWins(t *testing.T) {
	n, b := testToday(t, catalog.Load())
	b.SetLanguage(language.Russian)
	n.Language = language.Spanish

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	p, ok := b.ReadReveal()
	if !ok {
		t.Fatal("no projection")
	}
	if p.Language != language.Spanish {
		t.Fatalf("projected language %q, want %q", p.Language, language.Spanish)
	}
}
