package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/card"
	"github.com/vibeflip/vibeflip/pkg/catalog"
	"github.com/vibeflip/vibeflip/pkg/history"
	"github.com/vibeflip/vibeflip/pkg/printers"
)

// History lists past daily assignments, newest first.
type History struct {
	// Month filters to one calendar month ("2026-08"). Empty lists all.
	Month   string
	ShowIDs bool

	History *history.Store
	Catalog *catalog.Catalog
	Bridge  *bridge.Bridge
}

func (n *History) Do(ctx context.Context) error {
	if n.History == nil {
		return errors.New("can not list history, no store")
	}

	all := n.History.All()
	if n.Month != "" {
		for day := range all {
			if !strings.HasPrefix(day, n.Month+"-") {
				delete(all, day)
			}
		}
	}

	// Resolve texts against the active language's deck; ids from older
	// decks simply render without text.
	var deck []card.Card
	if n.Catalog != nil {
		lang := ""
		if n.Bridge != nil {
			lang = n.Bridge.Language()
		}
		deck = n.Catalog.Deck(lang)
	}
	byID := make(map[string]card.Card, len(deck))
	for _, c := range deck {
		byID[c.ID] = c
	}

	pp := printers.PrettyPrint{ShowIDs: n.ShowIDs}
	fmt.Println("")
	pp.History(all, func(id string) (card.Card, bool) {
		c, ok := byID[id]
		return c, ok
	})
	fmt.Println("")
	return nil
}
