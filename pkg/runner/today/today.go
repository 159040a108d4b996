package today

import (
	"context"
	"errors"

	"github.com/vibeflip/vibeflip/pkg/assign"
	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/datekey"
	"github.com/vibeflip/vibeflip/pkg/printers"
)

// Today resolves and reveals today's card. This is the interactive
// reveal path: unless Peek is set, the result is projected into the
// shared namespace for the widget.
type Today struct {
	Language string
	Peek     bool
	ShowIDs  bool

	Engine *assign.Engine
	Bridge *bridge.Bridge
}

func (n *Today) Do(ctx context.Context) error {
	if n.Engine == nil || n.Bridge == nil {
		return errors.New("can not reveal, not wired to an engine")
	}

	lang := n.Language
	if lang == "" {
		lang = n.Bridge.SeedLanguage()
	}

	c := n.Engine.TodayCard(lang)

	pp := printers.PrettyPrint{ShowIDs: n.ShowIDs}
	pp.Card(c)

	if !n.Peek && !c.IsFallback() {
		n.Bridge.PublishReveal(c, datekey.Today(), lang)
	}
	return nil
}
