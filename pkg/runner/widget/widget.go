package widget

import (
	"context"
	"errors"

	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/printers"
	"github.com/vibeflip/vibeflip/pkg/store"
)

// Widget renders the read-only second-process surface: today's
// projection when revealed, a placeholder otherwise. It never writes to
// the shared namespace.
type Widget struct {
	// Watch keeps rendering on every change signal until ctx is done.
	Watch bool

	Bridge *bridge.Bridge
	KV     store.KV
}

func (n *Widget) Do(ctx context.Context) error {
	if n.Bridge == nil {
		return errors.New("can not render widget, no bridge")
	}

	n.render()
	if !n.Watch {
		return nil
	}
	if n.KV == nil {
		return errors.New("can not watch, no store")
	}

	events, err := n.KV.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			// Any change invalidates the cached view; re-read everything.
			n.render()
		}
	}
}

func (n *Widget) render() {
	pp := printers.PrettyPrint{}
	if p, ok := n.Bridge.ReadReveal(); ok {
		pp.Projection(p)
		return
	}
	pp.State(n.Bridge.RevealState())
}
