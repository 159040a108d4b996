package open

import (
	"context"
	"errors"

	"github.com/vibeflip/vibeflip/pkg/assign"
	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/deeplink"
	"github.com/vibeflip/vibeflip/pkg/runner/today"
)

// Open handles a deep link from the widget. The reveal route triggers
// today's interactive reveal; the home route just opens quietly.
type Open struct {
	URI string

	Engine *assign.Engine
	Bridge *bridge.Bridge
}

func (n *Open) Do(ctx context.Context) error {
	if n.Engine == nil || n.Bridge == nil {
		return errors.New("can not open, not wired to an engine")
	}

	route, err := deeplink.Parse(n.URI)
	if err != nil {
		return err
	}

	switch route {
	case deeplink.RouteReveal:
		t := today.Today{Engine: n.Engine, Bridge: n.Bridge}
		return t.Do(ctx)
	case deeplink.RouteHome:
		// Opening home has no engine-side effect.
		return nil
	}
	return nil
}
