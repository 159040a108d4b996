package lang

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/language"
	"github.com/vibeflip/vibeflip/pkg/printers"
)

// Lang shows or sets the active language. Setting mirrors the value
// into the shared namespace, which invalidates the widget's view.
type Lang struct {
	// Set is the language to activate; empty just lists.
	Set string

	Bridge *bridge.Bridge
}

func (n *Lang) Do(ctx context.Context) error {
	if n.Bridge == nil {
		return errors.New("can not manage language, no bridge")
	}

	if n.Set != "" {
		if !n.Bridge.SetLanguage(n.Set) {
			return fmt.Errorf("unsupported language %q (supported: %s)",
				n.Set, strings.Join(language.Supported(), ", "))
		}
	}

	pp := printers.PrettyPrint{}
	pp.Languages(language.Supported(), n.Bridge.Language())
	return nil
}
