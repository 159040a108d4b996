package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vibeflip/vibeflip/pkg/commands/options"
	"github.com/vibeflip/vibeflip/pkg/runner/widget"
)

func addWidget(topLevel *cobra.Command) {
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Render the widget's read-only view.",
		Long: "Render what the home-screen widget sees: today's revealed card, or a\n" +
			"placeholder when nothing has been revealed yet. The widget surface never\n" +
			"writes to the shared store.",
		Example: `
vibeflip widget
vibeflip widget --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire()
			if err != nil {
				return err
			}
			ctx := context.Background()
			if wo.Watch {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()
			}
			w := widget.Widget{
				Watch:  wo.Watch,
				Bridge: svc.bridge,
				KV:     svc.kv,
			}
			return w.Do(ctx)
		},
	}

	options.AddWatchArg(cmd, wo)

	topLevel.AddCommand(cmd)
}
