package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vibeflip/vibeflip/pkg/commands/options"
	"github.com/vibeflip/vibeflip/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	lo := &options.LanguageOptions{}
	do := &options.DisplayOptions{}
	wo := &options.WindowOptions{}
	peek := false

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Reveal today's card.",
		Long: "Reveal today's motivation card. The first call of the day assigns a card\n" +
			"and persists it; later calls return the same card. Revealing also updates\n" +
			"the home-screen widget.",
		Example: `
vibeflip today
vibeflip today --language Español
vibeflip today --peek
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire()
			if err != nil {
				return err
			}
			if wo.Window > 0 {
				svc.engine.Window = wo.Window
			}
			t := today.Today{
				Language: lo.Language,
				Peek:     peek,
				ShowIDs:  do.ShowIDs,
				Engine:   svc.engine,
				Bridge:   svc.bridge,
			}
			return t.Do(context.Background())
		},
	}

	options.AddLanguageArg(cmd, lo)
	options.AddShowIDsArg(cmd, do)
	options.AddWindowArg(cmd, wo)
	cmd.Flags().BoolVar(&peek, "peek", false,
		"Resolve without projecting to the widget.")

	topLevel.AddCommand(cmd)
}
