package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vibeflip/vibeflip/pkg/runner/open"
)

func addOpen(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "open <uri>",
		Short: "Handle a vibeflip:// deep link.",
		Long: "Handle a deep link from the widget. vibeflip://reveal triggers today's\n" +
			"reveal; vibeflip://home opens without side effects.",
		Example: `
vibeflip open vibeflip://reveal
vibeflip open vibeflip://home
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire()
			if err != nil {
				return err
			}
			o := open.Open{
				URI:    args[0],
				Engine: svc.engine,
				Bridge: svc.bridge,
			}
			return o.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
