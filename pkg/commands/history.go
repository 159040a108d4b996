package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vibeflip/vibeflip/pkg/commands/options"
	"github.com/vibeflip/vibeflip/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past daily cards.",
		Example: `
vibeflip history
vibeflip history --month 2026-08 --show-id
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return mo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire()
			if err != nil {
				return err
			}
			h := history.History{
				Month:   mo.Month,
				ShowIDs: do.ShowIDs,
				History: svc.history,
				Catalog: svc.catalog,
				Bridge:  svc.bridge,
			}
			return h.Do(context.Background())
		},
	}

	options.AddShowIDsArg(cmd, do)
	options.AddMonthArg(cmd, mo)

	topLevel.AddCommand(cmd)
}
