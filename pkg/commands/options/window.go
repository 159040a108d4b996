package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions captures the recency window override.
type WindowOptions struct {
	Window int
}

func AddWindowArg(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVarP(&o.Window, "window", "w", 0,
		"Recency exclusion window in days. 0 uses the configured value.")
}
