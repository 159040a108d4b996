package options

import (
	"github.com/spf13/cobra"
)

// WatchOptions
type WatchOptions struct {
	Watch bool
}

func AddWatchArg(cmd *cobra.Command, o *WatchOptions) {
	cmd.Flags().BoolVar(&o.Watch, "watch", false,
		"Keep rendering on every shared-store change.")
}
