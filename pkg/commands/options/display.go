package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions
type DisplayOptions struct {
	ShowIDs bool
}

func AddShowIDsArg(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVarP(&o.ShowIDs, "show-id", "k", false,
		"Show the card id alongside the card.")
}
