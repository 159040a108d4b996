// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// LanguageOptions captures the language selection flag.
type LanguageOptions struct {
	Language string
}

// AddLanguageArg wires the language flag on the provided command. Empty
// means the active (or auto-detected) language.
func AddLanguageArg(cmd *cobra.Command, o *LanguageOptions) {
	cmd.Flags().StringVarP(&o.Language, "language", "l", "",
		"Deck language. Defaults to the active language.")
}
