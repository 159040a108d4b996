package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vibeflip/vibeflip/pkg/language"
	"github.com/vibeflip/vibeflip/pkg/runner/lang"
)

func addLang(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lang [language]",
		Short: "Show or set the deck language.",
		Long: "Show the supported deck languages, or activate one. The active language\n" +
			"is mirrored to the shared store so the widget follows along.",
		Example: `
vibeflip lang
vibeflip lang Русский
`,
		ValidArgs: language.Supported(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire()
			if err != nil {
				return err
			}
			l := lang.Lang{Bridge: svc.bridge}
			if len(args) > 0 {
				l.Set = strings.TrimSpace(args[0])
			}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
