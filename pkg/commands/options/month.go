package options

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

// MonthOptions filters history output to one calendar month.
type MonthOptions struct {
	Month string
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func AddMonthArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		"Filter to one month, e.g. 2026-08.")
}

// Validate checks the month filter shape.
func (o *MonthOptions) Validate() error {
	if o.Month == "" {
		return nil
	}
	if !monthPattern.MatchString(o.Month) {
		return fmt.Errorf("invalid month %q, want YYYY-MM", o.Month)
	}
	return nil
}
