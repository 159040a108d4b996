// Package printers renders cards and history for the terminal.
package printers

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/card"
)

type PrettyPrint struct {
	ShowIDs bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Card renders one motivation card with its optional challenge action.
func (pp *PrettyPrint) Card(c card.Card) {
	text := color.New(color.Bold)
	act := color.New(color.Faint, color.Italic)
	tag := categoryColor(c.Category)

	fmt.Println("")
	_, _ = text.Printf("  %s\n", c.Text)
	if c.HasAction() {
		_, _ = act.Printf("  → %s\n", c.Action)
	}
	if pp.ShowIDs {
		_, _ = tag.Printf("  [%s #%s]\n", c.Category, c.ID)
	} else {
		_, _ = tag.Printf("  [%s]\n", c.Category)
	}
	fmt.Println("")
}

// Projection renders the widget's view of today's reveal. The snapshot
// carries no category, so no tag is printed.
func (pp *PrettyPrint) Projection(p bridge.Projection) {
	text := color.New(color.Bold)
	act := color.New(color.Faint, color.Italic)
	f := color.New(color.Faint)

	fmt.Println("")
	_, _ = text.Printf("  %s\n", p.Text)
	if p.Action != "" {
		_, _ = act.Printf("  → %s\n", p.Action)
	}
	_, _ = f.Printf("  %s · %s\n\n", p.DateKey, p.Language)
}

// State renders the widget placeholder for an unrevealed or
// data-less day.
func (pp *PrettyPrint) State(s bridge.State) {
	f := color.New(color.Faint, color.Italic)
	switch s {
	case bridge.RevealedNoData:
		_, _ = f.Println("  today's card was revealed in the app ✨")
	default:
		_, _ = f.Println("  today's card is waiting for you")
	}
}

// History renders the assignment history as a table, newest first.
func (pp *PrettyPrint) History(assignments map[string]string, resolve func(id string) (card.Card, bool)) {
	if len(assignments) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	days := make([]string, 0, len(assignments))
	for day := range assignments {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	if pp.ShowIDs {
		table.AddRow("DAY", "ID", "CARD")
	} else {
		table.AddRow("DAY", "CARD")
	}
	for _, day := range days {
		id := assignments[day]
		text := ""
		if resolve != nil {
			if c, ok := resolve(id); ok {
				text = c.Text
			}
		}
		if pp.ShowIDs {
			table.AddRow(day, id, text)
		} else {
			table.AddRow(day, text)
		}
	}
	fmt.Println(table)
}

// Languages renders the supported languages, marking the active one.
func (pp *PrettyPrint) Languages(supported []string, active string) {
	on := color.New(color.Bold)
	off := color.New(color.Faint)
	for _, lang := range supported {
		if lang == active {
			_, _ = on.Printf("* %s\n", lang)
		} else {
			_, _ = off.Printf("  %s\n", lang)
		}
	}
}

func categoryColor(cat card.Category) *color.Color {
	switch cat {
	case card.Bold:
		return color.New(color.FgHiMagenta, color.Faint)
	default:
		return color.New(color.FgHiCyan, color.Faint)
	}
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}
