package main

import (
	"slices"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dorg/internal/organizer"
)

// renderSummary lays out the run totals followed by one row per skip kind.
func renderSummary(s organizer.Summary) string {
	printer := message.NewPrinter(language.English)
	title := cases.Title(language.English)
	count := func(n int) string { return printer.Sprintf("%d", n) }

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("dorg run")
	tw.AppendHeader(table.Row{"Outcome", "Files"})
	tw.AppendRows([]table.Row{
		{"Scanned", count(s.Scanned)},
		{title.String(organizer.OutcomeMoved.String()), count(s.Moved)},
		{title.String(organizer.OutcomeUnchanged.String()), count(s.Unchanged)},
		{title.String(organizer.OutcomeSkipped.String()), count(s.Skipped)},
	})

	kinds := make([]string, 0, len(s.ByKind))
	for kind := range s.ByKind {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	if len(kinds) > 0 {
		tw.AppendSeparator()
		for _, kind := range kinds {
			tw.AppendRow(table.Row{"  " + kind, count(s.ByKind[kind])})
		}
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Elapsed", s.Elapsed.Round(time.Millisecond).String()})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
