package report

import (
	"fmt"
	"strings"

	"datareports/internal/core"
)

const (
	rankingRule = 40
	seasonRule  = 50
)

// RenderCategoryTotals renders a title line followed by one block per
// category, in the order given:
//
//	<Category>:
//	  <Label>: <sum>
//	  ...
//	<blank line>
func RenderCategoryTotals(title string, columns []Column, entries []core.CategoryTotals, style NumberStyle) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "%s:\n", title)
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "%s:\n", e.Category)
		for i, col := range columns {
			fmt.Fprintf(&b, "  %s: %s\n", col.Label, FormatNumber(e.Total(i), col.Decimals, style))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRanking renders a title, a rule, and one "<name>: <value>" line
// per entry.
func RenderRanking(title string, entries []core.RankedEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)
	b.WriteString(strings.Repeat("=", rankingRule) + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Name, FormatCount(e.Value))
	}
	return b.String()
}

// RenderSeasonRecords renders every season block for team.
func RenderSeasonRecords(team string, records []core.SeasonRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Season Performance:\n", team)
	b.WriteString(strings.Repeat("=", seasonRule) + "\n")
	for _, r := range records {
		fmt.Fprintf(&b, "Season: %s\n", r.Season)
		for _, f := range core.SeasonStatFields {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, r.Stat(f.Key))
		}
		b.WriteString(strings.Repeat("=", seasonRule) + "\n\n")
	}
	return b.String()
}

// RenderWordCount renders the single-line occurrence report.
func RenderWordCount(wc core.WordCount) string {
	return fmt.Sprintf("Occurrences of '%s': %d\n", wc.Word, wc.Count)
}
