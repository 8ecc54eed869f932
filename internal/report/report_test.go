package report

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"datareports/internal/core"
)

var covidColumns = []Column{
	{Label: "Total Cases", Decimals: 0},
	{Label: "Total Cases per Million", Decimals: 2},
}

func TestRenderCategoryTotals(t *testing.T) {
	entries := []core.CategoryTotals{
		{Category: "Asia", Totals: []float64{30, 3.3000000000000003}, Rows: 2},
		{Category: "Europe", Totals: []float64{1234567.6, 0.125}, Rows: 1},
	}
	got := RenderCategoryTotals("COVID-19 Total Cases by Continent", covidColumns, entries, Plain)
	want := "COVID-19 Total Cases by Continent:\n" +
		"Asia:\n" +
		"  Total Cases: 30\n" +
		"  Total Cases per Million: 3.30\n" +
		"\n" +
		"Europe:\n" +
		"  Total Cases: 1234568\n" +
		"  Total Cases per Million: 0.12\n" +
		"\n"
	if got != want {
		t.Fatalf("unexpected report:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderCategoryTotals_Empty(t *testing.T) {
	got := RenderCategoryTotals("Title", covidColumns, nil, Plain)
	if got != "Title:\n" {
		t.Fatalf("unexpected empty report %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		style    NumberStyle
		want     string
	}{
		{1234567.891, 2, Plain, "1234567.89"},
		{1234567.891, 2, Grouped, "1,234,567.89"},
		{1234567.5, 0, Grouped, "1,234,568"},
		{999, 0, Grouped, "999"},
		{-1234.5, 2, Grouped, "-1,234.50"},
		{-0.4, 0, Grouped, "-0"},
		{0, 2, Grouped, "0.00"},
		{math.Inf(1), 0, Grouped, "+Inf"},
		{12, -1, Plain, "12"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.v, tc.decimals, tc.style); got != tc.want {
			t.Fatalf("FormatNumber(%v, %d, %s) = %q, want %q", tc.v, tc.decimals, tc.style, got, tc.want)
		}
	}
}

func TestRenderRanking(t *testing.T) {
	got := RenderRanking("Top 2 Countries by Population (2022)", []core.RankedEntry{
		{Name: "India", Value: 1417173173},
		{Name: "Chad", Value: 17723315},
	})
	want := "Top 2 Countries by Population (2022):\n" +
		"========================================\n" +
		"India: 1,417,173,173\n" +
		"Chad: 17,723,315\n"
	if got != want {
		t.Fatalf("unexpected ranking:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderSeasonRecords(t *testing.T) {
	got := RenderSeasonRecords("Manchester United", []core.SeasonRecord{{
		Season: "2012-13",
		Team:   "Manchester United",
		Stats:  map[string]string{"position": "1", "points": "89"},
	}})
	rule := "==================================================\n"
	want := "Manchester United Season Performance:\n" + rule +
		"Season: 2012-13\n" +
		"Position: 1\n" +
		"Played: N/A\n" +
		"Points: 89\n" +
		"Goal Difference: N/A\n" +
		"Won: N/A\n" +
		"Draw: N/A\n" +
		"Loss: N/A\n" +
		"Goals Scored: N/A\n" +
		"Goals Against: N/A\n" +
		rule + "\n"
	if got != want {
		t.Fatalf("unexpected season report:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderWordCount(t *testing.T) {
	if got := RenderWordCount(core.WordCount{Word: "Ahab", Count: 517}); got != "Occurrences of 'Ahab': 517\n" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestWriteFileCreatesParentAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "report.txt")
	if err := WriteFile(path, "first version that is longer\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFile(path, "second\n"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "second\n" {
		t.Fatalf("expected overwrite, got %q", b)
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	// parent path component is a regular file
	err := WriteFile(filepath.Join(blocker, "report.txt"), "x")
	if !errors.Is(err, core.ErrDestinationUnwritable) {
		t.Fatalf("expected ErrDestinationUnwritable, got %v", err)
	}
}
