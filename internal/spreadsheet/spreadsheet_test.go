package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"datareports/internal/core"
)

type recordingLogger struct {
	warnings []string
	errors   []string
}

func (l *recordingLogger) Warn(msg string, args ...any) { l.warnings = append(l.warnings, fmt.Sprint(msg, args)) }
func (l *recordingLogger) Error(msg string, args ...any) { l.errors = append(l.errors, fmt.Sprint(msg, args)) }

// writePopulationWorkbook lays data out like the World Bank POP sheet:
// four header rows, country name in C and population in E.
func writePopulationWorkbook(t *testing.T, rows map[int][2]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Population"))
	require.NoError(t, f.SetCellValue(sheet, "C4", "Economy"))
	require.NoError(t, f.SetCellValue(sheet, "E4", "Population"))
	for r, v := range rows {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("C%d", r), v[0]))
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("E%d", r), v[1]))
	}

	path := filepath.Join(t.TempDir(), "population_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var defaultOpts = RankOptions{MinRow: 5, MaxRow: 30, NameColumn: "C", ValueColumn: "E", TopN: 25}

func TestTopEntriesFile(t *testing.T) {
	path := writePopulationWorkbook(t, map[int][2]any{
		5:  {"Chad", 17723315},
		6:  {"India", 1417173173},
		7:  {"Monaco", "36,297"},
		8:  {"Broken", "lots"},
		9:  {"", 5},
		10: {"Tie A", 100},
		11: {"Tie B", 100},
		31: {"Outside Range", 9999999999},
	})

	logger := &recordingLogger{}
	entries, err := TopEntriesFile(path, defaultOpts, logger)
	require.NoError(t, err)

	assert.Equal(t, []core.RankedEntry{
		{Name: "India", Value: 1417173173},
		{Name: "Chad", Value: 17723315},
		{Name: "Monaco", Value: 36297},
		{Name: "Tie A", Value: 100},
		{Name: "Tie B", Value: 100},
	}, entries)
	assert.Len(t, logger.warnings, 1, "one warning for the non-numeric value")
	assert.Empty(t, logger.errors)
}

func TestTopEntriesFile_LimitsToTopN(t *testing.T) {
	rows := map[int][2]any{}
	for i := 0; i < 10; i++ {
		rows[5+i] = [2]any{fmt.Sprintf("Country %d", i), 1000 + i}
	}
	path := writePopulationWorkbook(t, rows)

	opts := defaultOpts
	opts.TopN = 3
	entries, err := TopEntriesFile(path, opts, &recordingLogger{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Country 9", entries[0].Name)
	assert.Equal(t, int64(1007), entries[2].Value)
}

func TestTopEntriesFile_MissingFile(t *testing.T) {
	logger := &recordingLogger{}
	entries, err := TopEntriesFile(filepath.Join(t.TempDir(), "missing.xlsx"), defaultOpts, logger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrSourceUnavailable))
	assert.Empty(t, entries)
	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "operation rank")
}

func TestTopEntriesFile_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	logger := &recordingLogger{}
	entries, err := TopEntriesFile(path, defaultOpts, logger)
	require.Error(t, err)
	assert.Empty(t, entries)
	assert.Len(t, logger.errors, 1)
}

func TestRank(t *testing.T) {
	rows := [][]string{
		{"", "", "B", "", "2"},
		{"", "", "A", "", "3"},
		{"", "", "Zero", "", "0"},
		{"", "", "Short"},
		{"", "", "Float", "", "2.5"},
	}
	logger := &recordingLogger{}
	got := Rank(rows, 2, 4, 10, logger)
	assert.Equal(t, []core.RankedEntry{{Name: "A", Value: 3}, {Name: "B", Value: 2}}, got)
	assert.Len(t, logger.warnings, 1)
}

func TestWorkbookRowsRange(t *testing.T) {
	path := writePopulationWorkbook(t, map[int][2]any{5: {"X", 1}, 6: {"Y", 2}})
	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, "Sheet1", w.ActiveSheet())
	assert.Equal(t, []string{"Sheet1"}, w.Sheets())

	rows, err := w.Rows(w.ActiveSheet(), 5, 30)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "X", rows[0][2])

	rows, err = w.Rows(w.ActiveSheet(), 40, 50)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestColumnIndex(t *testing.T) {
	idx, err := ColumnIndex("c")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = ColumnIndex("AA")
	require.NoError(t, err)
	assert.Equal(t, 26, idx)

	_, err = ColumnIndex("1")
	assert.Error(t, err)
}

func TestCleanWorkbook(t *testing.T) {
	src := writePopulationWorkbook(t, map[int][2]any{5: {"India", 1417173173}})
	dst := filepath.Join(t.TempDir(), "clean", "world_population.xlsx")

	require.NoError(t, CleanWorkbook(src, dst))

	entries, err := TopEntriesFile(dst, defaultOpts, &recordingLogger{})
	require.NoError(t, err)
	assert.Equal(t, []core.RankedEntry{{Name: "India", Value: 1417173173}}, entries)

	assert.Error(t, CleanWorkbook(filepath.Join(t.TempDir(), "none.xlsx"), dst))
}
