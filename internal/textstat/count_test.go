package textstat

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"datareports/internal/core"
	applog "datareports/internal/log"
)

type recordingLogger struct {
	errors int
	last   []any
}

func (l *recordingLogger) Error(msg string, args ...any) {
	l.errors++
	l.last = args
}

func TestCountOccurrences(t *testing.T) {
	cases := []struct {
		text, word string
		want       int
	}{
		{"Ahab, ahab and AHAB.", "Ahab", 3},
		{"Ahab's leg", "ahab", 1},
		{"aaaa", "aa", 2}, // non-overlapping
		{"nothing here", "whale", 0},
		{"anything", "", 0},
	}
	for _, tc := range cases {
		if got := CountOccurrences(tc.text, tc.word); got != tc.want {
			t.Fatalf("CountOccurrences(%q, %q) = %d, want %d", tc.text, tc.word, got, tc.want)
		}
	}
}

func TestCountFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moby_dick.txt")
	if err := os.WriteFile(path, []byte("Call me Ishmael.\nCaptain Ahab!\nAhab's whale.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	logger := &recordingLogger{}
	wc, err := CountFile(path, "Ahab", logger)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if wc.Count != 2 || wc.Word != "Ahab" {
		t.Fatalf("unexpected count %+v", wc)
	}
	if logger.errors != 0 {
		t.Fatalf("unexpected error events")
	}
}

func TestCountFileMissing(t *testing.T) {
	logger := &recordingLogger{}
	wc, err := CountFile(filepath.Join(t.TempDir(), "none.txt"), "Ahab", logger)
	if !errors.Is(err, core.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if wc.Count != 0 || logger.errors != 1 {
		t.Fatalf("expected zero count and one error event, got %+v / %d", wc, logger.errors)
	}
	if !slices.Contains(logger.last, any(applog.OpCount)) {
		t.Fatalf("expected the count operation in %v", logger.last)
	}
}
