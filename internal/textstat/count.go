// Package textstat counts words in plain text files.
package textstat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"datareports/internal/core"
	applog "datareports/internal/log"
)

// Logger receives the events emitted while counting.
type Logger interface {
	Error(msg string, args ...any)
}

// CountOccurrences returns how many times word appears in text, ignoring
// case. Matches are non-overlapping substrings, so "Ahab" also counts the
// "Ahab" in "Ahab's".
func CountOccurrences(text, word string) int {
	if word == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(word))
}

// Count reads all of r and counts word in it.
func Count(r io.Reader, word string) (int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return CountOccurrences(string(b), word), nil
}

// CountFile counts word in the file at path. Read failures are logged and
// yield 0 with the error.
func CountFile(path, word string, logger Logger) (core.WordCount, error) {
	wc := core.WordCount{Word: word}
	f, err := os.Open(path)
	if err != nil {
		logger.Error("Text file not found",
			applog.FieldInput, path, applog.FieldOperation, applog.OpCount, applog.FieldError, err)
		return wc, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	n, err := Count(f, word)
	if err != nil {
		logger.Error("Error reading text file",
			applog.FieldInput, path, applog.FieldOperation, applog.OpCount, applog.FieldError, err)
		return wc, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, path, err)
	}
	wc.Count = n
	return wc, nil
}
