package report

import (
	"fmt"
	"os"
	"path/filepath"

	"datareports/internal/core"
)

// WriteFile writes content to path, replacing any existing file and
// creating the parent directory. Failures wrap core.ErrDestinationUnwritable.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create directory %s: %w", core.ErrDestinationUnwritable, dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrDestinationUnwritable, err)
	}
	return nil
}
