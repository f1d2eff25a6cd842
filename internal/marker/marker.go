// Package marker reads and writes the agent_board_name.txt file that records
// the selected board for the rest of the build tooling.
package marker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Write records boardName (plus trailing newline) at path. The parent
// directory is recreated if needed: the generator script is known to purge
// its output directory, taking an earlier marker with it.
func Write(path, boardName string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write atomically via temp file in the same directory (for atomic rename)
	f, err := os.CreateTemp(dir, ".agent_board_name-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write board name file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.WriteString(boardName + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write board name file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync board name file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close board name file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write board name file: %w", err)
	}
	return nil
}

// Read returns the recorded board name, or "" when no selection has been
// made yet.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read board name file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
