package boards

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentfw/boardctl/internal/paths"
)

var (
	// ErrUnknownBoard indicates the requested name is not in the boards directory
	ErrUnknownBoard = errors.New("unknown board")
	// ErrInvalidBoardPath indicates the board path is missing or not a directory
	ErrInvalidBoardPath = errors.New("invalid board path")
	// ErrMissingBoardFiles indicates a custom board lacks required definition files
	ErrMissingBoardFiles = errors.New("missing required board files")
)

// List enumerates all boards under boardsDir, sorted by directory name.
// A missing or unreadable boards directory yields an empty list, matching
// the behavior of a project that has no boards yet.
func List(boardsDir string) ([]Board, error) {
	entries, err := os.ReadDir(boardsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read boards directory %s: %w", boardsDir, err)
	}

	var boards []Board
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(boardsDir, entry.Name())
		absDir, err := filepath.Abs(dir)
		if err != nil {
			absDir = dir
		}

		b := Board{
			Name:        entry.Name(),
			Path:        absDir,
			ManagerName: entry.Name(),
			Description: readDescription(absDir),
		}

		markerPath := filepath.Join(absDir, paths.UseFromManagerFile)
		if _, err := os.Stat(markerPath); err == nil {
			b.FromManager = true
			b.ManagerName = readManagerName(markerPath, entry.Name())
		}

		boards = append(boards, b)
	}

	sort.Slice(boards, func(i, j int) bool { return boards[i].Name < boards[j].Name })
	return boards, nil
}

// Resolve matches name against the enumerated boards, case-insensitively,
// and returns the matching entry. The returned error for an unknown name
// lists every valid choice.
func Resolve(boardsDir, name string) (Board, error) {
	boards, err := List(boardsDir)
	if err != nil {
		return Board{}, err
	}

	for _, b := range boards {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}

	names := make([]string, 0, len(boards))
	for _, b := range boards {
		names = append(names, b.Name)
	}
	return Board{}, fmt.Errorf(
		"%w: %q is not a valid board name.\n"+
			"Did you add the board configuration to `components/boards/<board_name>`?\n\n"+
			"Available boards: %s",
		ErrUnknownBoard, name, strings.Join(names, ", "))
}

// ValidatePath checks that boardPath exists and is a directory, returning
// its absolute form.
func ValidatePath(boardPath string) (string, error) {
	fi, err := os.Stat(boardPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: board path does not exist: %s", ErrInvalidBoardPath, boardPath)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidBoardPath, boardPath, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: board path is not a directory: %s", ErrInvalidBoardPath, boardPath)
	}
	return filepath.Abs(boardPath)
}

// FindYAML locates <base>.yaml or <base>.yml under dir, in that order.
func FindYAML(dir, base string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(dir, base+ext)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// CheckCustomFiles validates that a custom board directory carries both
// required definition files. Every missing file is named in the one error.
func CheckCustomFiles(boardPath string) error {
	var missing []string
	if _, ok := FindYAML(boardPath, paths.DevicesBase); !ok {
		missing = append(missing, paths.DevicesBase+".yaml")
	}
	if _, ok := FindYAML(boardPath, paths.PeripheralsBase); !ok {
		missing = append(missing, paths.PeripheralsBase+".yaml")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in board path %s: missing %s",
			ErrMissingBoardFiles, boardPath, strings.Join(missing, ", "))
	}
	return nil
}
