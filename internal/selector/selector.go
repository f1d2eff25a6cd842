// Package selector orchestrates a board selection: it validates the chosen
// board, records it in the marker file, and drives the external generator.
package selector

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentfw/boardctl/internal/boards"
	"github.com/agentfw/boardctl/internal/config"
	"github.com/agentfw/boardctl/internal/generator"
	"github.com/agentfw/boardctl/internal/marker"
	"github.com/agentfw/boardctl/internal/paths"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

// Selector runs the selection workflow for one project.
type Selector struct {
	cfg    *config.Config
	runner *generator.Runner
	out    io.Writer
}

// New builds a Selector from resolved configuration. Output goes to out,
// defaulting to os.Stdout.
func New(cfg *config.Config, out io.Writer) *Selector {
	if out == nil {
		out = os.Stdout
	}
	return &Selector{
		cfg: cfg,
		runner: &generator.Runner{
			Python:     cfg.Python,
			ProjectDir: cfg.ProjectDir,
			ScriptPath: paths.ManagerScriptPath(cfg.ProjectDir),
			IDFPath:    cfg.IDFPath,
			Out:        out,
		},
		out: out,
	}
}

// Select resolves name against the boards directory, records the selection,
// and runs the generator. Any failure aborts the workflow; the marker file
// is not rolled back.
//
// The marker is written twice on purpose: the generator purges its output
// directory, deleting the first write. The first write still matters, it
// lets downstream tooling observe the selection if generation fails.
func (s *Selector) Select(ctx context.Context, name string) error {
	board, err := boards.Resolve(s.cfg.BoardsDir, name)
	if err != nil {
		return err
	}

	boardPath, err := boards.ValidatePath(board.Path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(paths.GenCodesDir(s.cfg.ProjectDir), 0o755); err != nil {
		return fmt.Errorf("failed to create generated-codes directory: %w", err)
	}

	markerPath := paths.BoardNamePath(s.cfg.ProjectDir)
	if err := s.writeMarker(markerPath, board.Name); err != nil {
		return err
	}

	if err := s.runner.Ensure(ctx); err != nil {
		return err
	}

	if board.FromManager {
		err = s.runner.Run(ctx, board.ManagerName, "")
	} else {
		if err := boards.CheckCustomFiles(boardPath); err != nil {
			return err
		}
		err = s.runner.Run(ctx, board.Name, boardPath)
	}
	if err != nil {
		return err
	}

	if err := s.writeMarker(markerPath, board.Name); err != nil {
		return err
	}

	fmt.Fprintln(s.out, successStyle.Render(fmt.Sprintf("Successfully selected board: %s", board.Name)))
	return nil
}

func (s *Selector) writeMarker(markerPath, boardName string) error {
	if err := marker.Write(markerPath, boardName); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Written board name to %s\n", markerPath)
	return nil
}
