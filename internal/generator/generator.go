// Package generator runs the ESP Board Manager code-generation script and,
// when the script is missing, the idf.py reconfigure fallback that installs
// the managed component.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/agentfw/boardctl/internal/paths"
)

// ErrScriptMissing indicates the generator script is absent even after the
// reconfigure fallback ran.
var ErrScriptMissing = errors.New("generator script not found")

// ExitError reports a subprocess that terminated with a non-zero status.
type ExitError struct {
	Tool string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("failed to run %s. Exit code: %d", e.Tool, e.Code)
}

// Runner invokes the generator script for a project. All subprocesses run
// with the project directory as working directory and block until exit.
type Runner struct {
	// Python is the interpreter used for the script and for idf.py.
	Python string
	// ProjectDir is the firmware project root.
	ProjectDir string
	// ScriptPath is the location of gen_bmgr_config_codes.py.
	ScriptPath string
	// IDFPath is the toolchain root used to locate idf.py for the
	// reconfigure fallback.
	IDFPath string
	// Out receives progress messages; defaults to os.Stdout.
	Out io.Writer
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Ensure confirms the generator script exists, running idf.py reconfigure
// once to install the board manager component when it does not.
func (r *Runner) Ensure(ctx context.Context) error {
	if _, err := os.Stat(r.ScriptPath); err == nil {
		return nil
	}

	fmt.Fprintln(r.out(), "ESP Board Manager not found. Running `idf.py reconfigure` to initialize...")
	if r.IDFPath == "" {
		return errors.New("IDF_PATH is not set; cannot run `idf.py reconfigure` to install the ESP Board Manager")
	}

	if err := r.run(ctx, "idf.py reconfigure", paths.IDFToolPath(r.IDFPath), "reconfigure"); err != nil {
		return fmt.Errorf("failed to initialize ESP Board Manager: %w", err)
	}

	if _, err := os.Stat(r.ScriptPath); err != nil {
		return fmt.Errorf("%w: %s. Please ensure the ESP Board Manager component is properly installed",
			ErrScriptMissing, r.ScriptPath)
	}
	return nil
}

// Run invokes the generator for boardName. A non-empty boardPath marks a
// custom board and is passed through as the -c argument.
func (r *Runner) Run(ctx context.Context, boardName, boardPath string) error {
	args := []string{r.ScriptPath, "-b", boardName}
	if boardPath != "" {
		args = append(args, "-c", boardPath)
		fmt.Fprintf(r.out(), "Running %s for custom board: %s\n", paths.ManagerScript, boardName)
	} else {
		fmt.Fprintf(r.out(), "Running %s for board: %s\n", paths.ManagerScript, boardName)
	}
	return r.run(ctx, paths.ManagerScript, args...)
}

func (r *Runner) run(ctx context.Context, tool string, args ...string) error {
	cmd := exec.CommandContext(ctx, r.Python, args...)
	cmd.Dir = r.ProjectDir
	cmd.Stdout = r.out()
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Tool: tool, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", tool, err)
	}
	return nil
}
