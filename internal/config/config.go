package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/agentfw/boardctl/internal/paths"
)

// Config holds the resolved settings for one invocation. Values come from,
// in order of precedence: BOARDCTL_* environment variables, an optional
// boardctl.yaml in the project directory, and built-in defaults.
type Config struct {
	// ProjectDir is the absolute path to the firmware project root.
	ProjectDir string
	// BoardsDir is the absolute path to the boards root directory.
	BoardsDir string
	// Python is the interpreter used for the generator and idf.py.
	Python string
	// IDFPath is the IDF_PATH environment value; may be empty until the
	// reconfigure fallback actually needs it.
	IDFPath string
}

// Load resolves configuration for the given project directory.
func Load(projectDir string) (*Config, error) {
	absProject, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory %s: %w", projectDir, err)
	}

	v := viper.New()
	v.SetConfigName("boardctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(absProject)
	v.SetEnvPrefix("BOARDCTL")
	v.AutomaticEnv()

	v.SetDefault("python", "python3")
	v.SetDefault("boards_dir", paths.BoardsDir(absProject))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read boardctl.yaml: %w", err)
		}
	}

	boardsDir := v.GetString("boards_dir")
	if !filepath.IsAbs(boardsDir) {
		boardsDir = filepath.Join(absProject, boardsDir)
	}

	return &Config{
		ProjectDir: absProject,
		BoardsDir:  boardsDir,
		Python:     v.GetString("python"),
		IDFPath:    os.Getenv("IDF_PATH"),
	}, nil
}
