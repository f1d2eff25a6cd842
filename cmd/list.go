package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentfw/boardctl/internal/boards"
	"github.com/agentfw/boardctl/internal/config"
	"github.com/agentfw/boardctl/internal/marker"
	"github.com/agentfw/boardctl/internal/paths"
)

type boardJSON struct {
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	ManagerName string `json:"bmgr_board_name,omitempty"`
	Description string `json:"description,omitempty"`
	Selected    bool   `json:"selected,omitempty"`
}

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available boards",
	Long: `List all board definitions under the boards directory.

Boards sourced from the ESP Board Manager registry are annotated with the
name the board manager knows them by; the currently selected board is
marked with *.

Examples:
  boardctl list
  boardctl list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(projectDir)
		if err != nil {
			return err
		}
		if listJSON {
			return printBoardsJSON(os.Stdout, cfg)
		}
		return printBoards(os.Stdout, cfg)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output JSON")
}

func originLabel(b boards.Board) string {
	if b.FromManager {
		return "ESP Board Manager"
	}
	return "Custom"
}

// printBoards renders the board table shared by `list` and
// `select-board --list`. It performs no writes and runs no subprocesses.
func printBoards(out io.Writer, cfg *config.Config) error {
	all, err := boards.List(cfg.BoardsDir)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No boards found.")
		return nil
	}

	selected, err := marker.Read(paths.BoardNamePath(cfg.ProjectDir))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Available boards:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tORIGIN\tDESCRIPTION")
	for _, b := range all {
		mark := " "
		if b.Name == selected {
			mark = "*"
		}
		origin := originLabel(b)
		if b.FromManager && b.ManagerName != b.Name {
			origin = fmt.Sprintf("%s (bmgr: %s)", origin, b.ManagerName)
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, b.Name, origin, b.Description)
	}
	return w.Flush()
}

func printBoardsJSON(out io.Writer, cfg *config.Config) error {
	all, err := boards.List(cfg.BoardsDir)
	if err != nil {
		return err
	}
	selected, err := marker.Read(paths.BoardNamePath(cfg.ProjectDir))
	if err != nil {
		return err
	}

	items := make([]boardJSON, 0, len(all))
	for _, b := range all {
		item := boardJSON{
			Name:        b.Name,
			Origin:      originLabel(b),
			Description: b.Description,
			Selected:    b.Name == selected,
		}
		if b.FromManager {
			item.ManagerName = b.ManagerName
		}
		items = append(items, item)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Boards []boardJSON `json:"boards"`
		Count  int         `json:"count"`
	}{Boards: items, Count: len(items)})
}
