package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentfw/boardctl/internal/config"
	"github.com/agentfw/boardctl/internal/selector"
)

var (
	selectBoard string
	selectList  bool
)

var selectBoardCmd = &cobra.Command{
	Use:   "select-board",
	Short: "Select a board by name and generate board manager configuration",
	Long: `Select a board by name and generate its ESP Board Manager configuration code.

The selected name is recorded in components/gen_bmgr_codes/agent_board_name.txt
and gen_bmgr_config_codes.py is run against the board definition.

Examples:
  boardctl select-board --board echoear_core_board_v1_2
  boardctl select-board --list`,
	RunE: runSelectBoard,
}

func init() {
	rootCmd.AddCommand(selectBoardCmd)
	selectBoardCmd.Flags().StringVarP(&selectBoard, "board", "b", "", "name of the board (e.g., echoear_core_board_v1_2)")
	selectBoardCmd.Flags().BoolVarP(&selectList, "list", "l", false, "list all available boards")
}

func runSelectBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}

	if selectList {
		return printBoards(os.Stdout, cfg)
	}

	if selectBoard == "" {
		return errors.New("board name is required. Use: boardctl select-board --board <board_name> or boardctl select-board --list")
	}

	return selector.New(cfg, os.Stdout).Select(cmd.Context(), selectBoard)
}
