package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentfw/boardctl/internal/boards"
	"github.com/agentfw/boardctl/internal/config"
	"github.com/agentfw/boardctl/internal/paths"
)

type showResp struct {
	Name              string      `json:"name"`
	Path              string      `json:"path"`
	Origin            string      `json:"origin"`
	ManagerName       string      `json:"bmgr_board_name,omitempty"`
	Description       string      `json:"description,omitempty"`
	SdkconfigDefaults bool        `json:"sdkconfig_defaults"`
	Devices           []entryJSON `json:"devices,omitempty"`
	Peripherals       []entryJSON `json:"peripherals,omitempty"`
}

type entryJSON struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <board>",
	Short: "Show board details",
	Long: `Display details of one board: its origin, the definition files it
carries, and for custom boards the declared devices and peripherals.

Examples:
  boardctl show echoear_core_board_v1_2
  boardctl show my_custom_board --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}

	board, err := boards.Resolve(cfg.BoardsDir, args[0])
	if err != nil {
		return err
	}

	resp := showResp{
		Name:        board.Name,
		Path:        board.Path,
		Origin:      originLabel(board),
		Description: board.Description,
	}
	if board.FromManager {
		resp.ManagerName = board.ManagerName
	}
	if _, err := os.Stat(filepath.Join(board.Path, paths.SdkconfigDefaults)); err == nil {
		resp.SdkconfigDefaults = true
	}

	// Definition files only exist for custom boards; parse failures are
	// reported inline but do not fail the command.
	var devErr, perErr error
	if !board.FromManager {
		var devices, peripherals []boards.Entry
		devices, devErr = boards.LoadDevices(board.Path)
		peripherals, perErr = boards.LoadPeripherals(board.Path)
		for _, d := range devices {
			resp.Devices = append(resp.Devices, entryJSON{Name: d.Name, Type: d.Type})
		}
		for _, p := range peripherals {
			resp.Peripherals = append(resp.Peripherals, entryJSON{Name: p.Name, Type: p.Type})
		}
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Printf("# %s\n\n", resp.Name)
	fmt.Printf("Origin:   %s\n", resp.Origin)
	if resp.ManagerName != "" && resp.ManagerName != resp.Name {
		fmt.Printf("Manager:  %s\n", resp.ManagerName)
	}
	fmt.Printf("Path:     %s\n", resp.Path)
	if resp.Description != "" {
		fmt.Printf("About:    %s\n", resp.Description)
	}
	fmt.Printf("Defaults: sdkconfig.defaults %s\n", presentLabel(resp.SdkconfigDefaults))

	if board.FromManager {
		return nil
	}

	fmt.Printf("\n## Devices (%d)\n\n", len(resp.Devices))
	if devErr != nil {
		fmt.Printf("  (unreadable: %v)\n", devErr)
	}
	for _, d := range resp.Devices {
		printEntry(d)
	}

	fmt.Printf("\n## Peripherals (%d)\n\n", len(resp.Peripherals))
	if perErr != nil {
		fmt.Printf("  (unreadable: %v)\n", perErr)
	}
	for _, p := range resp.Peripherals {
		printEntry(p)
	}
	return nil
}

func printEntry(e entryJSON) {
	if e.Type != "" {
		fmt.Printf("- %s (%s)\n", e.Name, e.Type)
		return
	}
	fmt.Printf("- %s\n", e.Name)
}

func presentLabel(present bool) string {
	if present {
		return "present"
	}
	return "absent"
}
