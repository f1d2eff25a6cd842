package paths

import "path/filepath"

// File and component names shared with the ESP Board Manager tooling.
const (
	BoardNameFile      = "agent_board_name.txt"
	UseFromManagerFile = ".use_from_esp_board_manager"
	DevicesBase        = "board_devices"
	PeripheralsBase    = "board_peripherals"
	SdkconfigDefaults  = "sdkconfig.defaults"
	ManagerComponent   = "espressif__esp_board_manager"
	ManagerScript      = "gen_bmgr_config_codes.py"
)

func BoardsDir(projectDir string) string {
	return filepath.Join(projectDir, "components", "boards")
}

func GenCodesDir(projectDir string) string {
	return filepath.Join(projectDir, "components", "gen_bmgr_codes")
}

func BoardNamePath(projectDir string) string {
	return filepath.Join(GenCodesDir(projectDir), BoardNameFile)
}

func ManagerScriptPath(projectDir string) string {
	return filepath.Join(projectDir, "managed_components", ManagerComponent, ManagerScript)
}

// IDFToolPath returns the idf.py entry point under the given IDF_PATH root.
func IDFToolPath(idfPath string) string {
	return filepath.Join(idfPath, "tools", "idf.py")
}
