package boards

import (
	"bufio"
	"os"
	"strings"
)

const managerNameKey = "bmgr_board_name"

// ManagerBoardName scans marker-file content for the first line of the form
// `bmgr_board_name: <token>` and returns the first whitespace-delimited token
// of the value. Lines without a colon, with a different key, or with an empty
// value are skipped.
func ManagerBoardName(content string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		if strings.TrimSpace(line[:idx]) != managerNameKey {
			continue
		}
		fields := strings.Fields(line[idx+1:])
		if len(fields) == 0 {
			continue
		}
		return fields[0], true
	}
	return "", false
}

// readManagerName resolves the manager board name from a marker file,
// degrading to fallback when the file is unreadable or carries no override.
func readManagerName(markerPath, fallback string) string {
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return fallback
	}
	if name, ok := ManagerBoardName(string(data)); ok {
		return name
	}
	return fallback
}
