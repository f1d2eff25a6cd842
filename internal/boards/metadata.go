package boards

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/agentfw/boardctl/internal/paths"
)

// Entry is one device or peripheral declared in a board definition file.
// Definition files belong to the ESP Board Manager; only the name and type
// are surfaced here, everything else is ignored.
type Entry struct {
	Name string
	Type string
}

// LoadDevices reads the board_devices definition of a custom board.
func LoadDevices(boardPath string) ([]Entry, error) {
	return loadEntries(boardPath, paths.DevicesBase)
}

// LoadPeripherals reads the board_peripherals definition of a custom board.
func LoadPeripherals(boardPath string) ([]Entry, error) {
	return loadEntries(boardPath, paths.PeripheralsBase)
}

func loadEntries(boardPath, base string) ([]Entry, error) {
	path, ok := FindYAML(boardPath, base)
	if !ok {
		return nil, fmt.Errorf("%w in board path %s: missing %s.yaml",
			ErrMissingBoardFiles, boardPath, base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return collectEntries(doc.Content[0]), nil
}

// collectEntries accepts both definition layouts: a sequence of entries with
// name/type keys, or a mapping from entry name to its settings.
func collectEntries(node *yaml.Node) []Entry {
	var entries []Entry
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.MappingNode {
				continue
			}
			entries = append(entries, Entry{
				Name: mappingValue(item, "name"),
				Type: mappingValue(item, "type"),
			})
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			e := Entry{Name: key.Value}
			if val.Kind == yaml.MappingNode {
				e.Type = mappingValue(val, "type")
			}
			entries = append(entries, e)
		}
	}
	return entries
}

func mappingValue(node *yaml.Node, key string) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].Value
		}
	}
	return ""
}

// readDescription pulls the frontmatter description out of a board's
// README.md. Any failure degrades to an empty description.
func readDescription(boardPath string) string {
	f, err := os.Open(filepath.Join(boardPath, "README.md"))
	if err != nil {
		return ""
	}
	defer f.Close()

	var matter struct {
		Description string `yaml:"description"`
	}
	if _, err := frontmatter.Parse(f, &matter); err != nil {
		return ""
	}
	return matter.Description
}
