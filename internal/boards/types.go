package boards

// Board is one entry in the boards root directory. Entries are discovered
// fresh on every listing and never persisted.
type Board struct {
	// Name is the board's directory name and the name users select by.
	Name string
	// Path is the absolute path to the board directory.
	Path string
	// ManagerName is the name handed to the ESP Board Manager generator.
	// For registry-sourced boards it may differ from Name when the marker
	// file carries a bmgr_board_name override; otherwise it equals Name.
	ManagerName string
	// FromManager is true when the board definition lives in the central
	// board manager registry and this project only keeps a marker locally.
	FromManager bool
	// Description is the optional frontmatter description from the board's
	// README.md; empty when absent.
	Description string
}
