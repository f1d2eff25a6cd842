package boards

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerBoardName(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "token with trailing lines",
			content: "bmgr_board_name: foo_v2\nother: stuff",
			want:    "foo_v2",
			wantOK:  true,
		},
		{
			name:    "no matching key",
			content: "other: stuff\ncomment line\n",
			wantOK:  false,
		},
		{
			name:    "empty file",
			content: "",
			wantOK:  false,
		},
		{
			name:    "value truncated at whitespace",
			content: "bmgr_board_name: foo_v2 trailing junk\n",
			want:    "foo_v2",
			wantOK:  true,
		},
		{
			name:    "no whitespace after colon",
			content: "bmgr_board_name:foo_v2\n",
			want:    "foo_v2",
			wantOK:  true,
		},
		{
			name:    "key with surrounding whitespace",
			content: "  bmgr_board_name : foo_v2\n",
			want:    "foo_v2",
			wantOK:  true,
		},
		{
			name:    "empty value skipped, later line wins",
			content: "bmgr_board_name:\nbmgr_board_name: bar_v1\n",
			want:    "bar_v1",
			wantOK:  true,
		},
		{
			name:    "line without colon ignored",
			content: "bmgr_board_name foo\nbmgr_board_name: baz\n",
			want:    "baz",
			wantOK:  true,
		},
		{
			name:    "first occurrence wins",
			content: "bmgr_board_name: first\nbmgr_board_name: second\n",
			want:    "first",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ManagerBoardName(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("ManagerBoardName ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ManagerBoardName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadManagerName_Fallback(t *testing.T) {
	dir := t.TempDir()

	t.Run("unreadable file degrades to fallback", func(t *testing.T) {
		got := readManagerName(filepath.Join(dir, "missing"), "my_board")
		if got != "my_board" {
			t.Errorf("readManagerName = %q, want fallback", got)
		}
	})

	t.Run("file without token degrades to fallback", func(t *testing.T) {
		path := filepath.Join(dir, "marker")
		if err := os.WriteFile(path, []byte("just a note\n"), 0o644); err != nil {
			t.Fatalf("failed to write marker: %v", err)
		}
		got := readManagerName(path, "my_board")
		if got != "my_board" {
			t.Errorf("readManagerName = %q, want fallback", got)
		}
	})

	t.Run("token overrides fallback", func(t *testing.T) {
		path := filepath.Join(dir, "marker2")
		if err := os.WriteFile(path, []byte("bmgr_board_name: real_name\n"), 0o644); err != nil {
			t.Fatalf("failed to write marker: %v", err)
		}
		got := readManagerName(path, "my_board")
		if got != "real_name" {
			t.Errorf("readManagerName = %q, want %q", got, "real_name")
		}
	})
}
