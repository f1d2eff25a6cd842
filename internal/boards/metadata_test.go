package boards

import (
	"errors"
	"testing"
)

func TestLoadDevices_SequenceLayout(t *testing.T) {
	boardDir := writeBoard(t, t.TempDir(), "b", map[string]string{
		"board_devices.yaml": `- name: audio_codec
  type: audio_codec
  config:
    i2c_port: 0
- name: lcd_panel
  type: display
`,
	})

	devices, err := LoadDevices(boardDir)
	if err != nil {
		t.Fatalf("LoadDevices failed: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("Expected 2 devices, got %d", len(devices))
	}
	if devices[0].Name != "audio_codec" || devices[0].Type != "audio_codec" {
		t.Errorf("devices[0] = %+v", devices[0])
	}
	if devices[1].Name != "lcd_panel" || devices[1].Type != "display" {
		t.Errorf("devices[1] = %+v", devices[1])
	}
}

func TestLoadPeripherals_MappingLayout(t *testing.T) {
	boardDir := writeBoard(t, t.TempDir(), "b", map[string]string{
		"board_peripherals.yml": `i2c_bus:
  type: i2c
  sda: 17
  scl: 18
spi_bus:
  type: spi
`,
	})

	peripherals, err := LoadPeripherals(boardDir)
	if err != nil {
		t.Fatalf("LoadPeripherals failed: %v", err)
	}
	if len(peripherals) != 2 {
		t.Fatalf("Expected 2 peripherals, got %d", len(peripherals))
	}
	if peripherals[0].Name != "i2c_bus" || peripherals[0].Type != "i2c" {
		t.Errorf("peripherals[0] = %+v", peripherals[0])
	}
	if peripherals[1].Name != "spi_bus" || peripherals[1].Type != "spi" {
		t.Errorf("peripherals[1] = %+v", peripherals[1])
	}
}

func TestLoadDevices_Missing(t *testing.T) {
	boardDir := writeBoard(t, t.TempDir(), "b", nil)

	_, err := LoadDevices(boardDir)
	if !errors.Is(err, ErrMissingBoardFiles) {
		t.Fatalf("Expected ErrMissingBoardFiles, got %v", err)
	}
}

func TestLoadDevices_Empty(t *testing.T) {
	boardDir := writeBoard(t, t.TempDir(), "b", map[string]string{"board_devices.yaml": ""})

	devices, err := LoadDevices(boardDir)
	if err != nil {
		t.Fatalf("LoadDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Fatalf("Expected no devices, got %d", len(devices))
	}
}

func TestReadDescription(t *testing.T) {
	tests := []struct {
		name   string
		readme string
		want   string
	}{
		{
			name:   "frontmatter description",
			readme: "---\ndescription: EchoEar core board rev 1.2\n---\n\n# Board\n",
			want:   "EchoEar core board rev 1.2",
		},
		{
			name:   "no frontmatter",
			readme: "# Board\n\nPlain readme.\n",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boardDir := writeBoard(t, t.TempDir(), "b", map[string]string{"README.md": tt.readme})
			if got := readDescription(boardDir); got != tt.want {
				t.Errorf("readDescription = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadDescription_NoReadme(t *testing.T) {
	boardDir := writeBoard(t, t.TempDir(), "b", nil)
	if got := readDescription(boardDir); got != "" {
		t.Errorf("readDescription = %q, want empty", got)
	}
}
