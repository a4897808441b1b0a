package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFile = "settings.yaml"

// Settings represents the application configuration
type Settings struct {
	Autosave AutosaveSettings `yaml:"autosave"`
	UI       UISettings       `yaml:"ui"`
	Export   ExportSettings   `yaml:"export"`
}

// AutosaveSettings controls the autosave controller timings (milliseconds)
type AutosaveSettings struct {
	DebounceMs int `yaml:"debounce_ms"`
	SettleMs   int `yaml:"settle_ms"`
}

// UISettings controls UI preferences
type UISettings struct {
	DefaultTheme string `yaml:"default_theme"` // "light" or "dark"
	ShowSidebar  bool   `yaml:"show_sidebar"`
	LineHeightPx int    `yaml:"line_height_px"` // used by the canvas measurement host
}

// ExportSettings controls export output behavior
type ExportSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Autosave: AutosaveSettings{
			DebounceMs: 2000,
			SettleMs:   3000,
		},
		UI: UISettings{
			DefaultTheme: "dark",
			ShowSidebar:  true,
			LineHeightPx: 24,
		},
		Export: ExportSettings{
			DefaultFilename: "document",
			ExportPath:      "./",
		},
	}
}

// ReadSettings loads settings.yaml from the store directory, falling back
// to defaults when the file is missing.
func (s *Store) ReadSettings() (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// WriteSettings saves settings to settings.yaml in the store directory.
func (s *Store) WriteSettings(settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, settingsFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
