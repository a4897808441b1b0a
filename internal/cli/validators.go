package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opensphere/editorial/pkg/export"
)

// ValidateExportFormat checks that the given ID names a known export
// format.
func ValidateExportFormat(id string) error {
	if _, ok := export.FormatByID(strings.ToLower(id)); ok {
		return nil
	}
	ids := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		ids[i] = f.ID
	}
	return fmt.Errorf("invalid export format: %s (must be: %s)", id, strings.Join(ids, ", "))
}

// ValidateOutputFormat checks a structured-output format flag.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateOutputPath checks that a file can be written at path: the parent
// directory must exist and path must not name a directory.
func ValidateOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", path)
	}
	parent := filepath.Dir(abs)
	if _, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", parent)
		}
		return fmt.Errorf("error accessing output directory: %w", err)
	}
	return nil
}
