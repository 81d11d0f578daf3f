package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteResultJSON writes a composition result as indented JSON.
func WriteResultJSON(result *Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, data, 0644)
}
