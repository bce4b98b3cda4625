package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON overlays c with the keys present in the JSON file at path.
// Keys missing from the file keep their current value.
func (c *Config) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
