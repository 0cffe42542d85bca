package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a form definition document from disk and normalizes it. YAML and
// JSON are both accepted; JSON is a YAML subset as far as the decoder cares.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	def, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return def, nil
}

// LoadBytes decodes a (possibly partial) definition document and merges it
// over the defaults.
func LoadBytes(data []byte) (*Definition, error) {
	var loaded Definition
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("config: decode definition: %w", err)
	}
	return Normalize(loaded)
}
