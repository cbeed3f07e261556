package universe

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a universe YAML file from disk
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("universe: open %q: %w", path, err)
	}
	defer f.Close()

	uf, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("universe: parse %q: %w", path, err)
	}
	return uf, nil
}

// LoadFromReader parses universe YAML. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*File, error) {
	var uf File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&uf); err != nil {
		return nil, fmt.Errorf("universe: decode yaml: %w", err)
	}
	return &uf, nil
}
