package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadPreset reads the named simulation's option table from a TOML file and
// flattens it into the string map the sim factories consume. A missing table
// yields an empty map, not an error.
//
//	[life]
//	w = 512
//	h = 512
//
//	[nbody]
//	n = 4096
//	force = "lj"
func LoadPreset(path, sim string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}

	var raw map[string]map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}

	out := map[string]string{}
	for k, v := range raw[sim] {
		out[k] = fmt.Sprint(v)
	}
	return out, nil
}
