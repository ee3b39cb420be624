// Package config loads the optional TOML defaults file for the convert
// command. Explicit flags always win over file values.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// File holds the defaults a user can persist instead of repeating flags.
type File struct {
	Alpha   bool `toml:"alpha"`
	Verbose bool `toml:"verbose"`
}

// Load parses the TOML file at path. Unknown keys are rejected so typos
// fail loudly instead of being ignored.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return &f, nil
}
