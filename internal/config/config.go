/*
File    : bhasha/internal/config/config.go
*/

// Package config decodes the optional bhasha.yaml file that tunes the
// knobs the spec otherwise leaves at their defaults: the call-depth
// ceiling (§4.3), the GC's initial threshold and growth factor (§4.6), and
// whether GC stress mode is forced on. Absence of the file is not an
// error — Default() applies.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors bhasha.yaml's shape. Zero values are replaced by Default
// so a partially-specified file only overrides the keys it sets.
type Config struct {
	MaxCallDepth  int     `yaml:"max_call_depth"`
	GCThreshold   int     `yaml:"gc_threshold"`
	GCGrowth      float64 `yaml:"gc_growth"`
	GCStress      bool    `yaml:"gc_stress"`
}

// Default returns the interpreter's built-in defaults (§4.3, §4.6).
func Default() Config {
	return Config{
		MaxCallDepth: 200,
		GCThreshold:  1 << 20,
		GCGrowth:     2.0,
	}
}

// Load reads and decodes path, merging over Default(). A missing file is
// not an error: Load returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, err
	}
	if file.MaxCallDepth != 0 {
		cfg.MaxCallDepth = file.MaxCallDepth
	}
	if file.GCThreshold != 0 {
		cfg.GCThreshold = file.GCThreshold
	}
	if file.GCGrowth != 0 {
		cfg.GCGrowth = file.GCGrowth
	}
	cfg.GCStress = file.GCStress
	return cfg, nil
}
