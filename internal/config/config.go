// Package config loads the emulator's on-disk YAML configuration, falling
// back to documented defaults for anything a file omits or when no file is
// supplied at all.
package config

import (
	"os"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// Video holds display-rendering preferences.
type Video struct {
	Backend string `yaml:"backend"` // "ebiten" or "headless"
	Filter  string `yaml:"filter"`  // "nearest" or "linear"
}

// Window holds the host window's geometry.
type Window struct {
	Scale int `yaml:"scale"`
}

// Input holds key-binding preferences for player one.
type Input struct {
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Start  string `yaml:"start"`
	Select string `yaml:"select"`
}

// Debug holds flags for the interactive debugger.
type Debug struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the full application configuration tree.
type Config struct {
	Video  Video  `yaml:"video"`
	Window Window `yaml:"window"`
	Input  Input  `yaml:"input"`
	Debug  Debug  `yaml:"debug"`
}

// Default returns the configuration used when no file is supplied or a
// section is missing from one that is.
func Default() Config {
	return Config{
		Video:  Video{Backend: "ebiten", Filter: "nearest"},
		Window: Window{Scale: 2},
		Input: Input{
			Up: "ArrowUp", Down: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight",
			A: "Z", B: "X", Start: "Enter", Select: "ShiftRight",
		},
		Debug: Debug{Enabled: false},
	}
}

// Load reads and merges a YAML config file over Default(). A missing file
// is not an error: Load logs that it is using defaults and returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		glog.Infof("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
