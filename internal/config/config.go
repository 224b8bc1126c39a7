// Package config loads tudu.toml settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// AppName is the directory name used for config and data files.
const AppName = "tudu"

// ConfigFile is the settings filename looked up in the user config dir
// and the current directory.
const ConfigFile = "tudu.toml"

// Duration wraps time.Duration so toml values like "3s" parse directly.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config holds user-tunable settings.
type Config struct {
	// Data is the path of the JSON store file.
	Data string `toml:"data"`
	// Celebration is how long the completion celebration stays up.
	Celebration Duration `toml:"celebration"`
}

// Load reads settings, lowest priority first: built-in defaults, the
// user config file, then a tudu.toml in the current directory.
func Load() (*Config, error) {
	return load(userConfigFile(), ConfigFile)
}

func load(files ...string) (*Config, error) {
	cfg := &Config{
		Data:        defaultDataFile(),
		Celebration: Duration{3 * time.Second},
	}
	for _, file := range files {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(file, cfg); err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return cfg, nil
}

// EnsureDataDir creates the directory holding the store file.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(filepath.Dir(c.Data), 0700)
}

func userConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ConfigFile)
}

func defaultDataFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tudu.json"
	}
	return filepath.Join(dir, AppName, "data.json")
}
