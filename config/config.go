// Package config loads the command-line tool's settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"xdao.co/streamid/streamid"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "STREAMID_CONFIG"

// Config holds CLI defaults. JSON files are accepted since JSON is valid YAML.
//
// Example:
//
//	default_type: model
//	output: url
//	mode: any
//	log_level: debug
type Config struct {
	// DefaultType is the stream type name used when --type is omitted.
	DefaultType string `yaml:"default_type,omitempty" json:"default_type,omitempty"`
	// Output is "string" (default) or "url".
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	// Mode is the parse mode used when --mode is omitted.
	Mode     string `yaml:"mode,omitempty" json:"mode,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

const (
	OutputString = "string"
	OutputURL    = "url"
)

func Default() Config {
	return Config{
		DefaultType: streamid.Tile.String(),
		Output:      OutputString,
		Mode:        streamid.ModeAny.String(),
		LogLevel:    "warn",
	}
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Load reads path, or the file named by $STREAMID_CONFIG when path is empty.
// With neither set it returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := streamid.ParseStreamType(c.DefaultType); err != nil {
		result = multierror.Append(result, fmt.Errorf("config: invalid default_type %q", c.DefaultType))
	}
	switch c.Output {
	case OutputString, OutputURL:
	default:
		result = multierror.Append(result, fmt.Errorf("config: invalid output %q", c.Output))
	}
	if _, ok := streamid.ParseMode(c.Mode); !ok {
		result = multierror.Append(result, fmt.Errorf("config: invalid mode %q", c.Mode))
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("config: invalid log_level %q", c.LogLevel))
	}
	return result.ErrorOrNil()
}

// StreamType returns DefaultType as a StreamType. Call Validate first.
func (c Config) StreamType() streamid.StreamType {
	t, _ := streamid.ParseStreamType(c.DefaultType)
	return t
}

// ParseMode returns Mode as a streamid.Mode. Call Validate first.
func (c Config) ParseMode() streamid.Mode {
	m, _ := streamid.ParseMode(c.Mode)
	return m
}

func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
