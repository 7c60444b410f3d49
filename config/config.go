// Package config loads lvroute settings from YAML.
//
// Parse starts from Default and overlays the document, so a file only needs
// the keys it changes. Unknown keys are rejected. The result is validated
// with struct tags before it is returned.
//
// Example:
//
//	map_file: maps/campus.dot
//	nearest_limit: 10
//	search_timeout: 2s
//	server:
//	  addr: ":8080"
//	  mode: release
//	log:
//	  level: info
//	  format: json
//	watch:
//	  enabled: true
//	  debounce: 250ms
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full lvroute configuration.
type Config struct {
	// MapFile is the edge-list file to load. The CLI may override it.
	MapFile string `yaml:"map_file"`

	// InitialCapacity is the bucket count of a freshly built graph index.
	InitialCapacity int `yaml:"initial_capacity" validate:"min=1"`

	// StrictEdges rejects edges whose endpoints were not added first.
	StrictEdges bool `yaml:"strict_edges"`

	NearestLimit  int           `yaml:"nearest_limit" validate:"min=1,max=1000"`
	SearchTimeout time.Duration `yaml:"search_timeout" validate:"gte=0"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	Mode            string        `yaml:"mode" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// WatchConfig controls live reload of MapFile.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		InitialCapacity: 64,
		NearestLimit:    10,
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse overlays the YAML document in data on Default and validates it.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
