package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gbseg/gridgraph"
	"github.com/katalvlaran/gbseg/segment"
)

// ErrInvalidConfig indicates a configuration value outside its range.
var ErrInvalidConfig = errors.New("gbseg: invalid config")

// Config holds every knob of a segment run. A YAML file fills it first,
// then explicitly set command-line flags override individual fields.
type Config struct {
	K            float64 `yaml:"k"`
	Connectivity string  `yaml:"connectivity"`
	Radius       int     `yaml:"radius"`
	Top          int     `yaml:"top"`
	Seed         int64   `yaml:"seed"`
	Workers      int     `yaml:"workers"`
	Mono         bool    `yaml:"mono"`
	LogLevel     string  `yaml:"log_level"`
	Progress     int     `yaml:"progress"` // log every N decisions; 0 disables
}

// DefaultConfig mirrors segment.DefaultOptions plus driver defaults.
func DefaultConfig() Config {
	return Config{
		K:            segment.DefaultK,
		Connectivity: "grid4",
		Radius:       2,
		Top:          40,
		Seed:         1,
		Workers:      1,
		LogLevel:     "info",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys absent from the
// file keep their defaults, an empty file yields DefaultConfig, and unknown
// keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("gbseg: open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// An empty or comment-only file decodes to io.EOF and keeps the defaults.
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("gbseg: parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and that the connectivity name resolves.
func (c Config) Validate() error {
	if _, err := c.connectivity(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidConfig, c.Workers)
	case c.Top < 0:
		return fmt.Errorf("%w: top %d < 0", ErrInvalidConfig, c.Top)
	case c.Progress < 0:
		return fmt.Errorf("%w: progress %d < 0", ErrInvalidConfig, c.Progress)
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

func (c Config) connectivity() (gridgraph.Connectivity, error) {
	return gridgraph.ParseConnectivity(c.Connectivity, c.Radius)
}

// Options converts c to segment options. Call Validate first; an
// unresolvable connectivity yields a nil Connectivity.
func (c Config) Options() segment.Options {
	opts := segment.DefaultOptions()
	opts.K = c.K
	opts.Workers = c.Workers
	opts.Connectivity, _ = c.connectivity()

	return opts
}
