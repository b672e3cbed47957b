// Package config holds figsearch configuration: a small YAML file with
// defaults and environment overrides. Every knob is operational; none
// changes what shape a query reports.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no
// explicit --config path is given.
const DefaultFileName = "figsearch.yaml"

// Config is the root configuration.
type Config struct {
	Loader LoaderConfig `yaml:"loader"`
	Scan   ScanConfig   `yaml:"scan"`
	Watch  WatchConfig  `yaml:"watch"`
}

// LoaderConfig tunes the bitmap loader.
type LoaderConfig struct {
	// ChunkSize is the pixel-stream read buffer size in bytes.
	ChunkSize int `yaml:"chunk_size"`
	// MaxPixels caps the declared bitmap area the loader will accept.
	MaxPixels uint64 `yaml:"max_pixels"`
}

// ScanConfig tunes the scanners.
type ScanConfig struct {
	// Workers is the line-scan partition count. 1 disables
	// parallelism; the square scan is always sequential.
	Workers int `yaml:"workers"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before the
	// query re-runs, as a Go duration string ("500ms").
	Debounce string `yaml:"debounce"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			ChunkSize: 512,
			MaxPixels: 1 << 28,
		},
		Scan: ScanConfig{
			Workers: 1,
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
	}
}

// Load reads configuration from path. An empty path falls back to
// DefaultFileName in the working directory; a missing file is not an
// error and yields the defaults. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file, defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies FIGSEARCH_* variables on top of whatever
// the file (or the defaults) provided.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FIGSEARCH_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Loader.ChunkSize = n
		}
	}
	if v := os.Getenv("FIGSEARCH_MAX_PIXELS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Loader.MaxPixels = n
		}
	}
	if v := os.Getenv("FIGSEARCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Scan.Workers = n
		}
	}
	if v := os.Getenv("FIGSEARCH_WATCH_DEBOUNCE"); v != "" {
		c.Watch.Debounce = v
	}
}

func (c *Config) validate() error {
	if c.Loader.ChunkSize <= 0 {
		return fmt.Errorf("loader.chunk_size must be positive, got %d", c.Loader.ChunkSize)
	}
	if c.Loader.MaxPixels == 0 {
		return fmt.Errorf("loader.max_pixels must be positive")
	}
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive, got %d", c.Scan.Workers)
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("watch.debounce is not a duration: %w", err)
	}
	return nil
}

// DebounceInterval returns the parsed watch debounce. Load has already
// validated the string.
func (c *Config) DebounceInterval() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}
