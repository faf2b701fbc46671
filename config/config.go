// Package config holds the run configuration of the parmst command: YAML
// file values, overridden by PARMST_* environment variables, overridden in
// turn by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parmst/kruskal"
)

// Transport names.
const (
	TransportLocal = "local"
	TransportRPC   = "rpc"
)

// Input formats.
const (
	FormatText   = "text"
	FormatBinary = "binary"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full run configuration.
type Config struct {
	// Workers is P; 0 picks min(GOMAXPROCS, m).
	Workers     int           `yaml:"workers"`
	Strategy    string        `yaml:"strategy"`
	Transport   string        `yaml:"transport"`
	Peers       []string      `yaml:"peers"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Input       string        `yaml:"input"`
	Format      string        `yaml:"format"`
	Verify      bool          `yaml:"verify"`
	Log         Log           `yaml:"log"`
	Metrics     Metrics       `yaml:"metrics"`
}

// Log selects the logger level and encoder.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics configures the Prometheus endpoint; an empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Strategy:    kruskal.StrategyPrivate,
		Transport:   TransportLocal,
		DialTimeout: 5 * time.Second,
		Input:       "graph.txt",
		Format:      FormatText,
		Log:         Log{Level: "info", Format: "console"},
	}
}

// Load reads path on top of Default and then applies the environment.
// An empty path skips the file. Unknown YAML keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from PARMST_WORKERS, PARMST_STRATEGY and
// PARMST_LOG_LEVEL as reported by lookup. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PARMST_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PARMST_WORKERS=%q: %w", v, ErrInvalid)
		}
		c.Workers = n
	}
	if v, ok := lookup("PARMST_STRATEGY"); ok && v != "" {
		c.Strategy = v
	}
	if v, ok := lookup("PARMST_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}

	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers=%d must not be negative: %w", c.Workers, ErrInvalid))
	}
	switch c.Strategy {
	case kruskal.StrategyPrivate, kruskal.StrategyShared:
	default:
		err = multierr.Append(err, fmt.Errorf("strategy %q: %w", c.Strategy, ErrInvalid))
	}
	switch c.Transport {
	case TransportLocal:
	case TransportRPC:
		if len(c.Peers) == 0 {
			err = multierr.Append(err, fmt.Errorf("transport rpc needs peers: %w", ErrInvalid))
		}
		if c.Strategy == kruskal.StrategyShared {
			err = multierr.Append(err, fmt.Errorf("strategy shared needs transport local: %w", ErrInvalid))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("transport %q: %w", c.Transport, ErrInvalid))
	}
	if c.DialTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("dial_timeout=%s must be positive: %w", c.DialTimeout, ErrInvalid))
	}
	if c.Input == "" {
		err = multierr.Append(err, fmt.Errorf("input is empty: %w", ErrInvalid))
	}
	switch c.Format {
	case FormatText, FormatBinary:
	default:
		err = multierr.Append(err, fmt.Errorf("format %q: %w", c.Format, ErrInvalid))
	}
	if _, perr := zapcore.ParseLevel(c.Log.Level); perr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid))
	}

	return err
}
