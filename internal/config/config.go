// Package config loads the hopgraph CLI settings.
//
// Precedence, lowest first: built-in defaults, the YAML file passed with
// --config, then HOPGRAPH_* environment variables. The result is validated
// before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dfacoet/hopgraph/pathlen"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HOPGRAPH_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of an averaging run.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after Load.
type Config struct {
	// Workers caps concurrent BFS sources; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// ParallelThreshold is the node count from which sources fan out.
	ParallelThreshold int `yaml:"parallel_threshold"`

	// MaxNodes rejects larger graphs; 0 disables the check.
	MaxNodes int `yaml:"max_nodes"`

	// Undirected treats every edge as traversable both ways.
	Undirected bool `yaml:"undirected"`

	// ReachableOnly divides by reachable pairs instead of N·(N−1).
	ReachableOnly bool `yaml:"reachable_only"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		ParallelThreshold: pathlen.DefaultParallelThreshold,
		LogLevel:          "info",
	}
}

// Load resolves defaults, the optional YAML file at path and the
// environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// decode rejects unknown keys so typos do not pass silently.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WORKERS", &cfg.Workers},
		{"PARALLEL_THRESHOLD", &cfg.ParallelThreshold},
		{"MAX_NODES", &cfg.MaxNodes},
	}
	for _, e := range ints {
		if v, ok := lookup(EnvPrefix + e.key); ok && v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, EnvPrefix, e.key, v, err)
			}
			*e.dst = i
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"UNDIRECTED", &cfg.Undirected},
		{"REACHABLE_ONLY", &cfg.ReachableOnly},
	}
	for _, e := range bools {
		if v, ok := lookup(EnvPrefix + e.key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, EnvPrefix, e.key, v, err)
			}
			*e.dst = b
		}
	}

	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("%w: parallel_threshold must be >= 0, got %d", ErrInvalid, c.ParallelThreshold)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes must be >= 0, got %d", ErrInvalid, c.MaxNodes)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return l, nil
}

// PathlenOptions translates the settings into pathlen options.
// Undirected is not among them; it selects the direction argument.
func (c Config) PathlenOptions() []pathlen.Option {
	opts := []pathlen.Option{
		pathlen.WithWorkers(c.Workers),
		pathlen.WithParallelThreshold(c.ParallelThreshold),
		pathlen.WithMaxNodes(c.MaxNodes),
	}
	if c.ReachableOnly {
		opts = append(opts, pathlen.WithReachableOnly())
	}

	return opts
}
