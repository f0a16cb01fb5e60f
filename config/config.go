// Package config holds the settings of the bptree command: the tree's
// branching factor, logging, and the render cache.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Config is the complete command configuration.
type Config struct {
	Degree int
	Log    LogConfig
	Render RenderConfig
}

// LogConfig controls the zap logger built by the command.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// RenderConfig sizes the render cache.
type RenderConfig struct {
	NumCounters int64
	MaxCost     int64 // bytes
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Degree: 4,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Render: RenderConfig{
			NumCounters: 10000,
			MaxCost:     8 << 20,
		},
	}
}

// Environment variables read by Load. Flags take precedence over them.
const (
	EnvDegree      = "BPTREE_DEGREE"
	EnvLogLevel    = "BPTREE_LOG_LEVEL"
	EnvLogFormat   = "BPTREE_LOG_FORMAT"
	EnvRenderBytes = "BPTREE_RENDER_CACHE_BYTES"
)

// Load builds a Config from defaults, then the environment (through
// getenv), then command line args. The result is validated.
func Load(name string, args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Degree, "degree", cfg.Degree, "maximum children per internal node (>= 3)")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: console or json")
	fs.Int64Var(&cfg.Render.MaxCost, "render-cache-bytes", cfg.Render.MaxCost, "bytes of rendered tree text to cache")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if v := getenv(EnvDegree); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDegree, err)
		}
		c.Degree = d
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := getenv(EnvRenderBytes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRenderBytes, err)
		}
		c.Render.MaxCost = n
	}
	return nil
}
