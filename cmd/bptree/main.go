// Interactive B+ tree shell.
// Usage: go run ./cmd/bptree [-degree 4] [-log-level debug]
// Type `help` at the prompt for the command list.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bplusindex/config"
	"bplusindex/render"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cache, err := render.NewCache(render.Config{
		NumCounters: cfg.Render.NumCounters,
		MaxCost:     cfg.Render.MaxCost,
	})
	if err != nil {
		logger.Fatal("render cache", zap.Error(err))
	}
	defer cache.Close()

	s, err := newSession(cfg.Degree, cache, logger, os.Stdout)
	if err != nil {
		logger.Fatal("create tree", zap.Error(err))
	}
	logger.Info("tree ready", zap.Int("degree", cfg.Degree))

	s.repl(os.Stdin, true)
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Format
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
