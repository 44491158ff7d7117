package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Deterministic defaults.
const (
	defaultFormat   = formatText
	defaultMaxBound = 50_000_000 // ~50 MB of sieve flags
)

var (
	errUnknownFormat = errors.New("primefun: unknown output format")
	errBoundTooLarge = errors.New("primefun: bound exceeds --max-bound")
)

// config holds every CLI knob; flags write straight into it.
type config struct {
	format   string
	maxBound int
	verbose  bool
}

func newConfig() *config {
	return &config{
		format:   defaultFormat,
		maxBound: defaultMaxBound,
	}
}

// validate runs once per invocation, before any command body.
func (c *config) validate() error {
	switch c.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w %q (want %s|%s|%s)", errUnknownFormat, c.format, formatText, formatJSON, formatYAML)
	}
	if c.maxBound < 0 {
		return fmt.Errorf("primefun: --max-bound must be ≥ 0, got %d", c.maxBound)
	}

	return nil
}

// newLogger writes diagnostics to w; Debug when verbose, Warn otherwise.
func (c *config) newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
