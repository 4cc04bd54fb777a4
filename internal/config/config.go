// Package config provides configuration for the chess engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Config holds all engine and program configuration.
type Config struct {
	// Rules governs draw thresholds and promotion defaults.
	Rules *RulesConfig

	// Search bounds the computer player and defines difficulty levels.
	Search *SearchConfig

	// Output controls how the CLI renders boards and results.
	Output *OutputConfig

	// Verbosity: 0=nothing, 1=summaries, 2=running commentary.
	Verbosity int

	// Output streams. Games sharing a Config may log from several
	// goroutines; Logf serializes its writes to LogFile.
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Search.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	line := fmt.Sprintf(format+"\n", args...)

	c.logMu.Lock()
	defer c.logMu.Unlock()
	io.WriteString(c.LogFile, line) //nolint:errcheck // diagnostics are best effort
}
