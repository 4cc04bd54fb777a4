package config

import (
	"io"
	"time"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDrawHalfmoveLimit sets the halfmove clock draw threshold.
func (b *ConfigBuilder) WithDrawHalfmoveLimit(limit uint) *ConfigBuilder {
	b.cfg.Rules.DrawHalfmoveLimit = limit
	return b
}

// WithRepetitionLimit sets the repetition draw threshold (0 disables it).
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = limit
	return b
}

// WithDefaultPromotion sets the piece used when a promotion names none.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = kind
	return b
}

// WithLevels replaces the difficulty table.
func (b *ConfigBuilder) WithLevels(levels ...Difficulty) *ConfigBuilder {
	b.cfg.Search.Levels = levels
	return b
}

// WithNodeBudget sets the maximum node count per search.
func (b *ConfigBuilder) WithNodeBudget(nodes uint64) *ConfigBuilder {
	b.cfg.Search.MaxNodes = nodes
	return b
}

// WithTimeout sets the per-search timeout.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Search.Timeout = d
	return b
}

// WithSeed seeds random move selection.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
