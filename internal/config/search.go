package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// MaxDepth caps the search depth any difficulty level may request.
const MaxDepth = 8

// Difficulty describes how the computer plays at one level.
type Difficulty struct {
	// Depth is the alpha-beta search depth in plies.
	Depth int

	// RandomMoveProbability is the chance, 0..1, of playing a random legal
	// move instead of searching.
	RandomMoveProbability float64
}

// SearchConfig holds settings for the computer player.
type SearchConfig struct {
	// Levels maps difficulty level N (1-based) to Levels[N-1].
	// Levels above len(Levels) search at the level number as depth.
	Levels []Difficulty

	// MaxNodes aborts a search after this many nodes (0 = unlimited).
	MaxNodes uint64

	// Timeout aborts a search after this long (0 = no timeout).
	Timeout time.Duration

	// Seed seeds random move selection. Zero means seed from the clock.
	Seed int64
}

// DefaultLevels is the difficulty table used by NewSearchConfig.
func DefaultLevels() []Difficulty {
	return []Difficulty{
		{Depth: 1, RandomMoveProbability: 0.5},
		{Depth: 2, RandomMoveProbability: 0.25},
		{Depth: 2, RandomMoveProbability: 0.1},
		{Depth: 3, RandomMoveProbability: 0},
		{Depth: 4, RandomMoveProbability: 0},
	}
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Levels: DefaultLevels(),
	}
}

// Level returns the difficulty for level n. Callers handle n <= 0 themselves
// (random play); levels beyond the table search at depth n.
func (s *SearchConfig) Level(n int) Difficulty {
	if n >= 1 && n <= len(s.Levels) {
		return s.Levels[n-1]
	}
	depth := n
	if depth > MaxDepth {
		depth = MaxDepth
	}
	return Difficulty{Depth: depth}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	for i, d := range s.Levels {
		if d.Depth < 1 || d.Depth > MaxDepth {
			return fmt.Errorf("level %d: depth %d outside 1..%d: %w", i+1, d.Depth, MaxDepth, errors.ErrInvalidConfig)
		}
		if d.RandomMoveProbability < 0 || d.RandomMoveProbability > 1 {
			return fmt.Errorf("level %d: random move probability %v outside 0..1: %w",
				i+1, d.RandomMoveProbability, errors.ErrInvalidConfig)
		}
	}
	if s.Timeout < 0 {
		return fmt.Errorf("negative timeout %v: %w", s.Timeout, errors.ErrInvalidConfig)
	}
	return nil
}
