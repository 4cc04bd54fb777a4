package config

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/errors"
)

// DefaultDrawHalfmoveLimit is the halfmove clock value that ends the game in a draw.
const DefaultDrawHalfmoveLimit = 100

// DefaultRepetitionLimit is the number of occurrences of a position that draws.
const DefaultRepetitionLimit = 3

// RulesConfig holds game-rule settings.
type RulesConfig struct {
	// DrawHalfmoveLimit sets the Draw flag once the halfmove clock reaches it.
	DrawHalfmoveLimit uint

	// RepetitionLimit sets the Draw flag once a position occurs this often.
	// Zero disables repetition draws.
	RepetitionLimit int

	// DefaultPromotion is used when a promoting move names no piece.
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		DrawHalfmoveLimit: DefaultDrawHalfmoveLimit,
		RepetitionLimit:   DefaultRepetitionLimit,
		DefaultPromotion:  chess.Queen,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.DrawHalfmoveLimit == 0 {
		return fmt.Errorf("draw halfmove limit must be positive: %w", errors.ErrInvalidConfig)
	}
	if r.RepetitionLimit < 0 {
		return fmt.Errorf("repetition limit (%d) is negative: %w", r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if !r.DefaultPromotion.IsPromotion() {
		return fmt.Errorf("default promotion %v is not a promotion piece: %w",
			r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
