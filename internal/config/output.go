package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints a diagram of the final position
	ShowBoard bool

	// ShowFEN prints the FEN string of the final position
	ShowFEN bool

	// MaxLineLength wraps move lists written to the log
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		ShowFEN:       true,
		MaxLineLength: 80,
	}
}
