package core

// RuntimeConfig describes the host a frontend runs in.
// The simulation itself always works in arena pixels; the terminal
// frontend uses ScreenW/ScreenH to scale the arena into cells.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	FrameRate int // Frontend redraws per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}
