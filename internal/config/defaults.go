package config

import (
	_ "embed"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration: the classic
// 800x600 arena with three rows of bricks.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:     10,
			Speed:      15,
			SpawnY:     480,
			DirectionX: 1,
			DirectionY: -1,
			Color:      core.ColorWhite,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 15,
			Y:      500,
			Step:   20,
			Color:  "#FFB643",
		},
		Bricks: BricksConfig{
			Width:   75,
			Height:  20,
			Margin:  5,
			Spacing: 90,
			Rows: []BrickRow{
				{Y: 80, Hits: 3},
				{Y: 110, Hits: 2},
				{Y: 140, Hits: 1},
			},
			Colors: map[int]core.Color{
				1: "#4535AA",
				2: "#ED639E",
				3: "#8FE1A2",
			},
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Timing: TimingConfig{
			TickMS:         50,
			PaddlePollMS:   20,
			RespawnDelayMS: 1000,
			HoldDelayMS:    500,
			HoldTimeoutMS:  150,
		},
		Theme: ThemeConfig{
			Background: []core.Color{"#6A5ACD", "#8A2BE2", "#BA55D3", "#FF00FF"},
		},
		Text: TextConfig{
			Prompt:     "Press Space to start",
			Win:        "You Win!",
			GameOver:   "Game Over",
			Lives:      "Lives: %d",
			LivesX:     50,
			LivesY:     20,
			HUDSize:    15,
			BannerSize: 24,
			Color:      core.ColorWhite,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
