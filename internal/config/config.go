// Package config provides YAML-based game configuration loading and
// validation for the brick breaker.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// BreakoutConfig contains all configuration for the game.
// All positions and sizes are arena pixels.
type BreakoutConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
	Theme    ThemeConfig    `yaml:"theme"`
	Text     TextConfig     `yaml:"text"`
}

// ArenaConfig defines the playfield size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball spawned at the start of every life.
type BallConfig struct {
	Radius     float64    `yaml:"radius"`
	Speed      float64    `yaml:"speed"`       // Pixels per tick
	SpawnY     float64    `yaml:"spawn_y"`     // Center Y when resting on the paddle
	DirectionX int        `yaml:"direction_x"` // Launch direction, -1 or 1
	DirectionY int        `yaml:"direction_y"` // Launch direction, -1 or 1
	Color      core.Color `yaml:"color"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Y      float64    `yaml:"y"`    // Center Y
	Step   float64    `yaml:"step"` // Pixels moved per poll while a key is held
	Color  core.Color `yaml:"color"`
}

// BrickRow is one row of the brick grid.
type BrickRow struct {
	Y    float64 `yaml:"y"`    // Center Y
	Hits int     `yaml:"hits"` // Hits needed to destroy, 1-3
}

// BricksConfig defines the brick grid layout.
// Columns start at Margin and repeat every Spacing pixels while they fit
// before Width-Margin; each brick is centered in its column.
type BricksConfig struct {
	Width   float64            `yaml:"width"`
	Height  float64            `yaml:"height"`
	Margin  float64            `yaml:"margin"`
	Spacing float64            `yaml:"spacing"`
	Rows    []BrickRow         `yaml:"rows"`
	Colors  map[int]core.Color `yaml:"colors"` // Fill by remaining hits
}

// GameplayConfig defines rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// TimingConfig defines the scheduler cadences in milliseconds.
type TimingConfig struct {
	TickMS         int `yaml:"tick_ms"`          // Ball update interval
	PaddlePollMS   int `yaml:"paddle_poll_ms"`   // Paddle key poll interval
	RespawnDelayMS int `yaml:"respawn_delay_ms"` // Pause after a lost life
	HoldDelayMS    int `yaml:"hold_delay_ms"`    // First release window, covers the terminal repeat delay
	HoldTimeoutMS  int `yaml:"hold_timeout_ms"`  // Release window between repeats
}

// Tick returns the ball update interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// PaddlePoll returns the paddle poll interval.
func (t TimingConfig) PaddlePoll() time.Duration {
	return time.Duration(t.PaddlePollMS) * time.Millisecond
}

// RespawnDelay returns the delay between a lost life and the next serve.
func (t TimingConfig) RespawnDelay() time.Duration {
	return time.Duration(t.RespawnDelayMS) * time.Millisecond
}

// HoldDelay returns how long a freshly pressed terminal key counts as held
// before its first repeat.
func (t TimingConfig) HoldDelay() time.Duration {
	return time.Duration(t.HoldDelayMS) * time.Millisecond
}

// HoldTimeout returns how long a terminal key counts as held without repeats.
func (t TimingConfig) HoldTimeout() time.Duration {
	return time.Duration(t.HoldTimeoutMS) * time.Millisecond
}

// ThemeConfig defines background colors.
type ThemeConfig struct {
	Background []core.Color `yaml:"background"` // Horizontal bands, top to bottom
}

// TextConfig defines HUD and banner text.
type TextConfig struct {
	Prompt     string     `yaml:"prompt"`
	Win        string     `yaml:"win"`
	GameOver   string     `yaml:"game_over"`
	Lives      string     `yaml:"lives"` // fmt format with one %d
	LivesX     float64    `yaml:"lives_x"`
	LivesY     float64    `yaml:"lives_y"`
	HUDSize    int        `yaml:"hud_size"`
	BannerSize int        `yaml:"banner_size"`
	Color      core.Color `yaml:"color"`
}

// Validate checks the configuration for values the game cannot run with.
// Every problem is reported; each wraps ErrInvalid.
func (c BreakoutConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		fail("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.Ball.Radius <= 0 {
		fail("ball radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Ball.Speed <= 0 {
		fail("ball speed must be positive, got %v", c.Ball.Speed)
	}
	if !unitSign(c.Ball.DirectionX) || !unitSign(c.Ball.DirectionY) {
		fail("ball direction must be -1 or 1, got (%d, %d)", c.Ball.DirectionX, c.Ball.DirectionY)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		fail("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > c.Arena.Width {
		fail("paddle width %v exceeds arena width %v", c.Paddle.Width, c.Arena.Width)
	}
	if c.Paddle.Step <= 0 {
		fail("paddle step must be positive, got %v", c.Paddle.Step)
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Spacing <= 0 {
		fail("brick size and spacing must be positive")
	}
	if c.Bricks.Width > c.Bricks.Spacing {
		fail("brick width %v exceeds column spacing %v", c.Bricks.Width, c.Bricks.Spacing)
	}
	if len(c.Bricks.Rows) == 0 {
		fail("at least one brick row is required")
	}
	for i, row := range c.Bricks.Rows {
		if row.Hits < 1 || row.Hits > 3 {
			fail("brick row %d: hits must be 1-3, got %d", i, row.Hits)
		}
	}
	for hits := 1; hits <= 3; hits++ {
		if !c.Bricks.Colors[hits].Valid() {
			fail("brick color for %d hits is missing or not #RRGGBB", hits)
		}
	}
	if c.Gameplay.Lives < 0 {
		fail("lives must not be negative, got %d", c.Gameplay.Lives)
	}
	if c.Timing.TickMS <= 0 || c.Timing.PaddlePollMS <= 0 {
		fail("tick and paddle poll intervals must be positive")
	}
	if c.Timing.PaddlePollMS >= c.Timing.TickMS {
		fail("paddle poll interval (%dms) must be shorter than the ball tick (%dms)",
			c.Timing.PaddlePollMS, c.Timing.TickMS)
	}
	if c.Timing.RespawnDelayMS < 0 || c.Timing.HoldDelayMS < 0 || c.Timing.HoldTimeoutMS < 0 {
		fail("delays must not be negative")
	}

	return errors.Join(errs...)
}

func unitSign(v int) bool {
	return v == 1 || v == -1
}
