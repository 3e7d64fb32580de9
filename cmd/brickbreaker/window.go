package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Brick Breaker in a desktop window sized to the arena.

Controls:
  Left/A, Right/D  - Move the paddle while held
  Space            - Launch the ball
  R                - Restart (after win or game over)
  Q/Esc            - Quit

Examples:
  brickbreaker window
  brickbreaker window --fps 120 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	logger.Info("opening window", "width", cfg.Arena.Width, "height", cfg.Arena.Height, "tps", flagFPS)
	return gui.Run(cfg, flagFPS, logger)
}
