package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Brick Breaker in the terminal. The 800x600 arena is scaled to fit
the terminal window.

Controls:
  Left/A, Right/D  - Move the paddle (hold or repeat)
  Space            - Launch the ball
  R                - Restart (after win or game over)
  Ctrl+S           - Save a screenshot to ~/.brickbreaker/screenshots
  Q/Esc/Ctrl+C     - Quit

Logs are discarded unless --log-file is given, since they would draw over
the game.

Examples:
  brickbreaker play
  brickbreaker play --config ./my-breakout.yaml
  brickbreaker play --log-file /tmp/brickbreaker.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.FrameRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting terminal session", "screen", rt.ScreenW, "rows", rt.ScreenH, "fps", rt.FrameRate)
	return tui.Run(cfg, rt, logger)
}
