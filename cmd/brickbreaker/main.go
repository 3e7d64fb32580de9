// brickbreaker is a single-screen brick breaking game for the terminal and
// the desktop.
//
// Usage:
//
//	brickbreaker play        - Play in the terminal
//	brickbreaker window      - Play in a desktop window
//	brickbreaker config      - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--fps <rate>        - Frame rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - bounce the ball, break the bricks",
	Long: `Brick Breaker is a classic single-screen arcade game: keep the ball
in play with the paddle and destroy every brick. Top-row bricks take three
hits, the middle row two and the bottom row one. You have three spare lives.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the default configuration

Examples:
  brickbreaker play
  brickbreaker window --fps 120
  brickbreaker play --config ./my-breakout.yaml
  brickbreaker config > ~/.brickbreaker/configs/breakout.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
