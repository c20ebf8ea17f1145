// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play              - Play interactively
//	t2048 targets           - List win target presets
//	t2048 simulate <moves>  - Replay a move string without a terminal UI
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Custom game config YAML
//	--log-file <path>   - Write logs to a file while the UI runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide every tile in one direction; equal neighbours merge into their sum.
Reach the target tile to win. The game is lost when the board is full
and no two adjacent tiles match.

Available commands:
  play      - Start an interactive game
  targets   - Show win target presets
  simulate  - Replay moves headlessly and print each board

Examples:
  t2048 play
  t2048 play --target quick
  t2048 play --seed 42 --log-file /tmp/t2048.log
  t2048 simulate --seed 1 "l u r d"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
}

// openLogFile returns a logger for --log-file, or a discarding one.
// The returned close function is never nil.
func openLogFile(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return newLogger(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), f.Close, nil
}

// loadGameConfig loads the game config and applies the named target preset.
// An empty target keeps the config's own win threshold and spawn chance.
func loadGameConfig(path, target string) (config.GameConfig, string, error) {
	cfg, source, err := config.Load(path)
	if err != nil {
		return config.GameConfig{}, source, err
	}
	if target == "" {
		return cfg, source, nil
	}
	preset, err := config.PresetByName(target)
	if err != nil {
		return config.GameConfig{}, source, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, source, nil
}
