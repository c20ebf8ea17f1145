package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagTarget string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start an interactive game of 2048.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P                 - Pause
  R                 - Restart (after win or game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Without --target a menu asks for the win target first. When a config
file is loaded, its own rules are the first entry and preselected.
Run 't2048 targets' to list the presets.

Examples:
  t2048 play
  t2048 play --target long
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTarget, "target", "",
		"Target preset: "+strings.Join(config.PresetNames(), ", "))
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	gameCfg, source, err := loadGameConfig(flagConfig, flagTarget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if flagTarget != "" {
			fmt.Fprintln(os.Stderr, "Run 't2048 targets' to see available targets.")
		}
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if flagTarget == "" {
		choices, initial := config.MenuChoices(gameCfg, source)
		preset, menuErr := tui.RunTargetSelector(choices, initial, cfg.ScreenW, cfg.ScreenH)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		// User quit from the menu
		if preset == nil {
			return
		}
		config.ApplyPreset(&gameCfg, *preset)
		logger.Info("target selected", "preset", preset.Name)
	}
	logger.Info("rules", "target", gameCfg.Rules.WinThreshold, "spawn4", gameCfg.Rules.Spawn4Probability)

	game, err := t2048.New(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
