package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

var flagSimTarget string

var simulateCmd = &cobra.Command{
	Use:   "simulate <moves>",
	Short: "Replay a move string and print every board",
	Long: `Runs a game without the terminal UI. Moves are letters or words,
separated by spaces or commas: "l r u d", "LRUD" and "left,up" all work.

Letters are u (up), d (down), l (left) and r (right). These are not the
WASD keys of 'play': here "d" means down.

The win target and spawn chance come from the config unless --target
names a preset. Moves after the game is won or lost are ignored.

Examples:
  t2048 simulate --seed 7 "l u l u r d"
  t2048 simulate --target quick LLUURRDD
  t2048 simulate --config ./my-2048.yaml --seed 3 lurdlurd`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimTarget, "target", "",
		"Target preset: "+strings.Join(config.PresetNames(), ", ")+" (default: the config's rules)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	moves, err := parseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	gameCfg, source, err := loadGameConfig(flagConfig, flagSimTarget)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := newLogger(os.Stderr)
	logger.Debug("config loaded", "source", source)

	_, err = simulate(cmd.OutOrStdout(), gameCfg.Engine(), seed, moves, logger)
	return err
}

// parseMoves accepts direction words or runs of single letters.
func parseMoves(s string) ([]engine.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no moves given")
	}

	var moves []engine.Direction
	for _, f := range fields {
		if d, err := engine.ParseDirection(f); err == nil {
			moves = append(moves, d)
			continue
		}
		// "LRUD" style: every letter is a move.
		for _, r := range f {
			d, err := engine.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("invalid move %q in %q: %w", string(r), f, err)
			}
			moves = append(moves, d)
		}
	}
	return moves, nil
}

// simulate plays moves on a fresh seeded session and writes each board to w.
func simulate(w io.Writer, cfg engine.Config, seed int64, moves []engine.Direction, logger *log.Logger) (engine.State, error) {
	rng := rand.New(rand.NewSource(seed))
	session, err := engine.NewSession(cfg, rng, nil)
	if err != nil {
		return engine.Continue, err
	}

	heading := lipgloss.NewStyle().Bold(true)
	logger.Info("simulation started", "seed", seed, "target", cfg.WinThreshold, "moves", len(moves))

	fmt.Fprintln(w, heading.Render("start"))
	fmt.Fprintln(w, session.Board())

	for i, dir := range moves {
		if session.State().Terminal() {
			logger.Warn("game over, ignoring remaining moves", "remaining", len(moves)-i)
			break
		}

		res, err := session.Move(dir)
		if err != nil {
			return session.State(), err
		}

		note := " (no change)"
		if res.Changed {
			moved := 0
			for _, m := range res.Moves {
				if m.Moved() {
					moved++
				}
			}
			note = fmt.Sprintf(" (%d moved)", moved)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, heading.Render(fmt.Sprintf("%d. %s%s", i+1, dir, note)))
		fmt.Fprintln(w, session.Board())
	}

	b := session.Board()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "state: %s  turns: %d  max: %d\n", session.State(), session.Turns(), b.MaxTile())
	logger.Info("simulation finished", "state", session.State(), "turns", session.Turns())
	return session.State(), nil
}
