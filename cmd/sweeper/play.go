package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// difficultyValue is a pflag.Value that only accepts known difficulties.
type difficultyValue minesweeper.Difficulty

func (d *difficultyValue) String() string { return minesweeper.Difficulty(*d).String() }

func (d *difficultyValue) Set(s string) error {
	parsed, err := minesweeper.ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = difficultyValue(parsed)
	return nil
}

func (d *difficultyValue) Type() string { return "difficulty" }

var flagDifficulty = difficultyValue(minesweeper.Easy)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play one board",
	Long: `Start a game on the given board (default: easy).

Controls:
  Arrows/WASD/HJKL   - Move the cursor
  Space/Enter/Click  - Reveal a cell
  F/M/Right click    - Plant or remove a flag
  R                  - New board
  Esc/B/Q            - Quit

Numbers count the mines around a cell. Reveal every safe cell to win;
the faster you are, the higher the score.

Examples:
  sweeper play
  sweeper play medium
  sweeper play --difficulty hard --seed 42`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"easy", "medium", "hard"},
	RunE:      runPlay,
}

func init() {
	playCmd.Flags().Var(&flagDifficulty, "difficulty", "Board: easy, medium, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	d := minesweeper.Difficulty(flagDifficulty)
	if len(args) == 1 {
		parsed, err := minesweeper.ParseDifficulty(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'sweeper list' to see boards)", err)
		}
		d = parsed
	}

	game, err := registry.Create(d.String())
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	// Results live only as long as this process.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open result store", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "difficulty", d, "seed", flagSeed)
	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
