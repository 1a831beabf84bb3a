package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards interactively",
	Long: `Opens a menu to pick a board. Finished games are kept on a scoreboard
(Tab in the menu) until you quit.

Controls:
  Up/Down    - Navigate
  Enter      - Play the selected board
  Tab        - Scoreboard
  Esc/B      - Back to the menu from a game
  Q/Ctrl+C   - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open()
	if err != nil {
		return fmt.Errorf("cannot open result store: %w", err)
	}
	defer store.Close()

	if err := tui.RunSession(store, logger, runtimeConfig(), os.Getenv("USER")); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
