// sweeper is a terminal minesweeper, playable locally or over SSH.
//
// Usage:
//
//	sweeper list                 - List boards
//	sweeper play [difficulty]    - Play one board
//	sweeper menu                 - Pick boards interactively
//	sweeper serve                - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Custom minesweeper.yaml
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/logging"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `Sweeper is a terminal minesweeper with three boards:
easy (8x8, 10 mines), medium (12x12, 25 mines) and hard (16x16, 40 mines).

Available commands:
  list     - Show the boards and their scoring
  play     - Play one board directly
  menu     - Interactive board picker with a scoreboard
  serve    - Start SSH server for remote play

Examples:
  sweeper list
  sweeper play hard
  sweeper menu --log-file ./sweeper.log
  sweeper serve --addr :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the board configuration for every command.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}

	logger = logging.New(logging.Options{
		Level: level,
		File:  flagLogFile,
		// Interactive commands own the terminal; only the server logs to stderr.
		Stderr: cmd == serveCmd,
	})

	cfg, source, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	minesweeper.SetConfig(cfg)
	logger.Debug("config loaded", "source", source)

	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
