package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the boards",
	Long:  `Shows every board with its size, mine count and best possible score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := minesweeper.CurrentConfig()

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-8s  %-7s  %5s  %10s  %s\n", "ID", "Board", "Mines", "Max score", "Density")
	fmt.Printf("  %-8s  %-7s  %5s  %10s  %s\n", "--", "-----", "-----", "---------", "-------")

	for _, d := range minesweeper.Difficulties {
		p, sc, err := minesweeper.ParamsFromConfig(cfg, d)
		if err != nil {
			fmt.Printf("  %-8s  invalid: %v\n", d, err)
			continue
		}
		density := float64(p.Mines) / float64(p.Cells()) * 100
		fmt.Printf("  %-8s  %-7s  %5d  %10s  %s%%\n",
			d,
			fmt.Sprintf("%dx%d", p.Size, p.Size),
			p.Mines,
			humanize.Comma(int64(sc.BaseScore*p.Multiplier)),
			humanize.FtoaWithDigits(density, 1),
		)
	}

	fmt.Println()
	fmt.Printf("Scores drop by %d points per second, times the board multiplier.\n", cfg.Scoring.PenaltyPerSecond)
	fmt.Println("Run 'sweeper play <id>' to play a board.")
}
