package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// HelpText explains the rules, shown under the board while playing.
const HelpText = "Numbers count adjacent mines. Reveal every safe cell to win."

var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.frameSize()
		g.renderOverlay(dst, (dst.Height()-5)/2, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", w, hudHeight+h+footerHeight))
		return
	}

	g.renderBoard(dst)

	footerY := g.boardY + g.session.Board.Rows + 2
	switch g.session.Status {
	case Won:
		g.renderOverlay(dst, footerY, g.resultLine("You win!"), "R: play again   B: back")
	case Lost:
		g.renderOverlay(dst, footerY, g.resultLine("Boom! Game over."), "R: try again   B: back")
	default:
		if g.message != "" {
			dst.DrawTextCenteredColored(footerY, g.message, core.ColorYellow)
		} else {
			dst.DrawTextCenteredColored(footerY, HelpText, core.ColorGray)
		}
	}
}

func (g *Game) resultLine(prefix string) string {
	line := fmt.Sprintf("%s Score: %d", prefix, g.finalScore)
	if g.newBest {
		line += " (new best)"
	}
	return line
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s   Flags: %d   Time: %03d   Best: %d",
		g.Title(), g.session.FlagsRemaining, min(g.elapsed(), 999), g.best)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame, every cell and the cursor brackets.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.session.Board
	w, h := g.frameSize()
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, w, h))

	ox, oy := g.boardX+1, g.boardY+1
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			ch, color := g.glyph(Pos{Row: r, Col: c})
			x := ox + c*cellWidth
			dst.SetColored(x+1, oy+r, ch, color)
			if g.session.Active() && g.cursor == (Pos{Row: r, Col: c}) {
				dst.SetColored(x, oy+r, '[', core.ColorBrightWhite)
				dst.SetColored(x+2, oy+r, ']', core.ColorBrightWhite)
			}
		}
	}
}

// glyph returns how a cell is drawn.
//
//	.  hidden        F  flag          1-8 adjacent mines
//	*  mine (loss)   X  mine that hit x  wrong flag (loss)
func (g *Game) glyph(p Pos) (rune, core.Color) {
	s := g.session
	c := s.Board.Cell(p.Row, p.Col)

	switch {
	case s.Hit != nil && *s.Hit == p:
		return 'X', core.ColorBrightRed
	case c.Mine && c.Flagged:
		if s.Status == Lost {
			return 'F', core.ColorBrightGreen
		}
		return 'F', core.ColorBrightYellow
	case c.Mine && s.Status == Won:
		return 'F', core.ColorBrightGreen
	case c.Mine && c.Revealed:
		return '*', core.ColorRed
	case c.Flagged && s.Status == Lost:
		return 'x', core.ColorMagenta
	case c.Flagged:
		return 'F', core.ColorBrightYellow
	case !c.Revealed:
		return '.', core.ColorGray
	case c.Adjacent == 0:
		return ' ', core.ColorDefault
	default:
		return rune('0' + c.Adjacent), numberColors[c.Adjacent]
	}
}

// renderOverlay draws a framed two-line message starting at row y.
// The frame shrinks to four rows when the screen is too short for five.
func (g *Game) renderOverlay(dst *core.Screen, y int, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-w)/2, y, w, 5)
	gap := 2
	if box.Bottom() > dst.Height() {
		box.H, gap = footerHeight, 1
	}
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(y+gap+1, line2)
}
