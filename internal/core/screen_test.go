package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("NewScreen(40, 12) size = %dx%d, want 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '7', ColorRed)
	c := s.GetCell(3, 4)
	if c.Rune != '7' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, want {'7' ColorRed}", c)
	}
	if s.Get(3, 4) != '7' {
		t.Errorf("Get(3, 4) = %q, want '7'", s.Get(3, 4))
	}

	// Out of bounds is silent both ways.
	s.SetColored(-1, 0, 'A', ColorBlue)
	s.SetColored(0, 100, 'A', ColorBlue)
	if s.GetCell(-1, 0) != blank || s.GetCell(0, 100) != blank {
		t.Error("out of bounds GetCell should return blank")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawTextColored(0, 0, "XXXX", ColorGreen)
	s.Clear()

	if got := s.Row(0); got != "    " {
		t.Errorf("Row(0) after Clear = %q, want spaces", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("color after Clear = %v, want ColorDefault", c.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, want prefix %q", got, "  Hello")
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCenteredColored(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("Row(2) = %q, want Hi centered at %d", s.Row(2), x)
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Errorf("centered text color = %v, want ColorYellow", s.GetCell(x, 2).Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("Get(%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '-')

	if got := s.Row(1); got != "  -----   " {
		t.Errorf("Row(1) = %q, want %q", got, "  -----   ")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	want := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after Resize(8, 4) size = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q, content should survive shrinking", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q, content should survive growing", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("color should survive Resize")
	}
	if s.Row(7) != strings.Repeat(" ", 15) {
		t.Errorf("new rows should be blank, got %q", s.Row(7))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(-1) = %q, want spaces", got)
	}
}
