package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range 4 {
		if got := s.Row(y); got != strings.Repeat(" ", 12) {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)

	// Writes off the buffer are ignored, reads return blanks
	s.SetColor(-1, 0, 'X', ColorRed)
	s.SetColor(5, 2, 'X', ColorRed)
	s.SetColor(2, 9, 'X', ColorRed)

	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds write leaked into the buffer")
	}
	if c := s.GetCell(-3, 7); c != blank {
		t.Errorf("GetCell off-screen = %+v, expected blank", c)
	}
	if got := s.Row(10); got != "     " {
		t.Errorf("Row(10) = %q, expected blanks", got)
	}
}

func TestScreenColorsSurviveDrawing(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawTextColor(2, 1, "coin", ColorYellow)
	s.DrawHLine(0, 2, 20, '▀', ColorPurple)

	if c := s.GetCell(3, 1); c.Rune != 'o' || c.Color != ColorYellow {
		t.Errorf("GetCell(3,1) = %+v, expected yellow 'o'", c)
	}
	if c := s.GetCell(19, 2); c.Rune != '▀' || c.Color != ColorPurple {
		t.Errorf("GetCell(19,2) = %+v, expected purple platform", c)
	}

	s.Clear()
	if c := s.GetCell(3, 1); c != blank {
		t.Errorf("after Clear GetCell = %+v, expected blank", c)
	}
}

func TestScreenDrawTextClipsAndCentres(t *testing.T) {
	tests := []struct {
		name   string
		draw   func(s *Screen)
		expect string
	}{
		{"clipped at the right edge", func(s *Screen) { s.DrawText(7, 0, "HELLO") }, "       HEL"},
		{"clipped at the left edge", func(s *Screen) { s.DrawText(-2, 0, "HELLO") }, "LLO       "},
		{"centered even", func(s *Screen) { s.DrawTextCentered(0, "HOP") }, "   HOP    "},
		{"wider than the screen", func(s *Screen) { s.DrawTextCentered(0, "STAR HOPPER!") }, "TAR HOPPER"},
		{"multibyte runes take one cell", func(s *Screen) { s.DrawText(0, 0, "★●◆") }, "★●◆       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.expect {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expect)
			}
		})
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(1, 1, 2, 2, '█', ColorBrightGreen)

	expected := "      \n ██   \n ██   \n      "
	if got := s.String(); got != expected {
		t.Errorf("DrawRect:\n%s\nexpected:\n%s", got, expected)
	}

	s.Clear()
	s.DrawBox(0, 0, 6, 4)
	expected = "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ABCD")
	s.DrawText(0, 1, "EFGH")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "AB\nEF\n  " {
		t.Errorf("after shrink:\n%q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "AB " {
		t.Errorf("after regrow: %q", got)
	}
}
