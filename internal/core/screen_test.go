package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(3, 4, '♥', ColorRed)
	c := s.GetCell(3, 4)
	if c.Rune != '♥' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red heart", c)
	}

	// Out of bounds writes are dropped
	s.SetWithColor(-1, 0, 'A', ColorRed)
	s.SetWithColor(10, 0, 'A', ColorRed)
	s.SetWithColor(0, -1, 'A', ColorRed)
	s.SetWithColor(0, 10, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(0, 10) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(s.Bounds(), 'X', ColorGreen)
	s.Clear()

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("after Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(1, 1, "♠♣♥♦", ColorBlue)

	expected := []rune("♠♣♥♦")
	for i, r := range expected {
		c := s.GetCell(1+i, 1)
		if c.Rune != r || c.Color != ColorBlue {
			t.Errorf("cell %d = %+v, expected %q blue", i, c, r)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "∗∗", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != '∗' || s.Get(x+1, 2) != '∗' {
		t.Errorf("DrawTextCentered placed text at wrong position: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '╭',
		{5, 1}: '╮',
		{1, 4}: '╰',
		{5, 4}: '╯',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
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

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawVLine(3, 2, 4, '█', ColorBlack)

	for y := 2; y < 6; y++ {
		if s.GetCell(3, y).Rune != '█' {
			t.Errorf("DrawVLine: expected block at (3, %d)", y)
		}
	}
	if s.Get(3, 6) != ' ' {
		t.Error("DrawVLine drew past its length")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CC")

	expected := "AAAAA\nBBBBB\nCC   "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if s.Row(-1) != "     " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should leave a cleared screen")
	}
}
