package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v, expected '@' red", cell)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %q, expected blank", got.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorGreen)

	s.Clear()

	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello", ColorDefault)

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at right edge
	s.DrawText(8, 0, "abc", ColorDefault)
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)

	row := s.Row(1)
	if !strings.Contains(row, "abc") {
		t.Fatalf("Row(1) = %q, missing text", row)
	}
	if row[4] != 'a' {
		t.Errorf("text not centered: %q", row)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)

	if got := s.Row(0); got != "┌────┐" {
		t.Errorf("top row = %q", got)
	}
	if got := s.Row(3); got != "└────┘" {
		t.Errorf("bottom row = %q", got)
	}
	if s.GetCell(0, 1).Rune != '│' || s.GetCell(5, 2).Rune != '│' {
		t.Error("vertical edges not drawn")
	}
	if s.GetCell(2, 1).Rune != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Resize() -> %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if got := s.Row(1); got != strings.Repeat(" ", 8) {
		t.Errorf("resized row = %q, expected blanks", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}
