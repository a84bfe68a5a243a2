package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get returned %q, want '@'", got)
	}

	// Out of bounds is a no-op and reads back as space.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Out-of-bounds Get returned %q", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '#', ColorBrightRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell returned %+v", cell)
	}

	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place the runes")
	}

	// Clipped at the right edge without panicking.
	s.DrawText(8, 0, "long")
	if s.Get(9, 0) != 'o' {
		t.Errorf("Clipped text wrong: %q", s.Get(9, 0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	s.Resize(20, 10)
	if s.Get(2, 2) != '@' {
		t.Error("Resize lost existing content")
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions %dx%d", s.Width(), s.Height())
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != '@' {
		t.Error("Shrinking lost content still in bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
