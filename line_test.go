package termrender

import "testing"

func TestBufferLineSetString(t *testing.T) {
	l := NewBufferLine(10)
	end := l.SetString(0, "a中b", NewCell())

	if end != 4 {
		t.Errorf("SetString returned %d, want 4", end)
	}
	if c := l.Cell(0); c.Char != "a" || c.Width != 1 {
		t.Errorf("cell 0 = {%q, %d}, want {\"a\", 1}", c.Char, c.Width)
	}
	if c := l.Cell(1); c.Char != "中" || c.Width != 2 {
		t.Errorf("cell 1 = {%q, %d}, want {\"中\", 2}", c.Char, c.Width)
	}
	if c := l.Cell(2); !c.IsWideSpacer() {
		t.Errorf("cell 2 = {%q, %d}, want a wide spacer", c.Char, c.Width)
	}
	if c := l.Cell(3); c.Char != "b" {
		t.Errorf("cell 3 = %q, want \"b\"", c.Char)
	}
}

func TestBufferLineSetStringGraphemeClusters(t *testing.T) {
	l := NewBufferLine(10)
	// combining acute: one cluster, one cell
	l.SetString(0, "éx", NewCell())

	if c := l.Cell(0); c.Char != "é" || c.Width != 1 {
		t.Errorf("cell 0 = {%q, %d}, want the full cluster in one cell", c.Char, c.Width)
	}
	if c := l.Cell(1); c.Char != "x" {
		t.Errorf("cell 1 = %q, want \"x\"", c.Char)
	}
}

func TestBufferLineSetStringTruncates(t *testing.T) {
	l := NewBufferLine(3)
	end := l.SetString(0, "ab中", NewCell())

	// The wide char does not fit in the last column and is dropped.
	if end != 2 {
		t.Errorf("SetString returned %d, want 2", end)
	}
	if c := l.Cell(2); c.HasContent() {
		t.Errorf("cell 2 = %q, want blank", c.Char)
	}
}

func TestBufferLineSetCellOutOfBounds(t *testing.T) {
	l := NewBufferLine(2)
	cell := NewCell()
	cell.Char = "x"
	l.SetCell(-1, cell)
	l.SetCell(2, cell)

	for col := 0; col < 2; col++ {
		if l.Cell(col).HasContent() {
			t.Errorf("out-of-bounds SetCell wrote cell %d", col)
		}
	}
	if l.Cell(5) != nil {
		t.Error("Cell(5) != nil for a 2-column line")
	}
}

func TestBufferLineNoBgTrimmedLength(t *testing.T) {
	l := NewBufferLine(10)
	if got := l.NoBgTrimmedLength(); got != 0 {
		t.Errorf("blank line NoBgTrimmedLength() = %d, want 0", got)
	}

	l.SetString(2, "ab", NewCell())
	if got := l.NoBgTrimmedLength(); got != 4 {
		t.Errorf("NoBgTrimmedLength() = %d, want 4", got)
	}

	// A colored background counts even without content.
	bg := NewCell()
	bg.Bg = 4
	bg.BgMode = ColorModePalette16
	l.SetCell(6, bg)
	if got := l.NoBgTrimmedLength(); got != 7 {
		t.Errorf("NoBgTrimmedLength() = %d with colored blank, want 7", got)
	}
}

func TestBufferLineNoBgTrimmedLengthWide(t *testing.T) {
	l := NewBufferLine(10)
	l.SetString(0, "中", NewCell())
	if got := l.NoBgTrimmedLength(); got != 2 {
		t.Errorf("NoBgTrimmedLength() = %d for trailing wide char, want 2", got)
	}
}

func TestBufferLineTranslateToString(t *testing.T) {
	l := NewBufferLine(8)
	l.SetString(0, "a中b", NewCell())

	if got := l.TranslateToString(false, 0, -1); got != "a中b    " {
		t.Errorf("TranslateToString(false) = %q, want %q", got, "a中b    ")
	}
	if got := l.TranslateToString(true, 0, -1); got != "a中b" {
		t.Errorf("TranslateToString(true) = %q, want %q", got, "a中b")
	}
	if got := l.TranslateToString(true, 1, 4); got != "中b" {
		t.Errorf("TranslateToString(true, 1, 4) = %q, want %q", got, "中b")
	}
}
