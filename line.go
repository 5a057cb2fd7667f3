package termrender

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Line is the read-only view of one row of cells consumed by the
// renderer. Implementations are typically backed by terminal buffer
// storage; BufferLine below is a standalone in-memory implementation.
type Line interface {
	// Len returns the logical length in columns.
	Len() int
	// LoadCell materializes the cell at col into out. col must be in
	// [0, Len()).
	LoadCell(col int, out *Cell)
	// NoBgTrimmedLength returns the length ignoring trailing cells that
	// have neither content nor an explicit background.
	NoBgTrimmedLength() int
	// TranslateToString returns the text of columns [startCol, endCol),
	// skipping wide-char spacers and mapping blank cells to spaces.
	// trimRight drops trailing spaces. A negative endCol means Len().
	TranslateToString(trimRight bool, startCol, endCol int) string
}

// BufferLine stores one row of cells in memory.
type BufferLine struct {
	cells []Cell
}

// NewBufferLine creates a line of cols blank cells.
func NewBufferLine(cols int) *BufferLine {
	l := &BufferLine{cells: make([]Cell, cols)}
	for i := range l.cells {
		l.cells[i] = NewCell()
	}
	return l
}

// Len returns the line width in columns.
func (l *BufferLine) Len() int {
	return len(l.cells)
}

// Cell returns a pointer to the cell at col, or nil if out of bounds.
func (l *BufferLine) Cell(col int) *Cell {
	if col < 0 || col >= len(l.cells) {
		return nil
	}
	return &l.cells[col]
}

// SetCell replaces the cell at col. Wide cells get a spacer written into
// the following column, carrying the same attributes with no content.
// Does nothing if col is out of bounds.
func (l *BufferLine) SetCell(col int, cell Cell) {
	if col < 0 || col >= len(l.cells) {
		return
	}
	l.cells[col] = cell
	if cell.Width == 2 && col+1 < len(l.cells) {
		spacer := cell
		spacer.Char = ""
		spacer.Width = 0
		l.cells[col+1] = spacer
	}
}

// SetString writes s starting at col, one grapheme cluster per cell so
// combining marks and emoji sequences stay joined, with cluster widths
// from the display-width tables. Attributes come from tmpl. Returns the
// column after the last written cell.
func (l *BufferLine) SetString(col int, s string, tmpl Cell) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		if w > 2 {
			w = 2
		}
		if col+w > len(l.cells) {
			break
		}
		cell := tmpl
		cell.Char = cluster
		cell.Width = w
		l.SetCell(col, cell)
		col += w
	}
	return col
}

// LoadCell copies the cell at col into out.
func (l *BufferLine) LoadCell(col int, out *Cell) {
	*out = l.cells[col]
}

// NoBgTrimmedLength returns the length ignoring trailing cells with no
// content and a default background.
func (l *BufferLine) NoBgTrimmedLength() int {
	for col := len(l.cells) - 1; col >= 0; col-- {
		c := &l.cells[col]
		if c.HasContent() || c.BgMode != ColorModeDefault {
			if c.Width == 2 {
				return col + 2
			}
			return col + 1
		}
	}
	return 0
}

// TranslateToString returns the text of columns [startCol, endCol).
func (l *BufferLine) TranslateToString(trimRight bool, startCol, endCol int) string {
	if startCol < 0 {
		startCol = 0
	}
	if endCol < 0 || endCol > len(l.cells) {
		endCol = len(l.cells)
	}
	var sb strings.Builder
	for col := startCol; col < endCol; col++ {
		c := &l.cells[col]
		if c.Width == 0 {
			continue
		}
		if c.Char == "" {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(c.Char)
		}
	}
	s := sb.String()
	if trimRight {
		s = strings.TrimRight(s, " ")
	}
	return s
}

var _ Line = (*BufferLine)(nil)
