package termrender

// Position identifies a cell location in the terminal grid (0-based).
type Position struct {
	Row int
	Col int
}

// Before returns true if this position comes before other in reading order (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Row < other.Row {
		return true
	}
	if p.Row == other.Row && p.Col < other.Col {
		return true
	}
	return false
}

// Equal returns true if both row and column match.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Selection describes the active text selection consulted during row
// rendering. Start and End are normalized so Start.Row <= End.Row; in
// column mode the lesser column is treated as the left edge regardless
// of which endpoint carries it.
type Selection struct {
	Start Position
	End   Position
	// ColumnMode selects rectangular (block) selection.
	ColumnMode bool
	Active     bool
}

// ContainsRow reports whether row intersects the selection. Selected
// rows render at full logical length so the selection background covers
// trailing blanks.
func (s Selection) ContainsRow(row int) bool {
	return s.Active && row >= s.Start.Row && row <= s.End.Row
}

// Contains reports whether the cell at (col, row) is inside the
// selection.
//
// In column mode the selection is a rectangle spanning the normalized
// column interval on every selected row. In stream mode a cell is
// selected on fully-enclosed middle rows, within [Start.Col, End.Col) on
// a single-row selection, at or after Start.Col on the first row, and
// before End.Col on the last row.
func (s Selection) Contains(col, row int) bool {
	if !s.Active {
		return false
	}
	if s.ColumnMode {
		left, right := s.Start.Col, s.End.Col
		if right < left {
			left, right = right, left
		}
		return row >= s.Start.Row && row <= s.End.Row && col >= left && col < right
	}
	switch {
	case row < s.Start.Row || row > s.End.Row:
		return false
	case row > s.Start.Row && row < s.End.Row:
		return true
	case s.Start.Row == s.End.Row:
		return col >= s.Start.Col && col < s.End.Col
	case row == s.Start.Row:
		return col >= s.Start.Col
	default:
		return col < s.End.Col
	}
}
