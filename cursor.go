package termrender

// CursorStyle determines the cursor shape while the terminal is focused.
type CursorStyle int

const (
	CursorStyleBlock CursorStyle = iota
	CursorStyleUnderline
	CursorStyleBar
)

// InactiveCursorStyle determines the cursor shape while unfocused.
type InactiveCursorStyle int

const (
	InactiveCursorStyleOutline InactiveCursorStyle = iota
	InactiveCursorStyleBlock
	InactiveCursorStyleBar
	InactiveCursorStyleUnderline
	// InactiveCursorStyleNone hides the cursor while unfocused.
	InactiveCursorStyleNone
)

// CursorInfo describes the cursor on the row being rendered. Callers
// pass nil for every row that should not render a cursor: rows other
// than the cursor row, a hidden cursor, or a cursor that has not been
// initialized yet.
type CursorInfo struct {
	// Col is the cursor column. When it lies beyond the row's trimmed
	// length the renderer extends the row so the cursor cell renders.
	Col int
}
