package termrender

import "image/color"

// PaintMode identifies how a run's color reaches the painter.
type PaintMode uint8

const (
	// PaintDefault relies on the ambient terminal default: no style
	// class, no explicit color.
	PaintDefault PaintMode = iota
	// PaintPalette selects a palette entry by index, typically mapped to
	// a palette style class by the painter.
	PaintPalette
	// PaintRGB carries an explicit color.
	PaintRGB
	// PaintInverted selects the inverted default: the default-mode color
	// under the inverse attribute.
	PaintInverted
)

// Paint is a resolved color decision for one run.
type Paint struct {
	Mode PaintMode
	// Index is the palette index when Mode is PaintPalette.
	Index int
	// Color is the explicit color when Mode is PaintRGB.
	Color color.RGBA
}

// BackgroundRun paints a horizontal span on the background layer.
// Background runs are positionally independent of text runs; their span
// is measured in cells times the cell pixel width.
type BackgroundRun struct {
	// Col is the starting column.
	Col int
	// Cells is the span in cells.
	Cells int
	// WidthPx is Cells times the cell pixel width, fixed when the run is
	// closed.
	WidthPx float64

	Paint Paint
}

// TextRun paints one unit of possibly-merged characters on the text
// layer.
type TextRun struct {
	// Col is the starting column.
	Col int
	// Text is the merged cell content.
	Text string
	// Class is the joined style class list (CSS-like flags: bold, dim,
	// underline variants, cursor classes, and so on).
	Class string

	// Paint is the resolved foreground.
	Paint Paint

	// LetterSpacing applies only when HasLetterSpacing is set; runs at
	// the configured default spacing carry no override.
	LetterSpacing    float64
	HasLetterSpacing bool

	// UnderlineColor, when non-nil, overrides the underline decoration
	// color.
	UnderlineColor *color.RGBA

	// TextDecoration, when non-empty, forces a plain text decoration.
	// Set to DecorationUnderline while the pointer hovers a link.
	TextDecoration string
}

// RowRuns is the ordered render output for one row: every background run
// first, then every text run, each list in left-to-right column order.
// The painter composites the background layer beneath the text layer.
type RowRuns struct {
	Backgrounds []BackgroundRun
	Texts       []TextRun
}

// Style class names attached to text runs.
const (
	ClassBold            = "bold"
	ClassDim             = "dim"
	ClassItalic          = "italic"
	ClassOverline        = "overline"
	ClassStrike          = "strike"
	ClassTopLayer        = "decoration-top"
	ClassCursor          = "cursor"
	ClassCursorBlink     = "cursor-blink"
	ClassCursorBlock     = "cursor-block"
	ClassCursorBar       = "cursor-bar"
	ClassCursorUnderline = "cursor-underline"
	ClassCursorOutline   = "cursor-outline"
)

// DecorationUnderline is the forced text-decoration value for link hover.
const DecorationUnderline = "underline"

// underlineClass returns the class for an underline sub-style.
func underlineClass(s UnderlineStyle) string {
	switch s {
	case UnderlineStyleDouble:
		return "underline-double"
	case UnderlineStyleCurly:
		return "underline-curly"
	case UnderlineStyleDotted:
		return "underline-dotted"
	case UnderlineStyleDashed:
		return "underline-dashed"
	default:
		return "underline-single"
	}
}
