package termrender

// ColorMode identifies how a raw color attribute value is encoded.
type ColorMode uint8

const (
	// ColorModeDefault uses the terminal's default foreground or background.
	ColorModeDefault ColorMode = iota
	// ColorModePalette16 indexes one of the 16 standard ANSI colors.
	ColorModePalette16
	// ColorModePalette256 indexes the 256-color palette.
	ColorModePalette256
	// ColorModeRGB encodes a 24-bit true color as 0xRRGGBB.
	ColorModeRGB
)

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagOverline
	CellFlagStrike
	CellFlagInverse
	CellFlagInvisible
)

// UnderlineStyle selects the underline variant when CellFlagUnderline is set.
type UnderlineStyle uint8

const (
	UnderlineStyleSingle UnderlineStyle = iota
	UnderlineStyleDouble
	UnderlineStyleCurly
	UnderlineStyleDotted
	UnderlineStyleDashed
)

// Cell is a view of one grid column, materialized from line storage.
// Views are transient: the renderer loads a fresh value every iteration
// and never retains one across iterations.
//
// Wide characters (2 columns) are followed by a spacer cell with Width 0
// in the second position; spacers are never rendered on their own.
type Cell struct {
	// Char is the cell text: one grapheme cluster, or "" for a blank cell.
	Char string

	// Width is the display width in columns: 0, 1 or 2. Zero means the
	// column is owned by the wide cell to its left.
	Width int

	// Fg and Bg are the raw color attribute values, interpreted per the
	// corresponding mode: a palette index for the palette modes, a packed
	// 0xRRGGBB value for ColorModeRGB, unused for ColorModeDefault.
	Fg     uint32
	FgMode ColorMode
	Bg     uint32
	BgMode ColorMode

	Flags CellFlags

	// UnderlineStyle applies when CellFlagUnderline is set.
	UnderlineStyle UnderlineStyle

	// UnderlineColor is the underline color attribute. An
	// UnderlineColorMode of ColorModeDefault means "use the foreground".
	UnderlineColor     uint32
	UnderlineColorMode ColorMode

	// Ext changes whenever any rarely-changing extended attribute changes.
	// It is compared as a fast equality probe during run merging instead
	// of diffing the extended attributes themselves.
	Ext uint32
}

// NewCell creates a blank cell with default colors and width 1.
func NewCell() Cell {
	return Cell{Width: 1}
}

// Reset clears all attributes and returns the cell to the blank default state.
func (c *Cell) Reset() {
	*c = NewCell()
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsWide returns true if this cell contains a wide character (CJK, emoji)
// that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.Width == 2
}

// IsWideSpacer returns true if this is the second column of a wide
// character (skipped during rendering).
func (c *Cell) IsWideSpacer() bool {
	return c.Width == 0
}

// HasContent returns true if the cell displays something other than a blank.
func (c *Cell) HasContent() bool {
	return c.Char != "" && c.Char != " "
}
