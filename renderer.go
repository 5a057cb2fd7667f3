package termrender

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMinimumContrastRatio sets the minimum WCAG contrast ratio enforced
// between resolved foreground and background. A ratio of 1 (the default)
// disables enforcement. Dim cells target half the configured ratio.
func WithMinimumContrastRatio(ratio float64) Option {
	return func(r *Renderer) {
		if ratio < 1 {
			ratio = 1
		}
		r.minimumContrastRatio = ratio
	}
}

// WithBoldBrightColors makes bold cells with a standard palette color
// (index below 8) render with the bright variant (index + 8).
func WithBoldBrightColors(enabled bool) Option {
	return func(r *Renderer) {
		r.boldBrightColors = enabled
	}
}

// WithCursorStyle sets the cursor shape used while focused.
func WithCursorStyle(style CursorStyle) Option {
	return func(r *Renderer) {
		r.cursorStyle = style
	}
}

// WithCursorInactiveStyle sets the cursor shape used while unfocused.
func WithCursorInactiveStyle(style InactiveCursorStyle) Option {
	return func(r *Renderer) {
		r.cursorInactiveStyle = style
	}
}

// WithCursorBlink enables the blink class on the focused cursor cell.
func WithCursorBlink(enabled bool) Option {
	return func(r *Renderer) {
		r.cursorBlink = enabled
	}
}

// WithLetterSpacing sets the configured default letter spacing in
// pixels. Text runs whose computed spacing equals it carry no override.
func WithLetterSpacing(px float64) Option {
	return func(r *Renderer) {
		r.letterSpacing = px
	}
}

// WithDecorations sets the decoration query consulted per cell.
func WithDecorations(q DecorationQuery) Option {
	return func(r *Renderer) {
		if q == nil {
			panic("termrender: nil decoration query")
		}
		r.decorations = q
	}
}

// Renderer reconciles rows of cells into background and text runs. It is
// single-threaded and re-entrant across independent rows: the only
// mutable state shared between calls is the selection, the focus flag,
// and the two memoization caches (width and contrast).
//
// Set the selection and focus before a batch of row renders; do not
// mutate them mid-pass.
type Renderer struct {
	theme       *Theme
	widths      *WidthCache
	decorations DecorationQuery

	minimumContrastRatio float64
	boldBrightColors     bool
	cursorStyle          CursorStyle
	cursorInactiveStyle  InactiveCursorStyle
	cursorBlink          bool
	letterSpacing        float64

	focused   bool
	selection Selection
}

// New creates a renderer for the given theme and width cache, both of
// which must be non-nil. The renderer starts focused, with no selection,
// no decorations and contrast enforcement disabled.
func New(theme *Theme, widths *WidthCache, opts ...Option) *Renderer {
	if theme == nil {
		panic("termrender: nil theme")
	}
	if widths == nil {
		panic("termrender: nil width cache")
	}
	r := &Renderer{
		theme:                theme,
		widths:               widths,
		decorations:          NoopDecorations{},
		minimumContrastRatio: 1,
		focused:              true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetTheme replaces the resolved color set. The new theme brings fresh
// contrast caches with it, so no explicit invalidation is needed.
func (r *Renderer) SetTheme(theme *Theme) {
	if theme == nil {
		panic("termrender: nil theme")
	}
	r.theme = theme
}

// Theme returns the current resolved color set.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// SetFocused sets the terminal focus state, which selects the selection
// background variant and the cursor shape set.
func (r *Renderer) SetFocused(focused bool) {
	r.focused = focused
}

// SetSelection sets the selection consulted by subsequent row renders.
// Endpoints are normalized so the start precedes the end.
func (r *Renderer) SetSelection(start, end Position, columnMode bool) {
	if end.Before(start) {
		start, end = end, start
	}
	r.selection = Selection{Start: start, End: end, ColumnMode: columnMode, Active: true}
}

// ClearSelection deactivates the selection.
func (r *Renderer) ClearSelection() {
	r.selection = Selection{}
}

// Selection returns the current selection state.
func (r *Renderer) Selection() Selection {
	return r.selection
}

// cellColors holds the per-cell color resolution performed whenever a
// run opens.
type cellColors struct {
	fg     uint32
	fgMode ColorMode
	bg     uint32
	bgMode ColorMode

	inverse bool

	// bgColor is the resolved background before overrides.
	bgColor color.RGBA
	// bgOverride is the effective background for contrast: decoration or
	// selection override, or the dim-derived half-opacity variant.
	bgOverride *color.RGBA
	// fgOverride is a decoration or selection foreground override.
	fgOverride *color.RGBA

	// bgPaint is the background run's paint decision.
	bgPaint Paint
	// isTop marks the cell as rendering above the selection overlay.
	isTop bool
}

// resolveColors applies the inverse swap, decoration overrides, the
// selection overlay, and the dim background derivation, and decides the
// background paint.
func (r *Renderer) resolveColors(cell *Cell, decs []*Decoration, inSelection bool) cellColors {
	cc := cellColors{
		fg:      cell.Fg,
		fgMode:  cell.FgMode,
		bg:      cell.Bg,
		bgMode:  cell.BgMode,
		inverse: cell.HasFlag(CellFlagInverse),
	}
	if cc.inverse {
		cc.fg, cc.bg = cc.bg, cc.fg
		cc.fgMode, cc.bgMode = cc.bgMode, cc.fgMode
	}

	// Decoration overrides force true-color. The top flag only ever
	// flips to true within one cell's scan: a later bottom-layer
	// decoration never un-tops the cell.
	var paintOverride *color.RGBA
	for _, d := range decs {
		if d.Background != nil {
			c := *d.Background
			paintOverride = &c
			cc.bgOverride = &c
		}
		if d.Foreground != nil {
			c := *d.Foreground
			cc.fgOverride = &c
		}
		if d.Layer == DecorationLayerTop {
			cc.isTop = true
		}
	}

	// Selection paints above bottom-layer decorations.
	if !cc.isTop && inSelection {
		sel := r.theme.SelectionBackground
		if r.focused {
			sel.A = 0xff
		} else {
			sel = r.theme.SelectionInactiveBackground
		}
		c := sel
		paintOverride = &c
		cc.bgOverride = &c
		cc.isTop = true
		if r.theme.SelectionForeground != nil {
			fg := *r.theme.SelectionForeground
			cc.fgOverride = &fg
		}
	}

	switch cc.bgMode {
	case ColorModePalette16, ColorModePalette256:
		cc.bgColor = r.theme.PaletteColor(int(cc.bg))
	case ColorModeRGB:
		cc.bgColor = rgbColor(cc.bg)
	default:
		if cc.inverse {
			cc.bgColor = r.theme.Foreground
		} else {
			cc.bgColor = r.theme.Background
		}
	}

	switch {
	case paintOverride != nil:
		cc.bgPaint = Paint{Mode: PaintRGB, Color: *paintOverride}
	case cc.bgMode == ColorModePalette16 || cc.bgMode == ColorModePalette256:
		cc.bgPaint = Paint{Mode: PaintPalette, Index: int(cc.bg)}
	case cc.bgMode == ColorModeRGB:
		cc.bgPaint = Paint{Mode: PaintRGB, Color: cc.bgColor}
	case cc.inverse:
		cc.bgPaint = Paint{Mode: PaintInverted}
	default:
		cc.bgPaint = Paint{Mode: PaintDefault}
	}

	// The dim variant only feeds the contrast calculation; the
	// background run itself paints the un-dimmed color and the dimming
	// happens on the text layer via the dim class.
	if cc.bgOverride == nil && cell.HasFlag(CellFlagDim) {
		c := halfOpacity(cc.bgColor)
		cc.bgOverride = &c
	}

	return cc
}

// resolveForeground decides the text run's paint, including bold
// brightening and minimum-contrast adjustment.
func (r *Renderer) resolveForeground(cell *Cell, cc *cellColors) Paint {
	bold := cell.HasFlag(CellFlagBold)

	var paint Paint
	var fgColor color.RGBA
	if cc.fgOverride != nil {
		fgColor = *cc.fgOverride
		paint = Paint{Mode: PaintRGB, Color: fgColor}
	} else {
		switch cc.fgMode {
		case ColorModePalette16, ColorModePalette256:
			idx := int(cc.fg)
			if r.boldBrightColors && bold && idx < 8 {
				idx += 8
			}
			fgColor = r.theme.PaletteColor(idx)
			paint = Paint{Mode: PaintPalette, Index: idx}
		case ColorModeRGB:
			fgColor = rgbColor(cc.fg)
			paint = Paint{Mode: PaintRGB, Color: fgColor}
		default:
			if cc.inverse {
				fgColor = r.theme.Background
				paint = Paint{Mode: PaintInverted}
			} else {
				fgColor = r.theme.Foreground
				paint = Paint{Mode: PaintDefault}
			}
		}
	}

	// An adjusted color wins over any other foreground decision.
	if adjusted := r.adjustContrast(cell, cc, fgColor); adjusted != nil {
		paint = Paint{Mode: PaintRGB, Color: *adjusted}
	}
	return paint
}

// adjustContrast returns the minimum-contrast foreground adjustment for
// the cell, or nil when none applies.
func (r *Renderer) adjustContrast(cell *Cell, cc *cellColors, fgColor color.RGBA) *color.RGBA {
	if r.minimumContrastRatio <= 1 {
		return nil
	}
	code, _ := utf8.DecodeRuneInString(cell.Char)
	if contrastExempt(code) {
		return nil
	}

	cache := r.theme.ContrastCache(cell.HasFlag(CellFlagDim))
	bgKey := attrKey(cc.bg, cc.bgMode, cc.inverse, false)
	fgKey := attrKey(cc.fg, cc.fgMode, cc.inverse, cell.HasFlag(CellFlagBold))

	// Overrides are per-cell and not safe to cache by the base pair:
	// skip the lookup and store under the override-aware keys instead.
	if cc.bgOverride == nil && cc.fgOverride == nil {
		if adjusted, ok := cache.Color(bgKey, fgKey); ok {
			if adjusted == nil {
				return nil
			}
			c := *adjusted
			return &c
		}
	}

	ratio := r.minimumContrastRatio
	if cell.HasFlag(CellFlagDim) {
		ratio /= 2
	}
	bg := cc.bgColor
	if cc.bgOverride != nil {
		bg = *cc.bgOverride
		bgKey = packRGBA(bg)
	}
	if cc.fgOverride != nil {
		fgKey = packRGBA(fgColor)
	}

	adjusted := ensureContrast(bg, fgColor, ratio)
	cache.SetColor(bgKey, fgKey, adjusted)
	if adjusted == nil {
		return nil
	}
	c := *adjusted
	return &c
}

// resolveUnderlineColor resolves an explicit underline color attribute,
// or nil when the underline uses the foreground.
func (r *Renderer) resolveUnderlineColor(cell *Cell) *color.RGBA {
	var c color.RGBA
	switch cell.UnderlineColorMode {
	case ColorModeRGB:
		c = rgbColor(cell.UnderlineColor)
	case ColorModePalette16, ColorModePalette256:
		idx := int(cell.UnderlineColor)
		if r.boldBrightColors && cell.HasFlag(CellFlagBold) && idx < 8 {
			idx += 8
		}
		c = r.theme.PaletteColor(idx)
	default:
		return nil
	}
	return &c
}

// attrKey packs a raw color attribute into a contrast-cache key. The
// flag bits that change resolution (inverse swap, bold brightening) are
// part of the key so distinct pairs never alias.
func attrKey(value uint32, mode ColorMode, inverse, bold bool) uint32 {
	k := value&0xffffff | uint32(mode)<<24
	if inverse {
		k |= 1 << 26
	}
	if bold {
		k |= 1 << 27
	}
	return k
}

// sameDecorations compares decoration sets by identity: same length,
// same references, same order.
func sameDecorations(a, b []*Decoration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// textRunState tracks the open text run during a row pass.
type textRunState struct {
	open bool
	col  int
	text strings.Builder
	run  TextRun

	// merge keys
	fg          uint32
	fgMode      ColorMode
	bg          uint32
	bgMode      ColorMode
	flags       CellFlags
	ext         uint32
	inSelection bool
	linkHover   bool
	decorations []*Decoration
	spacing     float64

	// sealed runs never extend: a cursor box or a shaped joined unit
	// must stay exactly one unit wide.
	sealed bool
}

// bgRunState tracks the open background run during a row pass.
type bgRunState struct {
	open  bool
	col   int
	cells int
	paint Paint

	// merge keys: the post-inverse effective background attribute.
	bg          uint32
	bgMode      ColorMode
	inverse     bool
	inSelection bool
	decorations []*Decoration
}

// RenderRow reconciles one row of cells into ordered runs: every
// background run first, then every text run, each in left-to-right
// column order.
//
// line must be non-nil. cursor is nil unless this row should render a
// cursor cell. cellWidth is the cell width in pixels. joined lists the
// row's joined ranges (sorted, non-overlapping); it is read, never
// mutated. linkStart and linkEnd bound the hovered link columns as a
// closed interval; pass -1 for both when no link is hovered.
func (r *Renderer) RenderRow(line Line, row int, cursor *CursorInfo, cellWidth float64, joined []JoinedRange, linkStart, linkEnd int) *RowRuns {
	if line == nil {
		panic("termrender: nil line")
	}

	// Trailing default-background cells are trimmed, unless the row is
	// part of the selection (the overlay must cover the full row) or the
	// cursor sits beyond the trimmed length.
	length := line.NoBgTrimmedLength()
	if r.selection.ContainsRow(row) {
		length = line.Len()
	} else if cursor != nil && cursor.Col >= length {
		length = cursor.Col + 1
	}
	if max := line.Len(); length > max {
		length = max
	}

	runs := &RowRuns{}
	var ts textRunState
	var bs bgRunState

	closeText := func() {
		if !ts.open {
			return
		}
		run := ts.run
		run.Col = ts.col
		run.Text = ts.text.String()
		runs.Texts = append(runs.Texts, run)
		ts = textRunState{}
	}
	closeBg := func() {
		if !bs.open {
			return
		}
		runs.Backgrounds = append(runs.Backgrounds, BackgroundRun{
			Col:     bs.col,
			Cells:   bs.cells,
			WidthPx: float64(bs.cells) * cellWidth,
			Paint:   bs.paint,
		})
		bs = bgRunState{}
	}

	linkActive := linkStart != -1 && linkEnd != -1
	jidx := 0

	for x := 0; x < length; x++ {
		var cell Cell
		line.LoadCell(x, &cell)
		if cell.Width == 0 {
			// owned by the wide cell to its left
			continue
		}

		cursorCol := -1
		if cursor != nil {
			cursorCol = cursor.Col
		}

		width := cell.Width
		isJoined := false
		nextX := x
		if jidx < len(joined) && joined[jidx].Start == x {
			rg := joined[jidx]
			jidx++
			isJoined = true
			cell.Char = line.TranslateToString(true, rg.Start, rg.End)
			width = rg.Width()
			cell.Width = width
			if cursorCol >= rg.Start && cursorCol < rg.End {
				// the whole shaped unit gets the cursor box
				cursorCol = rg.Start
			}
			nextX = rg.End - 1
		}

		isCursorCell := cursorCol == x
		inSelection := r.selection.Contains(x, row)
		isLinkHover := linkActive && x >= linkStart && x <= linkEnd

		var decs []*Decoration
		r.decorations.ForEachDecorationAtCell(x, row, DecorationLayerAny, func(d *Decoration) {
			decs = append(decs, d)
		})

		bold := cell.HasFlag(CellFlagBold)
		italic := cell.HasFlag(CellFlagItalic)

		text := cell.Char
		if text == "" || cell.HasFlag(CellFlagInvisible) {
			text = " "
		}
		if text == " " && cell.Flags&(CellFlagUnderline|CellFlagOverline) != 0 {
			// a regular space may be collapsed by the text layer; a
			// non-breaking space keeps the decoration line visible
			text = "\u00a0"
		}

		spacing := float64(width)*cellWidth - r.widths.Measure(text, bold, italic)

		textMerge := ts.open && !ts.sealed &&
			!isCursorCell && !isJoined &&
			((r.theme.SelectionForeground != nil && ts.inSelection && inSelection) ||
				(cell.Fg == ts.fg && cell.FgMode == ts.fgMode)) &&
			cell.Bg == ts.bg && cell.BgMode == ts.bgMode &&
			cell.Flags == ts.flags &&
			cell.Ext == ts.ext &&
			isLinkHover == ts.linkHover &&
			spacing == ts.spacing &&
			sameDecorations(decs, ts.decorations)

		bgInverse := cell.HasFlag(CellFlagInverse)
		ebg, ebgMode := cell.Bg, cell.BgMode
		if bgInverse {
			ebg, ebgMode = cell.Fg, cell.FgMode
		}
		bgMerge := bs.open &&
			sameDecorations(decs, bs.decorations) &&
			((bs.inSelection && inSelection) ||
				(!bs.inSelection && !inSelection &&
					ebg == bs.bg && ebgMode == bs.bgMode && bgInverse == bs.inverse))

		var cc cellColors
		if !textMerge || !bgMerge {
			cc = r.resolveColors(&cell, decs, inSelection)
		}

		if bgMerge {
			bs.cells += width
		} else {
			closeBg()
			bs.open = true
			bs.col = x
			bs.cells = width
			bs.paint = cc.bgPaint
			bs.bg = ebg
			bs.bgMode = ebgMode
			bs.inverse = bgInverse
			bs.inSelection = inSelection
			bs.decorations = decs
		}

		if textMerge {
			ts.text.WriteString(text)
		} else {
			closeText()
			ts.open = true
			ts.col = x
			ts.fg = cell.Fg
			ts.fgMode = cell.FgMode
			ts.bg = cell.Bg
			ts.bgMode = cell.BgMode
			ts.flags = cell.Flags
			ts.ext = cell.Ext
			ts.inSelection = inSelection
			ts.linkHover = isLinkHover
			ts.decorations = decs
			ts.spacing = spacing
			ts.sealed = isCursorCell || isJoined

			var run TextRun
			var classes []string
			if bold {
				classes = append(classes, ClassBold)
			}
			if cell.HasFlag(CellFlagDim) {
				classes = append(classes, ClassDim)
			}
			if italic {
				classes = append(classes, ClassItalic)
			}
			if cell.HasFlag(CellFlagUnderline) {
				classes = append(classes, underlineClass(cell.UnderlineStyle))
				if cell.UnderlineColorMode != ColorModeDefault {
					run.UnderlineColor = r.resolveUnderlineColor(&cell)
				}
			}
			if cell.HasFlag(CellFlagOverline) {
				classes = append(classes, ClassOverline)
			}
			if cell.HasFlag(CellFlagStrike) {
				classes = append(classes, ClassStrike)
			}
			if isLinkHover {
				// hover always shows a plain underline, over any
				// underline sub-style
				run.TextDecoration = DecorationUnderline
			}
			if isCursorCell {
				classes = append(classes, ClassCursor)
				if r.focused {
					if r.cursorBlink {
						classes = append(classes, ClassCursorBlink)
					}
					switch r.cursorStyle {
					case CursorStyleBar:
						classes = append(classes, ClassCursorBar)
					case CursorStyleUnderline:
						classes = append(classes, ClassCursorUnderline)
					default:
						classes = append(classes, ClassCursorBlock)
					}
				} else {
					switch r.cursorInactiveStyle {
					case InactiveCursorStyleOutline:
						classes = append(classes, ClassCursorOutline)
					case InactiveCursorStyleBlock:
						classes = append(classes, ClassCursorBlock)
					case InactiveCursorStyleBar:
						classes = append(classes, ClassCursorBar)
					case InactiveCursorStyleUnderline:
						classes = append(classes, ClassCursorUnderline)
					}
				}
			}
			if cc.isTop {
				classes = append(classes, ClassTopLayer)
			}

			run.Paint = r.resolveForeground(&cell, &cc)
			if spacing != r.letterSpacing {
				run.LetterSpacing = spacing
				run.HasLetterSpacing = true
			}
			run.Class = strings.Join(classes, " ")

			ts.run = run
			ts.text.WriteString(text)
		}

		x = nextX
	}

	closeText()
	closeBg()
	return runs
}
