// Package termrender reconciles rows of terminal cells into minimal
// drawing instructions.
//
// A row of styled cells is turned into two ordered lists of run
// descriptors: background runs (a column span painted one color) and
// text runs (a string with a foreground paint, style classes and
// optional letter spacing). Adjacent cells with compatible styling
// collapse into a single run, so a row of uniform text yields one
// background run and one text run no matter how many columns it spans.
//
// # Quick Start
//
// Create a renderer from a theme and a width cache, then reconcile rows:
//
//	theme := termrender.NewTheme()
//	widths := termrender.NewWidthCache(termrender.MonospaceMeasurer{CellWidth: 9})
//	r := termrender.New(theme, widths)
//
//	line := termrender.NewBufferLine(80)
//	line.SetString(0, "hello", termrender.NewCell())
//
//	runs := r.RenderRow(line, 0, nil, 9, nil, -1, -1)
//	for _, bg := range runs.Backgrounds {
//	    // paint bg.WidthPx pixels starting at column bg.Col
//	}
//	for _, t := range runs.Texts {
//	    // draw t.Text at column t.Col with t.Paint and t.Class
//	}
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Renderer]: reconciles one row per call via [Renderer.RenderRow]
//   - [Line]: read access to a row of cells; [BufferLine] is the
//     built-in implementation
//   - [Cell]: a single character with colors and attribute flags
//   - [RowRuns]: the output, background runs first, then text runs
//   - [Theme]: resolved colors plus the contrast caches
//
// # Selection, Cursor and Decorations
//
// The renderer overlays three optional layers on top of cell styling.
// A selection (stream or column mode) repaints cell backgrounds and
// keeps selected spans mergeable across attribute changes. A cursor,
// passed per row as a [CursorInfo], pins its cell into a dedicated
// single-cell run carrying shape classes. Decorations, supplied by a
// [DecorationQuery] such as [DecorationSet], override cell colors and
// can claim the layer above the selection.
//
// # Wide Characters and Joined Ranges
//
// Wide characters occupy two columns: the spacer cell after them emits
// nothing, and the run bookkeeping advances by the full display width.
// Joined ranges collapse several cells into one shaped unit (for
// ligatures or emoji sequences found by a [Joiner] such as
// [SequenceJoiner]); the unit renders as a single sealed text run.
//
// # Minimum Contrast
//
// With [WithMinimumContrastRatio] above 1, the renderer nudges
// foreground colors toward the WCAG target ratio against the resolved
// background, memoizing results per color pair in the theme's contrast
// caches. Box-drawing and Powerline glyphs are exempt so adjacent
// runs of pseudo-graphics keep their exact colors.
package termrender
