package termrender

import "image/color"

// DecorationLayer places a decoration relative to the selection overlay.
type DecorationLayer string

const (
	// DecorationLayerBottom renders beneath the selection (the default).
	DecorationLayerBottom DecorationLayer = "bottom"
	// DecorationLayerTop renders above the selection.
	DecorationLayerTop DecorationLayer = "top"
	// DecorationLayerAny matches both layers in queries.
	DecorationLayerAny DecorationLayer = ""
)

// Decoration is an overlay handle covering a span of cells on one row.
// Decorations are compared by identity (pointer), never by content: the
// renderer detects "same decoration set as the previous cell" by
// comparing references, so callers must keep each handle stable for as
// long as it is registered.
type Decoration struct {
	Row int
	Col int
	// Width is the covered span in columns; values below 1 count as 1.
	Width int

	Layer DecorationLayer

	// Background and Foreground, when non-nil, override the cell colors
	// under the decoration.
	Background *color.RGBA
	Foreground *color.RGBA
}

func (d *Decoration) contains(col, row int) bool {
	w := d.Width
	if w < 1 {
		w = 1
	}
	return row == d.Row && col >= d.Col && col < d.Col+w
}

func (d *Decoration) matchesLayer(layer DecorationLayer) bool {
	if layer == DecorationLayerAny {
		return true
	}
	if d.Layer == DecorationLayerTop {
		return layer == DecorationLayerTop
	}
	return layer == DecorationLayerBottom
}

// DecorationQuery enumerates decorations active at a cell. Callbacks run
// in registration order; later decorations override earlier ones when
// both paint the same cell.
type DecorationQuery interface {
	// ForEachDecorationAtCell invokes cb once per decoration covering
	// (col, row) on the given layer. DecorationLayerAny matches both
	// layers.
	ForEachDecorationAtCell(col, row int, layer DecorationLayer, cb func(*Decoration))
}

// DecorationSet is an in-memory DecorationQuery that keeps registration
// order.
type DecorationSet struct {
	decorations []*Decoration
}

// NewDecorationSet creates an empty decoration registry.
func NewDecorationSet() *DecorationSet {
	return &DecorationSet{}
}

// Add registers a decoration. The pointer must stay stable while
// registered.
func (s *DecorationSet) Add(d *Decoration) {
	if d == nil {
		panic("termrender: nil decoration")
	}
	s.decorations = append(s.decorations, d)
}

// Remove unregisters a decoration by identity.
func (s *DecorationSet) Remove(d *Decoration) {
	for i, have := range s.decorations {
		if have == d {
			s.decorations = append(s.decorations[:i], s.decorations[i+1:]...)
			return
		}
	}
}

// Clear unregisters every decoration.
func (s *DecorationSet) Clear() {
	s.decorations = nil
}

// Len returns the number of registered decorations.
func (s *DecorationSet) Len() int {
	return len(s.decorations)
}

// ForEachDecorationAtCell invokes cb for each matching decoration in
// registration order.
func (s *DecorationSet) ForEachDecorationAtCell(col, row int, layer DecorationLayer, cb func(*Decoration)) {
	for _, d := range s.decorations {
		if d.contains(col, row) && d.matchesLayer(layer) {
			cb(d)
		}
	}
}

// NoopDecorations matches nothing.
type NoopDecorations struct{}

func (NoopDecorations) ForEachDecorationAtCell(col, row int, layer DecorationLayer, cb func(*Decoration)) {
}

// Ensure implementations satisfy their interfaces
var _ DecorationQuery = (*DecorationSet)(nil)
var _ DecorationQuery = NoopDecorations{}
