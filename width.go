package termrender

import (
	"io"
	"os"

	"github.com/unilibs/uniwidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string in columns.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// Measurer reports the natural rendered width of a glyph string in
// pixels at a bold/italic combination.
type Measurer interface {
	MeasureWidth(text string, bold, italic bool) float64
}

// FontMeasurer measures text against real font faces, one per style
// variant. Missing variants fall back to the regular face.
type FontMeasurer struct {
	regular    font.Face
	bold       font.Face
	italic     font.Face
	boldItalic font.Face
}

// NewFontMeasurer creates a measurer from up to four face variants.
// regular must be non-nil; nil variants reuse the regular face.
func NewFontMeasurer(regular, bold, italic, boldItalic font.Face) *FontMeasurer {
	if regular == nil {
		panic("termrender: nil regular font face")
	}
	if bold == nil {
		bold = regular
	}
	if italic == nil {
		italic = regular
	}
	if boldItalic == nil {
		boldItalic = bold
	}
	return &FontMeasurer{regular: regular, bold: bold, italic: italic, boldItalic: boldItalic}
}

// MeasureWidth returns the advance of text in pixels for the given style.
func (m *FontMeasurer) MeasureWidth(text string, bold, italic bool) float64 {
	face := m.regular
	switch {
	case bold && italic:
		face = m.boldItalic
	case bold:
		face = m.bold
	case italic:
		face = m.italic
	}
	return float64(font.MeasureString(face, text)) / 64
}

// MonospaceMeasurer assumes a perfectly monospaced font: every glyph
// string measures exactly its column width times CellWidth, regardless
// of style. Useful for tests and strict grid painters.
type MonospaceMeasurer struct {
	CellWidth float64
}

// MeasureWidth returns the column width of text times the cell width.
func (m MonospaceMeasurer) MeasureWidth(text string, bold, italic bool) float64 {
	return float64(uniwidth.StringWidth(text)) * m.CellWidth
}

var _ Measurer = (*FontMeasurer)(nil)
var _ Measurer = MonospaceMeasurer{}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

type widthKey struct {
	text   string
	bold   bool
	italic bool
}

// WidthCache memoizes measured glyph string widths per (text, bold,
// italic), used to compute letter-spacing corrections. The caller must
// Clear it whenever the font family, size or weight changes.
type WidthCache struct {
	measurer Measurer
	widths   map[widthKey]float64
}

// NewWidthCache creates a cache backed by the given measurer, which must
// be non-nil.
func NewWidthCache(m Measurer) *WidthCache {
	if m == nil {
		panic("termrender: nil measurer")
	}
	return &WidthCache{measurer: m, widths: make(map[widthKey]float64)}
}

// Measure returns the pixel width of text at the given style, measuring
// at most once per distinct (text, bold, italic) key.
func (c *WidthCache) Measure(text string, bold, italic bool) float64 {
	k := widthKey{text: text, bold: bold, italic: italic}
	if w, ok := c.widths[k]; ok {
		return w
	}
	w := c.measurer.MeasureWidth(text, bold, italic)
	c.widths[k] = w
	return w
}

// Len returns the number of memoized measurements.
func (c *WidthCache) Len() int {
	return len(c.widths)
}

// Clear drops all memoized widths. Call on any font configuration change.
func (c *WidthCache) Clear() {
	c.widths = make(map[widthKey]float64)
}

// SetMeasurer replaces the measurer and clears the cache.
func (c *WidthCache) SetMeasurer(m Measurer) {
	if m == nil {
		panic("termrender: nil measurer")
	}
	c.measurer = m
	c.Clear()
}
