package termrender

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231) and grayscale (232-255) are generated below.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// DefaultSelectionBackground is the default focused selection overlay color.
var DefaultSelectionBackground = color.RGBA{58, 61, 65, 255}

// DefaultSelectionInactiveBackground is the default unfocused selection
// overlay color.
var DefaultSelectionInactiveBackground = color.RGBA{58, 61, 65, 128}

// Theme is a resolved color set: the 256-color palette, the terminal
// defaults, and the selection colors. A Theme owns the two contrast
// caches, so replacing the Theme invalidates every memoized contrast
// adjustment along with it.
type Theme struct {
	Palette [256]color.RGBA

	Foreground color.RGBA
	Background color.RGBA
	Cursor     color.RGBA

	// SelectionBackground paints selected cells while the terminal is
	// focused; it is forced opaque at render time.
	SelectionBackground color.RGBA
	// SelectionInactiveBackground paints selected cells while unfocused.
	SelectionInactiveBackground color.RGBA
	// SelectionForeground, when non-nil, replaces the foreground of
	// selected cells.
	SelectionForeground *color.RGBA

	contrast    *ContrastCache
	dimContrast *ContrastCache
}

// NewTheme creates a theme with the default palette and colors and fresh
// contrast caches.
func NewTheme() *Theme {
	return &Theme{
		Palette:                     DefaultPalette,
		Foreground:                  DefaultForeground,
		Background:                  DefaultBackground,
		Cursor:                      DefaultCursorColor,
		SelectionBackground:         DefaultSelectionBackground,
		SelectionInactiveBackground: DefaultSelectionInactiveBackground,
		contrast:                    NewContrastCache(),
		dimContrast:                 NewContrastCache(),
	}
}

// ContrastCache returns the contrast cache for the given intensity: the
// half-contrast cache for dim cells, the normal cache otherwise.
func (t *Theme) ContrastCache(dim bool) *ContrastCache {
	if dim {
		return t.dimContrast
	}
	return t.contrast
}

// ClearContrastCaches drops all memoized contrast adjustments. Call this
// after mutating the theme colors in place; replacing the whole Theme
// does it implicitly.
func (t *Theme) ClearContrastCaches() {
	t.contrast.Clear()
	t.dimContrast.Clear()
}

// PaletteColor returns the palette entry at idx, or the default
// foreground if idx is out of range.
func (t *Theme) PaletteColor(idx int) color.RGBA {
	if idx < 0 || idx >= len(t.Palette) {
		return t.Foreground
	}
	return t.Palette[idx]
}

// rgbColor decodes a 24-bit 0xRRGGBB attribute value.
func rgbColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// packRGBA packs a color into a 32-bit cache key.
func packRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// halfOpacity derives the dim-cell background variant: the channels stay
// untouched, only alpha is halved.
func halfOpacity(c color.RGBA) color.RGBA {
	c.A /= 2
	return c
}
