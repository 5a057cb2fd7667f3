package termrender

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ContrastCache memoizes minimum-contrast foreground adjustments, keyed
// by an ordered (background, foreground) pair of raw color values. A
// stored nil records that no adjustment was needed or possible, so the
// luminance search is not repeated for that pair.
//
// Two instances exist per Theme: one for normal cells and one for dim
// cells, which target half the configured ratio.
type ContrastCache struct {
	colors map[uint64]*color.RGBA
}

// NewContrastCache creates an empty contrast cache.
func NewContrastCache() *ContrastCache {
	return &ContrastCache{colors: make(map[uint64]*color.RGBA)}
}

// Color returns the memoized adjustment for the pair, if any. A nil
// adjusted color with ok true means "no adjustment" was cached.
func (c *ContrastCache) Color(bg, fg uint32) (adjusted *color.RGBA, ok bool) {
	adjusted, ok = c.colors[contrastKey(bg, fg)]
	return adjusted, ok
}

// SetColor stores the adjustment for the pair. Pass nil to record that
// the pair needs no adjustment.
func (c *ContrastCache) SetColor(bg, fg uint32, adjusted *color.RGBA) {
	c.colors[contrastKey(bg, fg)] = adjusted
}

// Len returns the number of memoized pairs.
func (c *ContrastCache) Len() int {
	return len(c.colors)
}

// Clear drops all memoized adjustments. Called on theme change.
func (c *ContrastCache) Clear() {
	c.colors = make(map[uint64]*color.RGBA)
}

func contrastKey(bg, fg uint32) uint64 {
	return uint64(bg)<<32 | uint64(fg)
}

// relativeLuminance returns the WCAG relative luminance of c. Alpha is
// ignored: overlay opacity never changes which text color reads best.
func relativeLuminance(c color.RGBA) float64 {
	lr, lg, lb := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// contrastRatio returns the WCAG contrast ratio between two relative
// luminances, always >= 1.
func contrastRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ensureContrast returns a foreground adjusted to reach ratio against bg,
// or nil when the pair already satisfies it. When neither darkening nor
// brightening can reach the ratio, the closer of the two extremes wins.
func ensureContrast(bg, fg color.RGBA, ratio float64) *color.RGBA {
	bgL := relativeLuminance(bg)
	fgL := relativeLuminance(fg)
	if contrastRatio(bgL, fgL) >= ratio {
		return nil
	}

	if fgL < bgL {
		adjusted := reduceLuminance(bg, fg, ratio)
		if contrastRatio(bgL, relativeLuminance(adjusted)) < ratio {
			alt := increaseLuminance(bg, fg, ratio)
			if contrastRatio(bgL, relativeLuminance(alt)) > contrastRatio(bgL, relativeLuminance(adjusted)) {
				adjusted = alt
			}
		}
		return &adjusted
	}

	adjusted := increaseLuminance(bg, fg, ratio)
	if contrastRatio(bgL, relativeLuminance(adjusted)) < ratio {
		alt := reduceLuminance(bg, fg, ratio)
		if contrastRatio(bgL, relativeLuminance(alt)) > contrastRatio(bgL, relativeLuminance(adjusted)) {
			adjusted = alt
		}
	}
	return &adjusted
}

// reduceLuminance darkens fg in 10% channel steps until it reaches ratio
// against bg or hits black.
func reduceLuminance(bg, fg color.RGBA, ratio float64) color.RGBA {
	bgL := relativeLuminance(bg)
	r, g, b := int(fg.R), int(fg.G), int(fg.B)
	for (r > 0 || g > 0 || b > 0) &&
		contrastRatio(bgL, relativeLuminance(color.RGBA{uint8(r), uint8(g), uint8(b), 255})) < ratio {
		r -= int(math.Ceil(float64(r) * 0.1))
		g -= int(math.Ceil(float64(g) * 0.1))
		b -= int(math.Ceil(float64(b) * 0.1))
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// increaseLuminance brightens fg in 10% channel steps until it reaches
// ratio against bg or hits white.
func increaseLuminance(bg, fg color.RGBA, ratio float64) color.RGBA {
	bgL := relativeLuminance(bg)
	r, g, b := int(fg.R), int(fg.G), int(fg.B)
	for (r < 255 || g < 255 || b < 255) &&
		contrastRatio(bgL, relativeLuminance(color.RGBA{uint8(r), uint8(g), uint8(b), 255})) < ratio {
		r += int(math.Ceil(float64(255-r) * 0.1))
		g += int(math.Ceil(float64(255-g) * 0.1))
		b += int(math.Ceil(float64(255-b) * 0.1))
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// contrastExempt reports whether the codepoint relies on exact color
// matching with adjacent cells and must not be contrast-adjusted:
// box/block-drawing glyphs and Powerline glyphs.
func contrastExempt(r rune) bool {
	return (r >= 0x2500 && r <= 0x259F) || (r >= 0xE0A0 && r <= 0xE0D6)
}
