package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/ironsheep/paint-bucket-mcp/internal/paint"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components and straight
// (non-premultiplied) alpha.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// Hex is what ParseColor accepts back, so a sampled color can be passed
// straight to a fill as the replacement.
type ColorResult struct {
	Hex    string    `json:"hex"`         // "#RRGGBBAA"
	RGBA   RGBAColor `json:"rgba"`        // 8-bit components with alpha
	HSL    HSLColor  `json:"hsl"`         // HSL representation (alpha ignored)
	Packed uint32    `json:"packed_argb"` // 0xAARRGGBB as stored in a fill buffer
}

func newColorResult(p paint.Pixel) *ColorResult {
	h, s, l := colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}.Hsl()

	return &ColorResult{
		Hex:    p.String(),
		RGBA:   RGBAColor{R: p.R, G: p.G, B: p.B, A: p.A},
		HSL:    HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Packed: p.Uint32(),
	}
}

// SampleColor returns the color at a pixel.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Coordinates are relative to the image's top-left corner, the same
// convention FloodFill uses for its seed. The sampled color is the one a
// fill seeded at (x, y) would treat as its target.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y))
	return newColorResult(paint.FromColor(c)), nil
}

// ParseColor parses a hex color string into a pixel.
//
// Accepted forms are "#RGB", "#RRGGBB" and "#RRGGBBAA"; the leading '#'
// is optional. Colors without an alpha component are opaque.
func ParseColor(s string) (paint.Pixel, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return paint.Pixel{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}
	if len(hex) != 3 && len(hex) != 6 {
		return paint.Pixel{}, fmt.Errorf("unsupported color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	// colorful.Hex stops at the first non-hex digit without failing.
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return paint.Pixel{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return paint.Pixel{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	p := paint.FromColor(c)
	p.A = alpha
	return p, nil
}
