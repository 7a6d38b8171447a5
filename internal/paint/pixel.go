package paint

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8-bit-per-channel RGBA color with straight alpha.
//
// Pixel implements color.Color, so it can be handed directly to the image
// and image/draw packages.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Transparent is the fallback pixel for colors whose model is not
// understood by FromColor.
var Transparent = Pixel{}

// Unpack splits a packed 0xAARRGGBB value into its channels.
func Unpack(v uint32) Pixel {
	return Pixel{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

// Uint32 packs the pixel as 0xAARRGGBB.
func (p Pixel) Uint32() uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// 16-bit channels, matching color.NRGBA.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// String formats the pixel as #RRGGBBAA.
func (p Pixel) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", p.R, p.G, p.B, p.A)
}

func channelDiff(a, b uint8) int {
	return int(max(a, b) - min(a, b))
}

// Diff returns the sum of the per-channel absolute differences between a
// and b, alpha included. The result is in [0, 1020].
//
// This is the tolerance metric used by Fill. It is not a perceptual
// distance.
func Diff(a, b Pixel) int {
	return channelDiff(a.R, b.R) +
		channelDiff(a.G, b.G) +
		channelDiff(a.B, b.B) +
		channelDiff(a.A, b.A)
}

// Matches reports whether b is within tolerance of a.
func Matches(a, b Pixel, tolerance int) bool {
	return Diff(a, b) <= tolerance
}

// MultiplyAlpha scales the alpha channel of p by factor, leaving the color
// channels untouched. factor is clamped to [0, 1].
func MultiplyAlpha(p Pixel, factor float64) Pixel {
	switch {
	case factor <= 0:
		p.A = 0
	case factor < 1:
		p.A = uint8(math.Round(float64(p.A) * factor))
	}
	return p
}

// Blend composites overlay on top of base using the source-over operator.
//
// An overlay with zero alpha leaves base unchanged and an opaque overlay
// replaces it, both exactly. Everything in between is rounded to the
// nearest 8-bit value.
func Blend(base, overlay Pixel) Pixel {
	switch overlay.A {
	case 0:
		return base
	case 255:
		return overlay
	}

	oa := float64(overlay.A) / 255
	ba := float64(base.A) / 255 * (1 - oa)
	outA := oa + ba
	if outA <= 0 {
		return Transparent
	}

	mix := func(o, b uint8) uint8 {
		return clamp8((float64(o)*oa + float64(b)*ba) / outA)
	}
	return Pixel{
		R: mix(overlay.R, base.R),
		G: mix(overlay.G, base.G),
		B: mix(overlay.B, base.B),
		A: clamp8(outA * 255),
	}
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FromColor converts a host color into a Pixel.
//
// Grayscale colors expand their luminance into equal red, green and blue
// channels. RGB colors copy their channels, converting premultiplied values
// to straight alpha first. Any other color model (CMYK, YCbCr, palette
// entries that are not RGB, custom types) yields Transparent.
func FromColor(c color.Color) Pixel {
	switch v := c.(type) {
	case Pixel:
		return v
	case color.Gray:
		return Pixel{R: v.Y, G: v.Y, B: v.Y, A: 255}
	case color.Gray16:
		y := uint8(v.Y >> 8)
		return Pixel{R: y, G: y, B: y, A: 255}
	case color.NRGBA:
		return Pixel{R: v.R, G: v.G, B: v.B, A: v.A}
	case color.NRGBA64:
		return Pixel{R: uint8(v.R >> 8), G: uint8(v.G >> 8), B: uint8(v.B >> 8), A: uint8(v.A >> 8)}
	case color.RGBA, color.RGBA64:
		n := color.NRGBAModel.Convert(v).(color.NRGBA)
		return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
	case colorful.Color:
		r, g, b := v.Clamped().RGB255()
		return Pixel{R: r, G: g, B: b, A: 255}
	default:
		return Transparent
	}
}
