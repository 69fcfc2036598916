// Package color provides the 8-bit RGBA color type shared by textures,
// framebuffers and the rasterizer's Phong shading path.
package color

import "image/color"

// Color is an 8-bit-per-channel RGBA color. It is a defined type over
// image/color.RGBA (not an alias) so the rasterizer can attach its own
// saturating arithmetic while still converting for free to and from the
// standard library's image types.
type Color color.RGBA

// White is fully-opaque white, the neutral element for modulation (used as
// the default texture sample and the default "no lighting" light color).
var White = Color{255, 255, 255, 255}

// Black is fully-opaque black.
var Black = Color{0, 0, 0, 255}

// RGBA8 returns the color as a standard library image/color.RGBA.
func (c Color) RGBA8() color.RGBA { return color.RGBA(c) }

func clamp(v float32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func clampInt(v int32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Modulate returns the per-channel product of a and b, treating each
// channel as a fraction in [0,1] (i.e. channel/255). Alpha is modulated the
// same way. This is the "·" used throughout Phong composition (spec.md
// §4.H.8) and for pre-modulating light colors by the material (spec.md
// §4.G).
func (a Color) Modulate(b Color) Color {
	return Color{
		R: uint8(uint16(a.R) * uint16(b.R) / 255),
		G: uint8(uint16(a.G) * uint16(b.G) / 255),
		B: uint8(uint16(a.B) * uint16(b.B) / 255),
		A: uint8(uint16(a.A) * uint16(b.A) / 255),
	}
}

// Add returns a+b with each channel independently saturating at 255. Alpha
// is carried from a unchanged, matching the accumulation rule the Phong
// pass uses when summing per-light contributions into a running total
// that starts fully opaque (spec.md §4.H.8).
func (a Color) Add(b Color) Color {
	return Color{
		R: clampInt(int32(a.R) + int32(b.R)),
		G: clampInt(int32(a.G) + int32(b.G)),
		B: clampInt(int32(a.B) + int32(b.B)),
		A: a.A,
	}
}

// Scale returns f*a with each channel independently saturating at 255 (and
// at 0 for negative f). Alpha is preserved.
func (a Color) Scale(f float32) Color {
	return Color{
		R: clamp(f * float32(a.R)),
		G: clamp(f * float32(a.G)),
		B: clamp(f * float32(a.B)),
		A: a.A,
	}
}
