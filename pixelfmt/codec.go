// Package pixelfmt implements the pixel-format codec that converts between
// the canonical RGBA8 grid framebuffers and textures store, and the
// {Gray, RGB, RGBA} x {byte, float} formats host applications read and
// write rectangular regions in (spec.md §4.C).
package pixelfmt

import (
	"errors"
	"fmt"

	"github.com/gorender/swraster/color"
)

// Format is the channel layout of an external pixel buffer.
type Format int

const (
	Gray Format = 1
	RGB  Format = 3
	RGBA Format = 4
)

// Channels returns the number of channels the format carries.
func (f Format) Channels() int { return int(f) }

// ErrUnsupportedRead is returned when reading the canonical grid out into
// Gray is requested. The reference C source silently no-oped this path
// (see spec.md §9 note 10 and §7); this Go port fails explicitly instead.
var ErrUnsupportedRead = errors.New("pixelfmt: reading into Gray is not supported")

// Grid is the canonical RGBA8 pixel plane that framebuffers and textures
// both own: a flat, row-major array of w*h colors, pixel (x,y) at index
// x + y*w.
type Grid struct {
	Pixels []color.Color
	W, H   int
}

// NewGrid allocates a Grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{Pixels: make([]color.Color, w*h), W: w, H: h}
}

func (g *Grid) at(x, y int) *color.Color { return &g.Pixels[x+y*g.W] }

// WriteFloat decodes a rectangular region from a float buffer (channels in
// [0,1]) in the given format and stores it into the grid at (x,y), w x h
// pixels. The buffer's row stride is w*format.Channels().
//
// Writing never fails: every float in the intended [0,1] range has a valid
// RGBA8 representation; out-of-range inputs saturate rather than wrap
// (spec.md §4.C).
func (g *Grid) WriteFloat(x, y, w, h int, format Format, buffer []float32) {
	ch := format.Channels()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			pixel := g.at(x+i, y+j)
			data := buffer[(i+w*j)*ch:]
			switch format {
			case Gray:
				v := toByteSaturating(data[0] * 255)
				pixel.R, pixel.G, pixel.B = v, v, v
				pixel.A = 255
			case RGB:
				pixel.R = toByteSaturating(data[0] * 255)
				pixel.G = toByteSaturating(data[1] * 255)
				pixel.B = toByteSaturating(data[2] * 255)
				pixel.A = 255
			case RGBA:
				pixel.R = toByteSaturating(data[0] * 255)
				pixel.G = toByteSaturating(data[1] * 255)
				pixel.B = toByteSaturating(data[2] * 255)
				pixel.A = toByteSaturating(data[3] * 255)
			}
		}
	}
}

// WriteByte is the []byte counterpart of WriteFloat: channels are already
// in [0,255] and are copied through verbatim.
func (g *Grid) WriteByte(x, y, w, h int, format Format, buffer []byte) {
	ch := format.Channels()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			pixel := g.at(x+i, y+j)
			data := buffer[(i+w*j)*ch:]
			switch format {
			case Gray:
				v := data[0]
				pixel.R, pixel.G, pixel.B = v, v, v
				pixel.A = 255
			case RGB:
				pixel.R, pixel.G, pixel.B = data[0], data[1], data[2]
				pixel.A = 255
			case RGBA:
				pixel.R, pixel.G, pixel.B, pixel.A = data[0], data[1], data[2], data[3]
			}
		}
	}
}

// toByteSaturating truncates a float intended to be in [0,255] to an
// unsigned byte, saturating out-of-range inputs rather than wrapping
// (spec.md §4.C: "specify saturation").
func toByteSaturating(v float32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// ReadFloat encodes a rectangular region of the grid into a float buffer
// (channels in [0,1]) in the given format. Gray is not supported for reads
// and returns ErrUnsupportedRead (spec.md §7, §9 note 10).
func (g *Grid) ReadFloat(x, y, w, h int, format Format, buffer []float32) error {
	if format == Gray {
		return fmt.Errorf("pixelfmt: Gray, float: %w", ErrUnsupportedRead)
	}
	ch := format.Channels()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			pixel := g.at(x+i, y+j)
			data := buffer[(i+w*j)*ch:]
			switch format {
			case RGB:
				data[0] = float32(pixel.R) / 255
				data[1] = float32(pixel.G) / 255
				data[2] = float32(pixel.B) / 255
			case RGBA:
				data[0] = float32(pixel.R) / 255
				data[1] = float32(pixel.G) / 255
				data[2] = float32(pixel.B) / 255
				data[3] = float32(pixel.A) / 255
			}
		}
	}
	return nil
}

// ReadByte is the []byte counterpart of ReadFloat.
func (g *Grid) ReadByte(x, y, w, h int, format Format, buffer []byte) error {
	if format == Gray {
		return fmt.Errorf("pixelfmt: Gray, byte: %w", ErrUnsupportedRead)
	}
	ch := format.Channels()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			pixel := g.at(x+i, y+j)
			data := buffer[(i+w*j)*ch:]
			switch format {
			case RGB:
				data[0], data[1], data[2] = pixel.R, pixel.G, pixel.B
			case RGBA:
				data[0], data[1], data[2], data[3] = pixel.R, pixel.G, pixel.B, pixel.A
			}
		}
	}
	return nil
}
