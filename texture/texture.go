// Package texture owns the RGBA8 grid sampled by the rasterizer's fragment
// stage (spec.md §4.E).
package texture

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/pixelfmt"
)

// Texture owns an RGBA8 pixel grid, reusing the pixel-format codec for all
// I/O (spec.md §4.E).
type Texture struct {
	grid *pixelfmt.Grid
}

// Load allocates a texture of the given dimensions and writes buffer into
// it as the given format (byte channels).
func Load(w, h int, format pixelfmt.Format, buffer []byte) *Texture {
	tex := &Texture{grid: pixelfmt.NewGrid(w, h)}
	tex.grid.WriteByte(0, 0, w, h, format, buffer)
	return tex
}

// LoadFloat is the float32 counterpart of Load.
func LoadFloat(w, h int, format pixelfmt.Format, buffer []float32) *Texture {
	tex := &Texture{grid: pixelfmt.NewGrid(w, h)}
	tex.grid.WriteFloat(0, 0, w, h, format, buffer)
	return tex
}

// FromImage resizes an already-decoded image.Image to w x h with
// nearest-neighbor resampling — matching the sampling policy Sample uses
// at draw time (spec.md §4.E) — and writes the result into a new texture.
// Decoding image files from disk remains out of scope for the core (host
// applications do that themselves, spec.md §1); this only adapts an
// image.Image already in memory, the way the teacher's own
// render.loadExactImage resizes a decoded image before uploading it.
func FromImage(img image.Image, w, h int) *Texture {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	tex := &Texture{grid: pixelfmt.NewGrid(w, h)}
	tex.grid.WriteByte(0, 0, w, h, pixelfmt.RGBA, dst.Pix)
	return tex
}

// Release drops the texture's backing pixel grid (spec.md §6). A texture
// still bound to a renderer when released is undefined, same as the
// reference source (spec.md §3 "Lifecycles").
func (t *Texture) Release() { t.grid = nil }

// Width returns the texture's width in texels.
func (t *Texture) Width() int { return t.grid.W }

// Height returns the texture's height in texels.
func (t *Texture) Height() int { return t.grid.H }

// Write overwrites a rectangular region of the texture (byte channels).
func (t *Texture) Write(x, y, w, h int, format pixelfmt.Format, buffer []byte) {
	t.grid.WriteByte(x, y, w, h, format, buffer)
}

// WriteFloat is the float32 counterpart of Write.
func (t *Texture) WriteFloat(x, y, w, h int, format pixelfmt.Format, buffer []float32) {
	t.grid.WriteFloat(x, y, w, h, format, buffer)
}

// Read decodes a rectangular region of the texture into buffer (byte
// channels). Reading into Gray fails (spec.md §7, §9 note 10).
func (t *Texture) Read(x, y, w, h int, format pixelfmt.Format, buffer []byte) error {
	return t.grid.ReadByte(x, y, w, h, format, buffer)
}

// ReadFloat is the float32 counterpart of Read.
func (t *Texture) ReadFloat(x, y, w, h int, format pixelfmt.Format, buffer []float32) error {
	return t.grid.ReadFloat(x, y, w, h, format, buffer)
}

// Sample performs nearest-neighbor lookup at texture coordinate (u,v).
// Outside [0,1]^2 it returns opaque white rather than wrapping, clamping
// or mirroring — there is no such mode (spec.md §4.E).
func (t *Texture) Sample(u, v float32) color.Color {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return color.White
	}
	x := int(u * float32(t.grid.W-1))
	y := int(v * float32(t.grid.H-1))
	return t.grid.Pixels[x+y*t.grid.W]
}
