// Package framebuffer owns the color and depth planes the rasterizer
// writes into (spec.md §4.D).
package framebuffer

import (
	"image"

	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/pixelfmt"
)

// Framebuffer owns an RGBA8 color plane and a float32 depth plane of equal
// dimensions. Pixel (x,y) lives at index x + y*Width in both planes.
type Framebuffer struct {
	grid  *pixelfmt.Grid
	depth []float32
	w, h  int
}

// New allocates a framebuffer of the given dimensions, both planes
// together. Width and height must be positive.
func New(w, h int) *Framebuffer {
	return &Framebuffer{
		grid:  pixelfmt.NewGrid(w, h),
		depth: make([]float32, w*h),
		w:     w,
		h:     h,
	}
}

// Release drops the framebuffer's color and depth planes (spec.md §6).
// There is no OS handle backing either plane, so this only lets the Go
// runtime reclaim them promptly; releasing a framebuffer while it is still
// bound to a renderer is undefined, same as the reference source (spec.md
// §3 "Lifecycles").
func (fb *Framebuffer) Release() {
	fb.grid = nil
	fb.depth = nil
}

// Width returns the framebuffer's width in pixels.
func (fb *Framebuffer) Width() int { return fb.w }

// Height returns the framebuffer's height in pixels.
func (fb *Framebuffer) Height() int { return fb.h }

// ClearColor fills every sample of the color plane with c.
func (fb *Framebuffer) ClearColor(c color.Color) {
	for i := range fb.grid.Pixels {
		fb.grid.Pixels[i] = c
	}
}

// ClearDepth fills every sample of the depth plane with z.
func (fb *Framebuffer) ClearDepth(z float32) {
	for i := range fb.depth {
		fb.depth[i] = z
	}
}

// At returns the color currently stored at (x,y). It does not bounds-check;
// out-of-range access is the caller's responsibility, matching the rest of
// the library's contract (spec.md §4.F).
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.grid.Pixels[x+y*fb.w]
}

// SetColor writes a single color sample at (x,y). Used by the rasterizer
// core on a fragment write (spec.md §4.H.8).
func (fb *Framebuffer) SetColor(x, y int, c color.Color) {
	fb.grid.Pixels[x+y*fb.w] = c
}

// DepthAt returns the depth currently stored at (x,y).
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	return fb.depth[x+y*fb.w]
}

// SetDepth writes a single depth sample at (x,y).
func (fb *Framebuffer) SetDepth(x, y int, z float32) {
	fb.depth[x+y*fb.w] = z
}

// ReadColor decodes a rectangular region of the color plane into an
// external byte buffer in the given format (dispatches to the pixel
// codec, spec.md §4.C).
func (fb *Framebuffer) ReadColor(x, y, w, h int, format pixelfmt.Format, buffer []byte) error {
	return fb.grid.ReadByte(x, y, w, h, format, buffer)
}

// ReadColorFloat is the float32 counterpart of ReadColor.
func (fb *Framebuffer) ReadColorFloat(x, y, w, h int, format pixelfmt.Format, buffer []float32) error {
	return fb.grid.ReadFloat(x, y, w, h, format, buffer)
}

// ReadDepth copies w x h float32 depth samples starting at (x,y) into
// buffer, row by row.
func (fb *Framebuffer) ReadDepth(x, y, w, h int, buffer []float32) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			buffer[i+j*w] = fb.depth[(x+i)+(y+j)*fb.w]
		}
	}
}

// Image returns the color plane as a standard library *image.RGBA, the
// form in which the "pixel image in host memory" (spec.md §1) leaves the
// library. The returned image shares no memory with the framebuffer; the
// caller is free to encode or upload it however it likes (out of scope
// here, per spec.md §1).
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			c := fb.At(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o+0] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
		}
	}
	return img
}
