package framebuffer

import (
	"testing"

	"github.com/gorender/swraster/color"
)

func TestClearColorAndDepth(t *testing.T) {
	fb := New(4, 4)
	fb.ClearColor(color.Color{R: 10, G: 20, B: 30, A: 255})
	fb.ClearDepth(1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != (color.Color{R: 10, G: 20, B: 30, A: 255}) {
				t.Fatalf("At(%d,%d)\nhave %v\nwant {10 20 30 255}", x, y, got)
			}
			if got := fb.DepthAt(x, y); got != 1 {
				t.Fatalf("DepthAt(%d,%d)\nhave %v\nwant 1", x, y, got)
			}
		}
	}
}

func TestDimensionsMatch(t *testing.T) {
	fb := New(8, 6)
	if fb.Width() != 8 || fb.Height() != 6 {
		t.Fatalf("dimensions\nhave (%d,%d)\nwant (8,6)", fb.Width(), fb.Height())
	}
}

func TestImageMatchesColorPlane(t *testing.T) {
	fb := New(2, 2)
	fb.SetColor(1, 0, color.Color{R: 1, G: 2, B: 3, A: 4})

	img := fb.Image()
	r, g, b, a := img.At(1, 0).RGBA()
	if uint8(r>>8) != 1 || uint8(g>>8) != 2 || uint8(b>>8) != 3 || uint8(a>>8) != 4 {
		t.Fatalf("Image() pixel (1,0)\nhave (%d,%d,%d,%d)\nwant (1,2,3,4)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestReleaseDropsBackingPlanes(t *testing.T) {
	fb := New(2, 2)
	fb.ClearColor(color.White)
	fb.Release()

	if fb.grid != nil || fb.depth != nil {
		t.Fatalf("Release did not drop backing planes")
	}
}

func TestReadDepthRegion(t *testing.T) {
	fb := New(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			fb.SetDepth(x, y, float32(x+y*3))
		}
	}

	out := make([]float32, 4)
	fb.ReadDepth(1, 1, 2, 2, out)
	want := []float32{4, 5, 7, 8}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("ReadDepth\nhave %v\nwant %v", out, want)
		}
	}
}
