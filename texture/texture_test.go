package texture

import (
	"image"
	"image/color"
	"testing"

	swrcolor "github.com/gorender/swraster/color"
	"github.com/gorender/swraster/pixelfmt"
)

func TestSampleOutsideUnitSquareIsWhite(t *testing.T) {
	tex := Load(2, 2, pixelfmt.RGBA, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 0, 255,
	})

	cases := []struct{ u, v float32 }{
		{-0.1, 0.5}, {1.1, 0.5}, {0.5, -0.1}, {0.5, 1.1},
	}
	for _, c := range cases {
		if got := tex.Sample(c.u, c.v); got != swrcolor.White {
			t.Fatalf("Sample(%v,%v)\nhave %v\nwant white", c.u, c.v, got)
		}
	}
}

func TestSampleNearestNeighbor(t *testing.T) {
	tex := Load(2, 2, pixelfmt.RGBA, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 0, 255,
	})

	if got := tex.Sample(0, 0); got != (swrcolor.Color{R: 255, G: 0, B: 0, A: 255}) {
		t.Fatalf("Sample(0,0)\nhave %v\nwant red", got)
	}
	if got := tex.Sample(1, 1); got != (swrcolor.Color{R: 255, G: 255, B: 0, A: 255}) {
		t.Fatalf("Sample(1,1)\nhave %v\nwant yellow", got)
	}
}

func TestFromImageResizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		if i%4 == 3 {
			src.Pix[i] = 255
			continue
		}
		src.Pix[i] = 128
	}
	_ = color.RGBA{}

	tex := FromImage(src, 8, 8)
	if tex.Width() != 8 || tex.Height() != 8 {
		t.Fatalf("FromImage dimensions\nhave (%d,%d)\nwant (8,8)", tex.Width(), tex.Height())
	}
}

func TestReleaseDropsBackingGrid(t *testing.T) {
	tex := Load(2, 2, pixelfmt.RGBA, make([]byte, 16))
	tex.Release()

	if tex.grid != nil {
		t.Fatalf("Release did not drop backing grid")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	tex := Load(2, 2, pixelfmt.RGBA, make([]byte, 16))
	tex.Write(0, 0, 1, 1, pixelfmt.RGB, []byte{9, 8, 7})

	out := make([]byte, 3)
	if err := tex.Read(0, 0, 1, 1, pixelfmt.RGB, out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out[0] != 9 || out[1] != 8 || out[2] != 7 {
		t.Fatalf("round trip\nhave %v\nwant [9 8 7]", out)
	}
}
