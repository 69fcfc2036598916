package pixelfmt

import (
	"errors"
	"testing"
)

func TestByteRoundTripRGBA(t *testing.T) {
	g := NewGrid(2, 2)
	in := []byte{
		10, 20, 30, 255, 40, 50, 60, 128,
		70, 80, 90, 0, 100, 110, 120, 255,
	}
	g.WriteByte(0, 0, 2, 2, RGBA, in)

	out := make([]byte, len(in))
	if err := g.ReadByte(0, 0, 2, 2, RGBA, out); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("round trip mismatch at %d: wrote %d, read %d", i, in[i], out[i])
		}
	}
}

func TestByteRoundTripRGB(t *testing.T) {
	g := NewGrid(1, 1)
	in := []byte{5, 6, 7}
	g.WriteByte(0, 0, 1, 1, RGB, in)

	out := make([]byte, 3)
	if err := g.ReadByte(0, 0, 1, 1, RGB, out); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("round trip mismatch at %d: wrote %d, read %d", i, in[i], out[i])
		}
	}
}

func TestFloatRoundTripIsLossyButBounded(t *testing.T) {
	g := NewGrid(1, 1)
	in := []float32{0.2, 0.5, 0.9, 1.0}
	g.WriteFloat(0, 0, 1, 1, RGBA, in)

	out := make([]float32, 4)
	if err := g.ReadFloat(0, 0, 1, 1, RGBA, out); err != nil {
		t.Fatalf("ReadFloat: %v", err)
	}
	for i := range in {
		d := in[i] - out[i]
		if d < 0 {
			d = -d
		}
		if d > 1.0/255.0 {
			t.Fatalf("channel %d: wrote %v, read %v, diff %v exceeds 1/255", i, in[i], out[i], d)
		}
	}
}

func TestGrayWriteBroadcasts(t *testing.T) {
	g := NewGrid(1, 1)
	g.WriteByte(0, 0, 1, 1, Gray, []byte{42})

	out := make([]byte, 4)
	if err := g.ReadByte(0, 0, 1, 1, RGBA, out); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	want := []byte{42, 42, 42, 255}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("Gray broadcast\nhave %v\nwant %v", out, want)
		}
	}
}

func TestReadIntoGrayFailsExplicitly(t *testing.T) {
	g := NewGrid(1, 1)
	err := g.ReadByte(0, 0, 1, 1, Gray, make([]byte, 1))
	if !errors.Is(err, ErrUnsupportedRead) {
		t.Fatalf("ReadByte into Gray: have %v, want ErrUnsupportedRead", err)
	}

	err = g.ReadFloat(0, 0, 1, 1, Gray, make([]float32, 1))
	if !errors.Is(err, ErrUnsupportedRead) {
		t.Fatalf("ReadFloat into Gray: have %v, want ErrUnsupportedRead", err)
	}
}

func TestWriteSaturatesOutOfRangeFloats(t *testing.T) {
	g := NewGrid(1, 1)
	g.WriteFloat(0, 0, 1, 1, RGB, []float32{2.0, -1.0, 0.5})

	out := make([]byte, 3)
	if err := g.ReadByte(0, 0, 1, 1, RGB, out); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if out[0] != 255 || out[1] != 0 {
		t.Fatalf("saturation\nhave %v\nwant R=255 G=0", out)
	}
}

func TestSubRegion(t *testing.T) {
	g := NewGrid(4, 4)
	g.WriteByte(1, 1, 2, 2, RGBA, []byte{
		1, 1, 1, 255, 2, 2, 2, 255,
		3, 3, 3, 255, 4, 4, 4, 255,
	})

	// Outside the written region the grid stays zero-valued.
	out := make([]byte, 4)
	if err := g.ReadByte(0, 0, 1, 1, RGBA, out); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if out[0] != 0 {
		t.Fatalf("untouched pixel\nhave %v\nwant zero", out)
	}

	if err := g.ReadByte(1, 1, 1, 1, RGBA, out); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if out[0] != 1 {
		t.Fatalf("written pixel (1,1)\nhave %v\nwant R=1", out)
	}
}
