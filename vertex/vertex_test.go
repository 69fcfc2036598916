package vertex

import (
	"testing"

	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/linear"
)

func TestArrayWriteRead(t *testing.T) {
	a := NewArray(4, nil)
	v := Vertex{
		Pos:      linear.Vector3{1, 2, 3},
		Normal:   linear.Vector3{0, 1, 0},
		Color:    color.White,
		TexCoord: linear.Vector2{0.5, 0.5},
	}
	a.Write(1, 1, []Vertex{v})

	out := make([]Vertex, 1)
	a.Read(1, 1, out)
	if out[0] != v {
		t.Fatalf("Read\nhave %v\nwant %v", out[0], v)
	}
}

func TestArrayInitialData(t *testing.T) {
	v0 := Vertex{Pos: linear.Vector3{1, 0, 0}}
	v1 := Vertex{Pos: linear.Vector3{0, 1, 0}}
	a := NewArray(2, []Vertex{v0, v1})

	if a.At(0) != v0 || a.At(1) != v1 {
		t.Fatalf("initial data not copied correctly")
	}
}

func TestIndexArrayWriteRead(t *testing.T) {
	a := NewIndexArray(3, []uint32{0, 1, 2})
	a.Write(1, 2, []uint32{5, 6})

	out := make([]uint32, 3)
	a.Read(0, 3, out)
	want := []uint32{0, 5, 6}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("Read\nhave %v\nwant %v", out, want)
		}
	}
}

func TestReleaseDropsBackingStorage(t *testing.T) {
	a := NewArray(4, nil)
	a.Release()
	if a.Size() != 0 {
		t.Fatalf("Array.Release left Size() = %d, want 0", a.Size())
	}

	idx := NewIndexArray(4, nil)
	idx.Release()
	if idx.Size() != 0 {
		t.Fatalf("IndexArray.Release left Size() = %d, want 0", idx.Size())
	}
}

func TestSize(t *testing.T) {
	if (NewArray(7, nil)).Size() != 7 {
		t.Fatalf("Array.Size wrong")
	}
	if (NewIndexArray(9, nil)).Size() != 9 {
		t.Fatalf("IndexArray.Size wrong")
	}
}
