// Package vertex owns the host-side vertex and index arrays the
// rasterizer draws from (spec.md §4.F).
package vertex

import (
	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/linear"
)

// Vertex is a single input vertex: position, normal, base color and
// texture coordinate (spec.md §3).
type Vertex struct {
	Pos      linear.Vector3
	Normal   linear.Vector3
	Color    color.Color
	TexCoord linear.Vector2
}

// Array is an owning, contiguous host-side array of vertices, with
// explicit write/read and no bounds-checking contract — the caller is
// responsible for staying within Size() (spec.md §4.F).
type Array struct {
	data []Vertex
}

// NewArray allocates an array of n vertices. If data is non-nil, its first
// n vertices are copied in.
func NewArray(n int, data []Vertex) *Array {
	a := &Array{data: make([]Vertex, n)}
	if data != nil {
		copy(a.data, data[:n])
	}
	return a
}

// Write overwrites n vertices starting at offset i.
func (a *Array) Write(i, n int, src []Vertex) {
	copy(a.data[i:i+n], src[:n])
}

// Read copies n vertices starting at offset i into dst.
func (a *Array) Read(i, n int, dst []Vertex) {
	copy(dst[:n], a.data[i:i+n])
}

// Size returns the number of vertices the array holds.
func (a *Array) Size() int { return len(a.data) }

// At returns the vertex at index i. Used internally by the rasterizer core
// to avoid a defensive copy on every access.
func (a *Array) At(i int) Vertex { return a.data[i] }

// Release drops the array's backing storage. There is no OS handle to
// close here — the Go runtime reclaims the slice once nothing references
// it — but Release is kept as an explicit, named operation (spec.md §6)
// so a host application's create/release pairing reads the same whether
// the array's storage is a C malloc or a Go slice. Using a released array
// is undefined, same as the reference source (spec.md §3 "Lifecycles").
func (a *Array) Release() { a.data = nil }

// IndexArray is an owning, contiguous host-side array of 32-bit indices.
type IndexArray struct {
	data []uint32
}

// NewIndexArray allocates an array of n indices. If data is non-nil, its
// first n indices are copied in.
func NewIndexArray(n int, data []uint32) *IndexArray {
	a := &IndexArray{data: make([]uint32, n)}
	if data != nil {
		copy(a.data, data[:n])
	}
	return a
}

// Write overwrites n indices starting at offset i.
func (a *IndexArray) Write(i, n int, src []uint32) {
	copy(a.data[i:i+n], src[:n])
}

// Read copies n indices starting at offset i into dst.
func (a *IndexArray) Read(i, n int, dst []uint32) {
	copy(dst[:n], a.data[i:i+n])
}

// Size returns the number of indices the array holds.
func (a *IndexArray) Size() int { return len(a.data) }

// At returns the index at position i.
func (a *IndexArray) At(i int) uint32 { return a.data[i] }

// Release drops the index array's backing storage (spec.md §6), the same
// no-OS-handle-but-named-explicitly rationale as Array.Release.
func (a *IndexArray) Release() { a.data = nil }
