package raster

import "github.com/gorender/swraster/vertex"

// ensureScratch grows the processed-vertex scratch table to at least n
// entries. It never shrinks within a session (spec.md §5 "Allocation
// discipline").
func (s *State) ensureScratch(n int) {
	if len(s.vertices) >= n {
		return
	}
	grown := make([]processedVertex, n)
	copy(grown, s.vertices)
	s.vertices = grown
}

// DrawArray processes vertices[first:first+count) in order and assembles
// them into triangles per mode (spec.md §4.H.2).
//
// The reference C source has a known bug here: it writes every processed
// vertex to the same scratch slot (the outer "first" index) instead of to
// its position within the draw, so only the last vertex survives. This
// port writes to scratch[offset], the fix spec.md §9 note 1 calls for.
func (s *State) DrawArray(mode DrawMode, array *vertex.Array, first, count int) {
	s.ensureScratch(count)
	s.vertexStageCalls = 0

	for offset := 0; offset < count; offset++ {
		s.vertices[offset] = s.processVertex(array.At(offset + first))
	}

	if count < 3 {
		return
	}

	switch mode {
	case Triangles:
		for i := 0; i+2 < count; i += 3 {
			s.emitTriangle(s.vertices[i], s.vertices[i+1], s.vertices[i+2])
		}
	case TriangleStrip:
		s.emitTriangle(s.vertices[0], s.vertices[1], s.vertices[2])
		for i := 3; i < count; i++ {
			s.emitTriangle(s.vertices[i-1], s.vertices[i-2], s.vertices[i])
		}
	case TriangleFan:
		first := s.vertices[0]
		for i := 2; i < count; i++ {
			s.emitTriangle(first, s.vertices[i-1], s.vertices[i])
		}
	}
}

// DrawElements processes each distinct index in indices[first:first+count)
// at most once — the vertex stage memoizes per-index shading via the
// processed vertex's done flag — then assembles triangles by index per
// mode (spec.md §4.H.2).
func (s *State) DrawElements(mode DrawMode, indices *vertex.IndexArray, array *vertex.Array, first, count int) {
	s.ensureScratch(array.Size())
	s.vertexStageCalls = 0

	for i := range s.vertices[:array.Size()] {
		s.vertices[i].done = false
	}

	for offset := 0; offset < count; offset++ {
		idx := indices.At(offset + first)
		if !s.vertices[idx].done {
			s.vertices[idx] = s.processVertex(array.At(int(idx)))
		}
	}

	if count < 3 {
		return
	}

	idx := func(offset int) uint32 { return indices.At(first + offset) }

	switch mode {
	case Triangles:
		for i := 0; i+2 < count; i += 3 {
			s.emitTriangle(s.vertices[idx(i)], s.vertices[idx(i+1)], s.vertices[idx(i+2)])
		}
	case TriangleStrip:
		s.emitTriangle(s.vertices[idx(0)], s.vertices[idx(1)], s.vertices[idx(2)])
		for offset := 3; offset < count; offset++ {
			s.emitTriangle(s.vertices[idx(offset-1)], s.vertices[idx(offset-2)], s.vertices[idx(offset)])
		}
	case TriangleFan:
		first := s.vertices[idx(0)]
		for offset := 2; offset < count; offset++ {
			s.emitTriangle(first, s.vertices[idx(offset-1)], s.vertices[idx(offset)])
		}
	}
}
