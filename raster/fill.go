package raster

import (
	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/linear"
)

// screenPos is an integer pixel coordinate after the NDC-to-screen mapping
// (spec.md §4.H.4). There is no sub-pixel precision.
type screenPos struct{ x, y int }

func ndcToScreen(fbW, fbH int, pos linear.Vector3) screenPos {
	return screenPos{
		x: int((pos.X() + 1) * float32(fbW) / 2),
		y: int((pos.Y() + 1) * float32(fbH) / 2),
	}
}

// cull reports whether triangle (a,b,c), given in NDC, should be
// discarded as a backface. The signed area below is the geometrically
// complete formula (spec.md §4.H.3); the reference C source drops one of
// the three cross-product terms (spec.md §9 note 2), which this port does
// not reproduce.
func (s *State) cull(a, b, c processedVertex) bool {
	if !s.culling {
		return false
	}
	det := a.ndc.X()*b.ndc.Y() - a.ndc.Y()*b.ndc.X() +
		b.ndc.X()*c.ndc.Y() - b.ndc.Y()*c.ndc.X() +
		c.ndc.X()*a.ndc.Y() - c.ndc.Y()*a.ndc.X()
	return det > 0
}

func iMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func iMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// emitTriangle runs backface culling, sorts the triangle's screen-space
// vertices by y, and fills the two scanline halves (spec.md §4.H.3–§4.H.5).
func (s *State) emitTriangle(a, b, c processedVertex) {
	if s.cull(a, b, c) {
		return
	}

	fbW, fbH := s.target.Width(), s.target.Height()
	p0, p1, p2 := ndcToScreen(fbW, fbH, a.ndc), ndcToScreen(fbW, fbH, b.ndc), ndcToScreen(fbW, fbH, c.ndc)

	// 3-pass bubble sort by y, swapping the processed vertices in lockstep
	// (spec.md §4.H.5).
	if p0.y > p1.y {
		p0, p1 = p1, p0
		a, b = b, a
	}
	if p1.y > p2.y {
		p1, p2 = p2, p1
		b, c = c, b
	}
	if p0.y > p1.y {
		p0, p1 = p1, p0
		a, b = b, a
	}

	if p0.y == p2.y {
		return // degenerate
	}

	det := float32((p0.x-p2.x)*(p1.y-p2.y) - (p0.y-p2.y)*(p1.x-p2.x))
	dxdy02 := float32(p0.x-p2.x) / float32(p0.y-p2.y)

	if p0.y != p1.y {
		dxdy01 := float32(p0.x-p1.x) / float32(p0.y-p1.y)
		yLo, yHi := iMax(0, p0.y), iMin(p1.y, fbH-1)
		for y := yLo; y <= yHi; y++ {
			dy := float32(y - p0.y)
			x0 := p0.x + int(dxdy01*dy)
			x1 := p0.x + int(dxdy02*dy)
			s.fillRow(y, x0, x1, fbW, a, b, c, p0, p1, p2, det)
		}
	}

	if p1.y != p2.y {
		dxdy12 := float32(p1.x-p2.x) / float32(p1.y-p2.y)
		yLo, yHi := iMax(0, p1.y), iMin(p2.y, fbH-1)
		for y := yLo; y <= yHi; y++ {
			x0 := p1.x + int(dxdy12*float32(y-p1.y))
			x1 := p0.x + int(dxdy02*float32(y-p0.y))
			s.fillRow(y, x0, x1, fbW, a, b, c, p0, p1, p2, det)
		}
	}
}

func (s *State) fillRow(y, x0, x1, fbW int, a, b, c processedVertex, p0, p1, p2 screenPos, det float32) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	xLo, xHi := iMax(0, x0), iMin(x1, fbW-1)
	for x := xLo; x <= xHi; x++ {
		bc := barycentric(p0, p1, p2, x, y, det)
		frag := interpolate(a, b, c, bc)
		s.drawFragment(frag, x, y)
	}
}

// barycentricCoord is the (s,t,u) weight triple of spec.md §4.H.6.
type barycentricCoord struct{ s, t, u float32 }

func barycentric(p0, p1, p2 screenPos, x, y int, det float32) barycentricCoord {
	fx, fy := float32(x), float32(y)
	s := (float32(p1.y-p2.y)*(fx-float32(p2.x)) + float32(p2.x-p1.x)*(fy-float32(p2.y))) / det
	t := (float32(p2.y-p0.y)*(fx-float32(p2.x)) + float32(p0.x-p2.x)*(fy-float32(p2.y))) / det
	return barycentricCoord{s: s, t: t, u: 1 - s - t}
}

// interpolate blends the three processed vertices at the given barycentric
// weights. NDC position is interpolated linearly (wfactor=1, since
// perspective-divided positions already vary linearly in screen space);
// every other attribute uses the perspective-correct path that re-weights
// by each vertex's retained clip-w (spec.md §4.H.6).
func interpolate(a, b, c processedVertex, bc barycentricCoord) processedVertex {
	ndc := interpolateVector3(a.ndc, b.ndc, c.ndc, 1, bc)

	wfactor := bc.s/a.w + bc.t/b.w + bc.u/c.w
	pc := barycentricCoord{s: bc.s / a.w, t: bc.t / b.w, u: bc.u / c.w}

	return processedVertex{
		eye:      interpolateVector3(a.eye, b.eye, c.eye, wfactor, pc),
		normal:   interpolateVector3(a.normal, b.normal, c.normal, wfactor, pc),
		texCoord: interpolateVector2(a.texCoord, b.texCoord, c.texCoord, wfactor, pc),
		color:    interpolateColor(a.color, b.color, c.color, wfactor, pc),
		ndc:      ndc,
	}
}

func interpolateVector3(a, b, c linear.Vector3, wfactor float32, bc barycentricCoord) linear.Vector3 {
	return linear.NewVector3(
		(bc.s*a.X()+bc.t*b.X()+bc.u*c.X())/wfactor,
		(bc.s*a.Y()+bc.t*b.Y()+bc.u*c.Y())/wfactor,
		(bc.s*a.Z()+bc.t*b.Z()+bc.u*c.Z())/wfactor,
	)
}

func interpolateVector2(a, b, c linear.Vector2, wfactor float32, bc barycentricCoord) linear.Vector2 {
	return linear.NewVector2(
		(bc.s*a.X()+bc.t*b.X()+bc.u*c.X())/wfactor,
		(bc.s*a.Y()+bc.t*b.Y()+bc.u*c.Y())/wfactor,
	)
}

func interpolateColor(a, b, c color.Color, wfactor float32, bc barycentricCoord) color.Color {
	lerp := func(ca, cb, cc uint8) uint8 {
		v := (bc.s*float32(ca) + bc.t*float32(cb) + bc.u*float32(cc)) / wfactor
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return uint8(v)
	}
	return color.Color{
		R: lerp(a.R, b.R, c.R),
		G: lerp(a.G, b.G, c.G),
		B: lerp(a.B, b.B, c.B),
		A: lerp(a.A, b.A, c.A),
	}
}
