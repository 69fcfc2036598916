package raster

import (
	"math"

	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/linear"
)

// drawFragment runs the depth test and, on a pass, shades and writes one
// pixel (spec.md §4.H.7–§4.H.8).
func (s *State) drawFragment(frag processedVertex, x, y int) {
	depth := frag.ndc.Z()

	if s.depthTest {
		dst := s.target.DepthAt(x, y)
		if !s.depthFunc.passes(depth, dst) {
			return
		}
		s.target.SetDepth(x, y, depth)
	}

	texColor := color.White
	if s.tex != nil {
		texColor = s.tex.Sample(frag.texCoord.X(), frag.texCoord.Y())
	}

	light := color.White
	if s.lighting {
		light = s.shade(frag)
	}

	out := frag.color.Modulate(texColor).Modulate(light)
	s.target.SetColor(x, y, out)
}

// shade accumulates every processed light's contribution at frag, starting
// from opaque black (spec.md §4.H.8). Alpha is carried through at 255 so it
// never factors into the final Modulate chain — lighting affects only RGB.
func (s *State) shade(frag processedVertex) color.Color {
	total := color.Color{A: 255}
	for _, l := range s.processedLights {
		total = total.Add(s.shadeLight(frag, l))
	}
	return total
}

// shadeLight computes one light's ambient+diffuse+specular contribution.
// The "light direction" is normalize(normalize(eye) + light.pos): a
// half-vector-like term, not the true surface-to-light vector, matching
// the reference source's non-standard Phong term (spec.md §9 note 4).
// This is not a bug to fix; changing it would change every lit pixel's
// color.
func (s *State) shadeLight(frag processedVertex, l processedLight) color.Color {
	n := frag.normal.Normalize()
	viewDir := frag.eye.Normalize()
	lightDir := viewDir.Add(l.pos).Normalize()

	diffuseTerm := -lightDir.Dot(n)
	if diffuseTerm < 0 {
		diffuseTerm = 0
	}
	diffuse := l.diffuse.Scale(diffuseTerm)

	reflectDir := linear.Reflect(lightDir.Scale(-1), n)
	specAngle := reflectDir.Dot(viewDir)
	if specAngle < 0 {
		specAngle = 0
	}
	specTerm := float32(math.Pow(float64(specAngle), float64(s.material.SpecularPower)))
	specular := l.specular.Scale(specTerm)

	return l.ambient.Add(diffuse).Add(specular)
}
