package raster

import (
	"github.com/gorender/swraster/framebuffer"
	"github.com/gorender/swraster/linear"
	"github.com/gorender/swraster/texture"
)

// State holds every binding the rasterizer core reads: a non-owning
// framebuffer and (optionally) texture reference, the current transforms,
// material and lights, and the fixed-function flags/factors (spec.md §3,
// §4.G). The caller must keep any bound framebuffer/texture alive past the
// next draw (spec.md §3 "Lifecycles").
type State struct {
	target *framebuffer.Framebuffer
	tex    *texture.Texture

	modelView    linear.Matrix4
	projection   linear.Matrix4
	normalMatrix linear.Matrix3

	material Material

	lights          []Light
	processedLights []processedLight

	lighting bool

	blendSrc, blendDst BlendFactor

	depthFunc DepthFunc
	depthTest bool

	culling bool

	vertices []processedVertex // scratch table, grows monotonically

	vertexStageCalls int // instrumentation: vertex stage invocations this draw
}

// New creates a renderer bound to target. Defaults mirror make_renderer in
// the reference source: identity transforms, opaque-white material, no
// lights, lighting/depth-test/culling off, depth func LE, blend factors
// src-alpha/one-minus-src-alpha (stored, never consulted — spec.md §9
// note 7).
func New(target *framebuffer.Framebuffer) *State {
	return &State{
		target:       target,
		modelView:    linear.Identity4(),
		projection:   linear.Identity4(),
		normalMatrix: linear.Identity3(),
		material:     DefaultMaterial(),
		blendSrc:     BlendSrcAlpha,
		blendDst:     BlendOneMinusSrcAlpha,
		depthFunc:    DepthLE,
	}
}

// Release frees the renderer's scratch processed-vertex table and light
// arrays (spec.md §5 "Allocation discipline"). It does not free the bound
// framebuffer or texture — those are non-owning references the caller
// manages independently (spec.md §3 "Lifecycles").
func (s *State) Release() {
	s.vertices = nil
	s.lights = nil
	s.processedLights = nil
}

// UseTexture binds tex as the current texture. Pass nil to unbind (fixed
// white is sampled instead, spec.md §4.H.8).
func (s *State) UseTexture(tex *texture.Texture) { s.tex = tex }

// CurrentTexture returns the currently bound texture, or nil.
func (s *State) CurrentTexture() *texture.Texture { return s.tex }

// SetMVP computes model_view = model*view, stores projection, recomputes
// the normal matrix as the inverse-transpose of model_view's upper-left
// 3x3, and re-derives every processed light from its authored counterpart
// (spec.md §4.G).
func (s *State) SetMVP(model, view, projection linear.Matrix4) {
	s.modelView = model.Multiply(view)
	s.projection = projection
	s.normalMatrix = s.modelView.UpperLeft3x3().InverseTranspose()
	s.updateAllLights()
}

// UseMaterial sets the current material and re-derives every processed
// light, since their diffuse/specular are pre-modulated by it (spec.md
// §4.G).
func (s *State) UseMaterial(m Material) {
	s.material = m
	s.updateAllLights()
}

// CurrentMaterial returns the current material.
func (s *State) CurrentMaterial() Material { return s.material }

// SetLights reallocates both the authored and processed light arrays to
// length n, copies src into the authored array and recomputes every
// processed light (spec.md §4.G).
func (s *State) SetLights(n int, src []Light) {
	s.lights = make([]Light, n)
	s.processedLights = make([]processedLight, n)
	if src != nil {
		copy(s.lights, src[:n])
	}
	s.updateAllLights()
}

// SetLight updates light i and recomputes its processed counterpart alone.
func (s *State) SetLight(i int, l Light) {
	s.lights[i] = l
	s.updateLight(i)
}

// GetLight returns the authored light at index i.
func (s *State) GetLight(i int) Light { return s.lights[i] }

// LightCount returns the number of lights currently bound.
func (s *State) LightCount() int { return len(s.lights) }

// SetLighting enables or disables Phong shading; when off every fragment
// is lit as if by flat white light (spec.md §4.H.8).
func (s *State) SetLighting(on bool) { s.lighting = on }

// Lighting reports whether lighting is enabled.
func (s *State) Lighting() bool { return s.lighting }

// SetBlendFunction stores the blend factors. They are never consulted by
// the core — every fragment write overwrites unconditionally (spec.md §9
// note 7) — but are retained so a future blending pass has somewhere to
// read them from.
func (s *State) SetBlendFunction(src, dst BlendFactor) {
	s.blendSrc, s.blendDst = src, dst
}

// BlendFunction returns the stored blend factors.
func (s *State) BlendFunction() (src, dst BlendFactor) { return s.blendSrc, s.blendDst }

// SetDepthFunc selects the depth comparator.
func (s *State) SetDepthFunc(f DepthFunc) { s.depthFunc = f }

// DepthFuncValue returns the current depth comparator.
func (s *State) DepthFuncValue() DepthFunc { return s.depthFunc }

// SetDepthTest enables or disables the depth test; when off every fragment
// unconditionally passes (spec.md §4.H.7).
func (s *State) SetDepthTest(on bool) { s.depthTest = on }

// DepthTest reports whether the depth test is enabled.
func (s *State) DepthTest() bool { return s.depthTest }

// SetCulling enables or disables backface culling.
func (s *State) SetCulling(on bool) { s.culling = on }

// Culling reports whether backface culling is enabled.
func (s *State) Culling() bool { return s.culling }

// VertexStageCalls returns how many times the vertex stage actually ran
// during the most recent draw call — lower than the index count for
// draw_elements whenever indices repeat (spec.md §4.H.2, §8 scenario 6).
func (s *State) VertexStageCalls() int { return s.vertexStageCalls }

func (s *State) updateAllLights() {
	for i := range s.lights {
		s.updateLight(i)
	}
}

// updateLight re-derives processed light i from its authored counterpart.
// Always deriving pos from the authored light (never from the previous
// processed value) avoids the known source defect where repeated calls
// kept re-transforming an already-transformed position (spec.md §9
// note 5).
func (s *State) updateLight(i int) {
	l := s.lights[i]
	s.processedLights[i] = processedLight{
		pos:      s.modelView.Apply(l.Pos),
		ambient:  l.Ambient,
		diffuse:  s.material.Diffuse.Modulate(l.Diffuse),
		specular: s.material.Specular.Modulate(l.Specular),
	}
}
