// Package raster implements the renderer state (spec.md §4.G) and the
// rasterization core (spec.md §4.H): vertex transform, triangle setup,
// scanline fill with perspective-correct interpolation, depth testing,
// texture sampling and fixed-function Phong shading.
package raster

import (
	"github.com/gorender/swraster/color"
	"github.com/gorender/swraster/linear"
)

// DrawMode selects how a vertex sequence is assembled into triangles
// (spec.md §4.H.2).
type DrawMode int

const (
	Triangles DrawMode = iota
	TriangleStrip
	TriangleFan
)

// DepthFunc is the comparator applied between an incoming fragment's depth
// and the stored depth sample (spec.md §4.H.7).
type DepthFunc int

const (
	DepthNever DepthFunc = iota
	DepthAlways
	DepthEQ
	DepthLT
	DepthLE
	DepthGT
	DepthGE
)

func (f DepthFunc) passes(src, dst float32) bool {
	switch f {
	case DepthNever:
		return false
	case DepthAlways:
		return true
	case DepthEQ:
		return src == dst
	case DepthLT:
		return src < dst
	case DepthLE:
		return src <= dst
	case DepthGT:
		return src > dst
	case DepthGE:
		return src >= dst
	default:
		return false
	}
}

// BlendFactor names a blend-equation term. The renderer stores these but
// never consults them: the core unconditionally overwrites on every
// fragment write (spec.md §9 note 7, frozen as documented no-op).
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// Material holds the fixed Phong material terms applied to every
// processed light (spec.md §3).
type Material struct {
	Ambient       color.Color
	Diffuse       color.Color
	Specular      color.Color
	SpecularPower float32
}

// DefaultMaterial is the renderer's initial material: opaque white with a
// specular power of 1, matching make_renderer in the reference source.
func DefaultMaterial() Material {
	return Material{
		Ambient:       color.White,
		Diffuse:       color.White,
		Specular:      color.White,
		SpecularPower: 1,
	}
}

// Light is an authored point light: a world/model-space position plus
// ambient, diffuse and specular colors (spec.md §3).
type Light struct {
	Pos      linear.Vector3
	Ambient  color.Color
	Diffuse  color.Color
	Specular color.Color
}

// processedLight is a light after eye-space transform and material
// pre-modulation (spec.md §3): Ambient is carried through untouched,
// Diffuse/Specular are Diffuse/Specular modulated by the current
// material's corresponding channel (spec.md §9 note 6: the reference
// source assigns Diffuse twice, once from the light's Ambient field and
// then immediately overwritten by the correct Diffuse*Diffuse product —
// only the second assignment is kept here).
type processedLight struct {
	pos      linear.Vector3
	ambient  color.Color
	diffuse  color.Color
	specular color.Color
}

// processedVertex is the internal, per-draw vertex record produced by the
// vertex stage (spec.md §3, §4.H.1).
type processedVertex struct {
	eye      linear.Vector3 // fragment-to-camera direction, unnormalized
	normal   linear.Vector3 // transformed, normalized
	color    color.Color
	texCoord linear.Vector2
	ndc      linear.Vector3 // x/w, y/w, z/w
	w        float32        // retained clip-space w
	done     bool           // dedup flag for draw_elements
}
