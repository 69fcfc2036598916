package raster

import (
	"github.com/gorender/swraster/linear"
	"github.com/gorender/swraster/vertex"
)

// processVertex runs the per-vertex transform (spec.md §4.H.1): model-view
// transform into eye space, normal transform, projection into clip space,
// and the perspective divide into NDC. The negated eye-space position is
// retained as the fragment-to-camera direction used later for diffuse and
// specular lighting.
func (s *State) processVertex(v vertex.Vertex) processedVertex {
	s.vertexStageCalls++

	posEye := s.modelView.Apply(v.Pos)

	clip := s.projection.Project(posEye)
	w := clip.W()

	return processedVertex{
		eye:      posEye.Scale(-1),
		normal:   s.normalMatrix.Apply(v.Normal).Normalize(),
		color:    v.Color,
		texCoord: v.TexCoord,
		ndc:      linear.NewVector3(clip.X()/w, clip.Y()/w, clip.Z()/w),
		w:        w,
		done:     true,
	}
}
