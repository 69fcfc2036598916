// Package linear implements the vector and matrix algebra used by the
// rasterizer: 2/3/4-component float32 vectors and 3x3/4x4 matrices, built
// on top of github.com/go-gl/mathgl/mgl32.
package linear

import "github.com/go-gl/mathgl/mgl32"

// Vector2 is a 2-component float32 vector, used for texture coordinates.
type Vector2 mgl32.Vec2

// Vector3 is a 3-component float32 vector, used for positions, normals and
// eye-space directions.
type Vector3 mgl32.Vec3

// Vector4 is a 4-component float32 vector, used for homogeneous clip-space
// coordinates.
type Vector4 mgl32.Vec4

// NewVector2 builds a Vector2 from its components.
func NewVector2(x, y float32) Vector2 { return Vector2{x, y} }

// NewVector3 builds a Vector3 from its components.
func NewVector3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

// NewVector4 builds a Vector4 from its components.
func NewVector4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

func (v Vector2) mgl() mgl32.Vec2 { return mgl32.Vec2(v) }
func (v Vector3) mgl() mgl32.Vec3 { return mgl32.Vec3(v) }
func (v Vector4) mgl() mgl32.Vec4 { return mgl32.Vec4(v) }

// X, Y, Z, W are convenience accessors mirroring mgl32's own.
func (v Vector2) X() float32 { return v[0] }
func (v Vector2) Y() float32 { return v[1] }

func (v Vector3) X() float32 { return v[0] }
func (v Vector3) Y() float32 { return v[1] }
func (v Vector3) Z() float32 { return v[2] }

func (v Vector4) X() float32 { return v[0] }
func (v Vector4) Y() float32 { return v[1] }
func (v Vector4) Z() float32 { return v[2] }
func (v Vector4) W() float32 { return v[3] }

// Add returns a+b.
func (a Vector3) Add(b Vector3) Vector3 { return Vector3(a.mgl().Add(b.mgl())) }

// Sub returns a-b.
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3(a.mgl().Sub(b.mgl())) }

// Scale returns f*v.
func (v Vector3) Scale(f float32) Vector3 { return Vector3(v.mgl().Mul(f)) }

// Dot returns the dot product a.b.
func (a Vector3) Dot(b Vector3) float32 { return a.mgl().Dot(b.mgl()) }

// Cross returns a x b.
func (a Vector3) Cross(b Vector3) Vector3 { return Vector3(a.mgl().Cross(b.mgl())) }

// Len returns the Euclidean length of v.
func (v Vector3) Len() float32 { return v.mgl().Len() }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged; that case is checked here before calling mgl32, which would
// otherwise divide by a zero length.
func (v Vector3) Normalize() Vector3 {
	if v == (Vector3{}) {
		return v
	}
	return Vector3(v.mgl().Normalize())
}

// Reflect returns ray - 2*max(dot(ray,n),0)*n, the same half-vector-style
// reflection the original rasterizer core uses for specular highlights.
func Reflect(ray, n Vector3) Vector3 {
	d := ray.Dot(n)
	if d < 0 {
		d = 0
	}
	return ray.Sub(n.Scale(2 * d))
}

// Add returns a+b.
func (a Vector2) Add(b Vector2) Vector2 { return Vector2(a.mgl().Add(b.mgl())) }

// Scale returns f*v.
func (v Vector2) Scale(f float32) Vector2 { return Vector2(v.mgl().Mul(f)) }
