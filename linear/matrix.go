package linear

import "github.com/go-gl/mathgl/mgl32"

// Matrix3 is a 3x3 float32 matrix, used for transforming normals.
type Matrix3 mgl32.Mat3

// Matrix4 is a 4x4 float32 matrix, used for model-view and projection
// transforms.
type Matrix4 mgl32.Mat4

func (m Matrix3) mgl() mgl32.Mat3 { return mgl32.Mat3(m) }
func (m Matrix4) mgl() mgl32.Mat4 { return mgl32.Mat4(m) }

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 { return Matrix3(mgl32.Ident3()) }

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 { return Matrix4(mgl32.Ident4()) }

// Translate returns a matrix that translates by v.
func Translate(v Vector3) Matrix4 {
	return Matrix4(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

// Scale returns a matrix that scales independently along each axis.
func Scale(v Vector3) Matrix4 {
	return Matrix4(mgl32.Scale3D(v.X(), v.Y(), v.Z()))
}

// LookAt builds a view matrix placing the camera at eye, looking at center,
// with the given up direction.
func LookAt(eye, center, up Vector3) Matrix4 {
	return Matrix4(mgl32.LookAtV(eye.mgl(), center.mgl(), up.mgl()))
}

// Perspective builds a perspective projection matrix. fov is the full
// vertical field of view in radians, aspect is width/height, and zNear/zFar
// are positive distances to the near and far planes.
//
// It maps eye-space (0,0,-zNear) to NDC z=-1 and (0,0,-zFar) to NDC z=+1,
// matching the OpenGL clip-space convention the rest of the pipeline
// assumes (spec.md §8, "Matrix invariants").
func Perspective(fov, aspect, zNear, zFar float32) Matrix4 {
	return Matrix4(mgl32.Perspective(fov, aspect, zNear, zFar))
}

// Multiply returns a*b.
func (a Matrix4) Multiply(b Matrix4) Matrix4 {
	return Matrix4(a.mgl().Mul4(b.mgl()))
}

// UpperLeft3x3 extracts the rotation/scale part of m, discarding the
// translation column and the bottom row.
func (m Matrix4) UpperLeft3x3() Matrix3 {
	return Matrix3(m.mgl().Mat3())
}

// InverseTranspose returns the transpose of the inverse of m. This is the
// standard way to transform normals under a non-uniform model-view
// transform, and is what the normal matrix in renderer state always holds
// (spec.md §3 invariant).
func (m Matrix3) InverseTranspose() Matrix3 {
	return Matrix3(m.mgl().Inv().Transpose())
}

// Apply transforms v as a point: it is treated as having an implicit w=1,
// and the matrix's last row is ignored (the result is always exactly
// 3-component, never projected). Used for model-view transforms of vertex
// positions, where perspective division has not happened yet.
func (m Matrix4) Apply(v Vector3) Vector3 {
	r := m.mgl().Mul4x1(mgl32.Vec4{v.X(), v.Y(), v.Z(), 1})
	return Vector3{r[0], r[1], r[2]}
}

// Apply transforms v by the 3x3 matrix (no translation component, since
// there is none to have).
func (m Matrix3) Apply(v Vector3) Vector3 {
	return Vector3(m.mgl().Mul3x1(v.mgl()))
}

// Project transforms v as a homogeneous point and returns the full
// 4-component result (x,y,z,w) with no perspective division applied. The
// retained w is required later for perspective-correct interpolation
// (spec.md §4.H.6).
func (m Matrix4) Project(v Vector3) Vector4 {
	return Vector4(m.mgl().Mul4x1(mgl32.Vec4{v.X(), v.Y(), v.Z(), 1}))
}
