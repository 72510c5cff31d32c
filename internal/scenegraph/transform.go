package scenegraph

import "github.com/Faultbox/scenegraph/pkg/math"

// Transform produces a node's local matrix, relative to its parent.
// Matrix is called on every draw and must not return a cached value
// that the caller could mutate.
type Transform interface {
	Matrix() math.Mat4
}

// Matrix is a fixed local matrix.
type Matrix math.Mat4

// Matrix returns m.
func (m Matrix) Matrix() math.Mat4 { return math.Mat4(m) }

// Identity is a Transform that leaves its children's frame unchanged.
func Identity() Transform { return Matrix(math.Identity()) }

// TRS is a translation, rotation and scale transform.
// The local matrix is Translate * Rotate * Scale.
type TRS struct {
	Translation math.Vec3
	Rotation    math.Quat
	Scale       math.Vec3
}

// NewTRS returns an identity TRS.
func NewTRS() *TRS {
	return &TRS{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix returns T * R * S.
func (t *TRS) Matrix() math.Mat4 {
	m := math.Translate(t.Translation.X, t.Translation.Y, t.Translation.Z)
	m = m.Mul(t.Rotation.ToMat4())
	return m.Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Rotate applies an extra rotation of angle radians around axis on top of
// the current rotation, in the node's local frame.
func (t *TRS) Rotate(axis math.Vec3, angle float32) {
	t.Rotation = t.Rotation.Mul(math.QuatFromAxisAngle(axis.Normalize(), angle)).Normalize()
}
