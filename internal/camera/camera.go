// Package camera provides the orbit camera that seeds scene traversal.
package camera

import (
	gomath "math"

	"github.com/Faultbox/scenegraph/internal/config"
	"github.com/Faultbox/scenegraph/pkg/math"
)

// Seeds are the four matrices a root node is drawn with.
type Seeds struct {
	ViewProjection math.Mat4
	ModelView      math.Mat4
	Normal         math.Mat4
	Model          math.Mat4
}

// NormalFromModelView returns s with the normal seed replaced by the
// inverse-transpose of the model-view seed.
func (s Seeds) NormalFromModelView() Seeds {
	s.Normal = s.ModelView.Inverse().Transpose()
	return s
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	FovY float32 // radians
	Near float32
	Far  float32

	InverseTransposeNormal bool
}

// NewOrbitCamera creates an orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10,
		RotationX:       0.4,
		MinDistance:     1,
		MaxDistance:     500,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            float32(gomath.Pi / 3),
		Near:            0.1,
		Far:             1000,
	}
}

// FromConfig creates an orbit camera from configuration.
func FromConfig(cfg config.CameraConfig) *OrbitCamera {
	c := NewOrbitCamera()
	c.Center = math.V3(cfg.Center)
	c.Distance = cfg.Distance
	c.RotationX = cfg.Pitch
	c.RotationY = cfg.Yaw
	c.FovY = float32(float64(cfg.FovYDegrees) * gomath.Pi / 180)
	c.Near = cfg.Near
	c.Far = cfg.Far
	c.InverseTransposeNormal = cfg.InverseTransposeNormal
	c.clamp()
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinX, cosX := gomath.Sincos(float64(c.RotationX))
	sinY, cosY := gomath.Sincos(float64(c.RotationY))

	return c.Center.Add(math.Vec3{
		X: c.Distance * float32(cosX*sinY),
		Y: c.Distance * float32(sinX),
		Z: c.Distance * float32(cosX*cosY),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Seeds returns the matrices a root is drawn with: projection*view, view
// for both model-view and normal, and identity for the model matrix.
// The normal seed is the view matrix itself unless InverseTransposeNormal
// is set.
func (c *OrbitCamera) Seeds(aspect float32) Seeds {
	view := c.ViewMatrix()
	s := Seeds{
		ViewProjection: c.ProjectionMatrix(aspect).Mul(view),
		ModelView:      view,
		Normal:         view,
		Model:          math.Identity(),
	}
	if c.InverseTransposeNormal {
		s = s.NormalFromModelView()
	}
	return s
}

// HandleDrag updates rotation from a mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom updates distance from a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.RotationX = clampf(c.RotationX, c.MinPitch, c.MaxPitch)
	c.Distance = clampf(c.Distance, c.MinDistance, c.MaxDistance)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
