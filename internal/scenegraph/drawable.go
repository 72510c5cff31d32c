package scenegraph

import "github.com/Faultbox/scenegraph/pkg/math"

// Drawable is the payload a node may own. Draw receives the composed
// model-view-projection, model-view, normal and model matrices.
type Drawable interface {
	Draw(mvp, modelView, normal, model math.Mat4) error
}

// DrawableFunc adapts a function to the Drawable interface.
type DrawableFunc func(mvp, modelView, normal, model math.Mat4) error

// Draw calls f.
func (f DrawableFunc) Draw(mvp, modelView, normal, model math.Mat4) error {
	return f(mvp, modelView, normal, model)
}
