// Package renderer owns OpenGL initialization and per-frame state.
package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/scenegraph/internal/logger"
)

// Renderer sets up global GL state and brackets each frame.
// Create it only after a GL context is current.
type Renderer struct {
	width, height int
	log           *zap.Logger
}

// New initializes OpenGL and the default pipeline state.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}

	r := &Renderer{log: logger.Named("renderer")}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.08, 0.12, 1.0)

	r.Resize(width, height)
	return r, nil
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Begin clears the color and depth buffers.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End reports any GL error raised during the frame.
func (r *Renderer) End() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("gl error 0x%x", code)
	}
	return nil
}
