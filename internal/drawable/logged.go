package drawable

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scenegraph/internal/scenegraph"
	"github.com/Faultbox/scenegraph/pkg/math"
)

type logged struct {
	name  string
	inner scenegraph.Drawable
	log   *zap.Logger
}

// Logged wraps inner so that every draw is logged at debug level and every
// failure at error level. inner's error is returned unchanged.
func Logged(name string, inner scenegraph.Drawable, log *zap.Logger) scenegraph.Drawable {
	if log == nil {
		log = zap.NewNop()
	}
	return &logged{name: name, inner: inner, log: log}
}

func (l *logged) Draw(mvp, modelView, normal, model math.Mat4) error {
	pos := model.Translation()
	l.log.Debug("draw",
		zap.String("node", l.name),
		zap.Float32("x", pos.X),
		zap.Float32("y", pos.Y),
		zap.Float32("z", pos.Z),
	)
	err := l.inner.Draw(mvp, modelView, normal, model)
	if err != nil {
		l.log.Error("draw failed", zap.String("node", l.name), zap.Error(err))
	}
	return err
}

// Failing returns a drawable whose Draw always returns err.
func Failing(err error) scenegraph.Drawable {
	return scenegraph.DrawableFunc(func(_, _, _, _ math.Mat4) error {
		return err
	})
}
