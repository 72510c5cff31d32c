// Package drawable provides scene graph payloads that need no GPU:
// a call recorder, a logging decorator and a failing stub.
package drawable

import (
	"sync"

	"github.com/Faultbox/scenegraph/internal/scenegraph"
	"github.com/Faultbox/scenegraph/pkg/math"
)

// Call is one recorded Draw invocation.
type Call struct {
	Name      string
	MVP       math.Mat4
	ModelView math.Mat4
	Normal    math.Mat4
	Model     math.Mat4
}

// Recorder collects Draw invocations from any number of named payloads
// in the order they happen.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Payload returns a drawable that records its calls under name.
func (r *Recorder) Payload(name string) scenegraph.Drawable {
	return scenegraph.DrawableFunc(func(mvp, modelView, normal, model math.Mat4) error {
		r.mu.Lock()
		r.calls = append(r.calls, Call{
			Name:      name,
			MVP:       mvp,
			ModelView: modelView,
			Normal:    normal,
			Model:     model,
		})
		r.mu.Unlock()
		return nil
	})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns the payload names in call order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Name
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = r.calls[:0]
	r.mu.Unlock()
}
