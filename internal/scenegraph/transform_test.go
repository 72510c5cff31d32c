package scenegraph

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/scenegraph/pkg/math"
)

func TestNewTRSIsIdentity(t *testing.T) {
	if got := NewTRS().Matrix(); !got.ApproxEqual(math.Identity(), 1e-6) {
		t.Errorf("NewTRS().Matrix() = %v, want identity", got)
	}
}

func TestTRSOrder(t *testing.T) {
	trs := NewTRS()
	trs.Translation = math.Vec3{X: 10}
	trs.Rotate(math.Vec3{Z: 1}, float32(gomath.Pi/2))
	trs.Scale = math.Vec3{X: 2, Y: 2, Z: 2}

	// Scale first, then rotate, then translate.
	got := trs.Matrix().TransformPoint(math.Vec3{X: 1})
	want := math.Vec3{X: 10, Y: 2}
	if d := got.Sub(want); d.Length() > 1e-4 {
		t.Errorf("TRS point: got %v, want %v", got, want)
	}
}

func TestTRSIsRecomputedOnDraw(t *testing.T) {
	trs := NewTRS()
	var seen []math.Vec3
	n := New(DrawableFunc(func(_, _, _, model math.Mat4) error {
		seen = append(seen, model.Translation())
		return nil
	}), trs, nil)

	id := math.Identity()
	if err := n.Draw(id, id, id, id); err != nil {
		t.Fatalf("first Draw: %v", err)
	}
	trs.Translation = math.Vec3{Y: 4}
	if err := n.Draw(id, id, id, id); err != nil {
		t.Fatalf("second Draw: %v", err)
	}

	if len(seen) != 2 || seen[0] != (math.Vec3{}) || seen[1] != (math.Vec3{Y: 4}) {
		t.Errorf("translations across draws: got %v", seen)
	}
}
