package gldraw

import "testing"

func TestCubeVertices(t *testing.T) {
	v := CubeVertices()
	if len(v) != 36*floatsPerVertex {
		t.Fatalf("expected 36 vertices, got %d floats", len(v))
	}

	for i := 0; i < len(v); i += floatsPerVertex {
		for j := 0; j < 3; j++ {
			if p := v[i+j]; p != 0.5 && p != -0.5 {
				t.Fatalf("vertex %d: coordinate %f not on the unit cube", i/floatsPerVertex, p)
			}
		}
	}

	// Every triangle must wind counter-clockwise around its normal.
	for tri := 0; tri < 12; tri++ {
		base := tri * 3 * floatsPerVertex
		a := vec(v, base)
		b := vec(v, base+floatsPerVertex)
		c := vec(v, base+2*floatsPerVertex)
		n := [3]float32{v[base+3], v[base+4], v[base+5]}

		e1 := sub(b, a)
		e2 := sub(c, a)
		cross := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if dot := cross[0]*n[0] + cross[1]*n[1] + cross[2]*n[2]; dot <= 0 {
			t.Errorf("triangle %d winds clockwise relative to normal %v", tri, n)
		}
	}
}

func TestColorFor(t *testing.T) {
	a := ColorFor("sun")
	if a != ColorFor("sun") {
		t.Error("ColorFor should be deterministic")
	}
	if a == ColorFor("moon") {
		t.Error("different names should usually get different colors")
	}
	for _, c := range a {
		if c < 0.35 || c > 1 {
			t.Errorf("channel %f out of range", c)
		}
	}
}

func vec(v []float32, i int) [3]float32 {
	return [3]float32{v[i], v[i+1], v[i+2]}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
