package gldraw

import "hash/fnv"

// position (3) + normal (3)
const floatsPerVertex = 6

var cubeFaces = [6]struct {
	normal [3]float32
	u, v   [3]float32
}{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
}

// CubeVertices returns the interleaved triangle list of a unit cube with
// counter-clockwise front faces.
func CubeVertices() []float32 {
	out := make([]float32, 0, 6*6*floatsPerVertex)
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	for _, f := range cubeFaces {
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				out = append(out, 0.5*(f.normal[i]+c[0]*f.u[i]+c[1]*f.v[i]))
			}
			out = append(out, f.normal[:]...)
		}
	}
	return out
}

// ColorFor derives a stable color from a node name.
func ColorFor(name string) [3]float32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return [3]float32{
		0.35 + 0.65*float32(sum&0xff)/255,
		0.35 + 0.65*float32(sum>>8&0xff)/255,
		0.35 + 0.65*float32(sum>>16&0xff)/255,
	}
}
