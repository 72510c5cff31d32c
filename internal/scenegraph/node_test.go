package scenegraph

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/Faultbox/scenegraph/pkg/math"
)

type call struct {
	name                          string
	mvp, modelView, normal, model math.Mat4
}

type recorder struct {
	calls []call
}

func (r *recorder) payload(name string) Drawable {
	return DrawableFunc(func(mvp, modelView, normal, model math.Mat4) error {
		r.calls = append(r.calls, call{name, mvp, modelView, normal, model})
		return nil
	})
}

func (r *recorder) names() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func identities() (math.Mat4, math.Mat4, math.Mat4, math.Mat4) {
	return math.Identity(), math.Identity(), math.Identity(), math.Identity()
}

func TestNewAppendsToParent(t *testing.T) {
	root := New(nil, Identity(), nil)
	a := New(nil, Identity(), root)
	b := New(nil, Identity(), root)

	if !root.IsRoot() {
		t.Error("root should be a root")
	}
	if a.Parent() != root || b.Parent() != root {
		t.Error("children should point back to root")
	}
	children := root.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Fatalf("children: got %v, want [a b]", children)
	}

	// Children returns a copy.
	children[0] = nil
	if root.Children()[0] != a {
		t.Error("mutating the Children result should not change the tree")
	}
}

func TestDrawConcreteScenario(t *testing.T) {
	rec := &recorder{}
	r := New(nil, Identity(), nil)
	a := New(rec.payload("A"), Matrix(math.Translate(1, 0, 0)), r)
	New(rec.payload("B"), Matrix(math.Translate(0, 1, 0)), a)

	if err := r.Draw(identities()); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := rec.names(); !equalNames(got, []string{"A", "B"}) {
		t.Fatalf("draw order: got %v, want [A B]", got)
	}
	if got := rec.calls[0].model; got != math.Translate(1, 0, 0) {
		t.Errorf("A model: got %v, want translate(1,0,0)", got)
	}
	if got := rec.calls[1].model; got != math.Translate(1, 1, 0) {
		t.Errorf("B model: got %v, want translate(1,1,0)", got)
	}
}

func TestDrawPreOrder(t *testing.T) {
	rec := &recorder{}
	p := New(rec.payload("p"), Identity(), nil)
	c1 := New(rec.payload("c1"), Identity(), p)
	New(rec.payload("c1.a"), Identity(), c1)
	New(rec.payload("c1.b"), Identity(), c1)
	c2 := New(rec.payload("c2"), Identity(), p)
	New(rec.payload("c2.a"), Identity(), c2)
	New(rec.payload("c3"), Identity(), p)

	want := []string{"p", "c1", "c1.a", "c1.b", "c2", "c2.a", "c3"}

	if err := p.Draw(identities()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := rec.names(); !equalNames(got, want) {
		t.Errorf("Draw order: got %v, want %v", got, want)
	}

	rec.calls = nil
	if err := p.DrawIter(identities()); err != nil {
		t.Fatalf("DrawIter: %v", err)
	}
	if got := rec.names(); !equalNames(got, want) {
		t.Errorf("DrawIter order: got %v, want %v", got, want)
	}
}

func TestDrawSkipsNodesWithoutPayload(t *testing.T) {
	rec := &recorder{}
	root := New(nil, Matrix(math.Translate(0, 0, 5)), nil)
	pivot := New(nil, Matrix(math.Translate(2, 0, 0)), root)
	New(rec.payload("leaf"), Matrix(math.Translate(0, 3, 0)), pivot)

	if err := root.Draw(identities()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(rec.calls))
	}
	if got := rec.calls[0].model.Translation(); got != (math.Vec3{X: 2, Y: 3, Z: 5}) {
		t.Errorf("leaf translation: got %v, want (2,3,5)", got)
	}
}

type traversal struct {
	name string
	draw func(viewProjection, modelView, normal, model math.Mat4) error
}

// traversals returns both drawing strategies for n.
func traversals(n *Node) []traversal {
	return []traversal{
		{"Draw", n.Draw},
		{"DrawIter", n.DrawIter},
	}
}

func TestDrawIdentitySeedsGiveAncestorProduct(t *testing.T) {
	locals := []math.Mat4{
		math.Translate(1, 2, 3),
		math.RotateY(0.6),
		math.Scale(2, 1, 0.5),
		math.RotateX(-1.1).Mul(math.Translate(0, 4, 0)),
	}

	rec := &recorder{}
	var parent *Node
	var root *Node
	for i, l := range locals {
		n := New(rec.payload(string(rune('a'+i))), Matrix(l), parent)
		if root == nil {
			root = n
		}
		parent = n
	}

	for _, tr := range traversals(root) {
		t.Run(tr.name, func(t *testing.T) {
			rec.calls = nil
			if err := tr.draw(identities()); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if len(rec.calls) != len(locals) {
				t.Fatalf("expected %d calls, got %d", len(locals), len(rec.calls))
			}

			want := math.Identity()
			for i, l := range locals {
				want = want.Mul(l)
				c := rec.calls[i]
				for _, got := range []math.Mat4{c.mvp, c.modelView, c.normal, c.model} {
					if got != want {
						t.Errorf("node %s: got %v, want %v", c.name, got, want)
					}
				}
			}
		})
	}
}

func TestDrawSeedOnTheLeft(t *testing.T) {
	seed := math.RotateZ(0.5).Mul(math.Translate(0, 2, 0))
	local := math.Translate(1, 0, 0).Mul(math.RotateX(0.8))

	left := seed.Mul(local)
	right := local.Mul(seed)
	if left.ApproxEqual(right, 1e-4) {
		t.Fatal("test matrices must not commute")
	}

	rec := &recorder{}
	n := New(rec.payload("n"), Matrix(local), nil)

	for _, tr := range traversals(n) {
		t.Run(tr.name, func(t *testing.T) {
			rec.calls = nil
			if err := tr.draw(seed, seed, seed, seed); err != nil {
				t.Fatalf("draw: %v", err)
			}

			c := rec.calls[0]
			for name, got := range map[string]math.Mat4{
				"mvp": c.mvp, "modelView": c.modelView, "normal": c.normal, "model": c.model,
			} {
				if got != left {
					t.Errorf("%s: got %v, want seed*local %v", name, got, left)
				}
			}
		})
	}
}

func TestDrawSiblingsInheritParentMatrices(t *testing.T) {
	rootLocal := math.Translate(1, 0, 0)
	firstLocal := math.RotateZ(0.5)
	grandLocal := math.Translate(0, 2, 0)
	secondLocal := math.Scale(2, 1, 3)

	rec := &recorder{}
	root := New(rec.payload("root"), Matrix(rootLocal), nil)
	first := New(rec.payload("first"), Matrix(firstLocal), root)
	New(rec.payload("grand"), Matrix(grandLocal), first)
	New(rec.payload("second"), Matrix(secondLocal), root)

	seeds := [4]math.Mat4{
		math.RotateX(0.3),
		math.RotateY(-0.7),
		math.Translate(0, 0, -4),
		math.Scale(1, 2, 1).Mul(math.RotateZ(1.2)),
	}
	products := map[string]math.Mat4{
		"root":   rootLocal,
		"first":  rootLocal.Mul(firstLocal),
		"grand":  rootLocal.Mul(firstLocal).Mul(grandLocal),
		"second": rootLocal.Mul(secondLocal),
	}

	for _, tr := range traversals(root) {
		t.Run(tr.name, func(t *testing.T) {
			rec.calls = nil
			if err := tr.draw(seeds[0], seeds[1], seeds[2], seeds[3]); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if got := rec.names(); !equalNames(got, []string{"root", "first", "grand", "second"}) {
				t.Fatalf("draw order: got %v", got)
			}

			for _, c := range rec.calls {
				p := products[c.name]
				got := [4]math.Mat4{c.mvp, c.modelView, c.normal, c.model}
				for i := range seeds {
					if want := seeds[i].Mul(p); !got[i].ApproxEqual(want, 1e-5) {
						t.Errorf("%s matrix %d: got %v, want %v", c.name, i, got[i], want)
					}
				}
			}
		})
	}
}

func TestDrawArgumentOrder(t *testing.T) {
	vp := math.Translate(1, 0, 0)
	mv := math.Translate(0, 1, 0)
	nm := math.Translate(0, 0, 1)
	md := math.Scale(2, 2, 2)

	rec := &recorder{}
	n := New(rec.payload("n"), Identity(), nil)
	if err := n.Draw(vp, mv, nm, md); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	c := rec.calls[0]
	if c.mvp != vp || c.modelView != mv || c.normal != nm || c.model != md {
		t.Errorf("payload received matrices in the wrong order: %+v", c)
	}
}

func TestDrawPropagatesPayloadError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{}

	root := New(rec.payload("root"), Identity(), nil)
	New(DrawableFunc(func(_, _, _, _ math.Mat4) error { return boom }), Identity(), root)
	New(rec.payload("after"), Identity(), root)

	for name, draw := range map[string]func(a, b, c, d math.Mat4) error{
		"Draw":     root.Draw,
		"DrawIter": root.DrawIter,
	} {
		rec.calls = nil
		if err := draw(identities()); err != boom {
			t.Errorf("%s: got error %v, want %v unchanged", name, err, boom)
		}
		if got := rec.names(); !equalNames(got, []string{"root"}) {
			t.Errorf("%s: traversal should stop at the failing payload, drew %v", name, got)
		}
	}
}

func TestDisjointRoots(t *testing.T) {
	rec := &recorder{}
	r1 := New(rec.payload("r1"), Identity(), nil)
	r2 := New(rec.payload("r2"), Identity(), nil)
	New(rec.payload("r1.child"), Identity(), r1)

	if err := r2.Draw(identities()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := rec.names(); !equalNames(got, []string{"r2"}) {
		t.Errorf("drawing r2 should not reach r1's tree, drew %v", got)
	}
}

func TestWalk(t *testing.T) {
	root := New(nil, Identity(), nil)
	a := New(nil, Identity(), root)
	New(nil, Identity(), a)
	b := New(nil, Identity(), root)

	var visited []*Node
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		visited = append(visited, n)
		depths = append(depths, depth)
		return n != a
	})

	if len(visited) != 3 || visited[0] != root || visited[1] != a || visited[2] != b {
		t.Errorf("Walk should skip a's subtree, visited %d nodes", len(visited))
	}
	if depths[0] != 0 || depths[1] != 1 || depths[2] != 1 {
		t.Errorf("depths: got %v, want [0 1 1]", depths)
	}
}

func TestDestroy(t *testing.T) {
	rec := &recorder{}
	root := New(rec.payload("root"), Identity(), nil)
	a := New(rec.payload("a"), Identity(), root)
	aa := New(rec.payload("a.a"), Identity(), a)
	b := New(rec.payload("b"), Identity(), root)

	a.Destroy()

	if got := root.Children(); len(got) != 1 || got[0] != b {
		t.Fatalf("root children after Destroy: got %v, want [b]", got)
	}
	if !a.Destroyed() || !aa.Destroyed() {
		t.Error("destroyed subtree should be marked destroyed")
	}
	if aa.Parent() != nil || len(a.Children()) != 0 {
		t.Error("destroyed nodes should not stay linked")
	}
	if a.Payload() != nil || aa.Payload() != nil {
		t.Error("destroyed nodes should release their payloads")
	}

	if err := root.Draw(identities()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := rec.names(); !equalNames(got, []string{"root", "b"}) {
		t.Errorf("draw after Destroy: got %v, want [root b]", got)
	}

	if err := aa.Draw(identities()); !errors.Is(err, ErrDestroyed) {
		t.Errorf("drawing a destroyed node: got %v, want ErrDestroyed", err)
	}
}

func TestDestroyRoot(t *testing.T) {
	root := New(nil, Identity(), nil)
	child := New(nil, Identity(), root)
	root.Destroy()
	if !root.Destroyed() || !child.Destroyed() {
		t.Error("destroying a root should release every descendant")
	}
}
