// Package scenegraph implements a hierarchical transform tree.
//
// Each Node owns a local Transform, an optional Drawable payload and an
// ordered list of children. Drawing a node composes the inherited matrices
// with its local matrix and walks the subtree depth-first, pre-order, in
// child insertion order.
package scenegraph

import (
	"github.com/pkg/errors"

	"github.com/Faultbox/scenegraph/pkg/math"
)

// ErrDestroyed is returned when drawing a node released by Destroy.
var ErrDestroyed = errors.New("scenegraph: node destroyed")

// Node is a node in the scene tree.
//
// The parent link is a non-owning back reference; children are the only
// owning edges. A node is attached to its parent once, at construction.
type Node struct {
	transform Transform
	payload   Drawable
	parent    *Node
	children  []*Node
	destroyed bool
}

// New creates a node with the given payload and local transform.
// payload may be nil for grouping or pivot nodes. When parent is not nil
// the node is appended to the end of parent's children.
func New(payload Drawable, transform Transform, parent *Node) *Node {
	n := &Node{
		transform: transform,
		payload:   payload,
		parent:    parent,
	}
	if parent != nil {
		parent.addChild(n)
	}
	return n
}

func (n *Node) addChild(child *Node) {
	n.children = append(n.children, child)
}

// Draw composes the four inherited matrices with this node's local matrix,
// draws the payload if any, then draws each child with the composed
// matrices. Every accumulator is post-multiplied by the same local matrix;
// the normal matrix is not inverse-transposed.
//
// The first payload error aborts the traversal and is returned unchanged.
func (n *Node) Draw(viewProjection, modelView, normal, model math.Mat4) error {
	if n.destroyed {
		return ErrDestroyed
	}
	local := n.transform.Matrix()

	model = model.Mul(local)
	mvp := viewProjection.Mul(local)
	modelView = modelView.Mul(local)
	normal = normal.Mul(local)

	if n.payload != nil {
		if err := n.payload.Draw(mvp, modelView, normal, model); err != nil {
			return err
		}
	}

	for _, child := range n.children {
		if err := child.Draw(mvp, modelView, normal, model); err != nil {
			return err
		}
	}
	return nil
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Payload returns the drawable payload, which may be nil.
func (n *Node) Payload() Drawable { return n.payload }

// Transform returns the local transform.
func (n *Node) Transform() Transform { return n.transform }

// Children returns a copy of the children in draw order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the visited node's subtree.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// Destroy detaches n from its parent and releases the whole subtree.
// Destroyed nodes keep no links to each other and cannot be drawn.
func (n *Node) Destroy() {
	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i:i], p.children[i+1:]...)
				break
			}
		}
	}
	n.release()
}

func (n *Node) release() {
	for _, child := range n.children {
		child.release()
	}
	n.children = nil
	n.parent = nil
	n.payload = nil
	n.transform = nil
	n.destroyed = true
}

// Destroyed reports whether Destroy was called on n or an ancestor.
func (n *Node) Destroyed() bool { return n.destroyed }
