package scenegraph

import "github.com/Faultbox/scenegraph/pkg/math"

// frame is a pending visit: a node plus the matrices it inherits.
type frame struct {
	node                          *Node
	mvp, modelView, normal, model math.Mat4
}

// DrawIter draws the same sequence as Draw using an explicit work list
// instead of recursion, so tree depth does not grow the goroutine stack.
func (n *Node) DrawIter(viewProjection, modelView, normal, model math.Mat4) error {
	stack := []frame{{node: n, mvp: viewProjection, modelView: modelView, normal: normal, model: model}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := f.node
		if node.destroyed {
			return ErrDestroyed
		}
		local := node.transform.Matrix()

		mdl := f.model.Mul(local)
		mvp := f.mvp.Mul(local)
		mv := f.modelView.Mul(local)
		nrm := f.normal.Mul(local)

		if node.payload != nil {
			if err := node.payload.Draw(mvp, mv, nrm, mdl); err != nil {
				return err
			}
		}

		// Push in reverse so the first child is popped first.
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: node.children[i], mvp: mvp, modelView: mv, normal: nrm, model: mdl})
		}
	}
	return nil
}
