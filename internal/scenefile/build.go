package scenefile

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/scenegraph/internal/logger"
	"github.com/Faultbox/scenegraph/internal/scenegraph"
	"github.com/Faultbox/scenegraph/pkg/math"
)

// PayloadFactory creates the payload for a node marked drawable.
type PayloadFactory func(name string) (scenegraph.Drawable, error)

// Scene is a built scene: its roots in file order and every node by name.
type Scene struct {
	Name  string
	Roots []*scenegraph.Node
	Nodes map[string]*scenegraph.Node
}

// Build validates f and constructs its node trees. Parents are always
// constructed before their children; siblings keep file order.
func (f *File) Build(factory PayloadFactory) (*Scene, error) {
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scene")
	}

	children := make(map[string][]*NodeSpec, len(f.Nodes))
	var roots []*NodeSpec
	for i := range f.Nodes {
		n := &f.Nodes[i]
		if n.Parent == "" {
			roots = append(roots, n)
		} else {
			children[n.Parent] = append(children[n.Parent], n)
		}
	}

	s := &Scene{
		Name:  f.Name,
		Nodes: make(map[string]*scenegraph.Node, len(f.Nodes)),
	}

	var build func(spec *NodeSpec, parent *scenegraph.Node) error
	build = func(spec *NodeSpec, parent *scenegraph.Node) error {
		var payload scenegraph.Drawable
		if spec.Drawable && factory != nil {
			p, err := factory(spec.Name)
			if err != nil {
				return errors.Wrapf(err, "payload for node %q", spec.Name)
			}
			payload = p
		}

		node := scenegraph.New(payload, spec.Transform(), parent)
		s.Nodes[spec.Name] = node
		if parent == nil {
			s.Roots = append(s.Roots, node)
		}

		for _, child := range children[spec.Name] {
			if err := build(child, node); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range roots {
		if err := build(root, nil); err != nil {
			return nil, err
		}
	}

	logger.Named("scenefile").Debug("scene built",
		zap.String("scene", s.Name),
		zap.Int("roots", len(s.Roots)),
		zap.Int("nodes", len(s.Nodes)),
	)
	return s, nil
}

// Draw draws every root in file order with the same seed matrices.
func (s *Scene) Draw(viewProjection, modelView, normal, model math.Mat4) error {
	for _, root := range s.Roots {
		if err := root.Draw(viewProjection, modelView, normal, model); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of live nodes reachable from the roots.
func (s *Scene) Count() int {
	count := 0
	for _, root := range s.Roots {
		root.Walk(func(*scenegraph.Node, int) bool {
			count++
			return true
		})
	}
	return count
}
