// Package scenefile loads YAML scene descriptions and builds scene graph
// trees from them.
//
// Nodes are listed flat and reference their parent by name. Siblings are
// drawn in the order they appear in the file.
package scenefile

import (
	gomath "math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scenegraph/internal/scenegraph"
	"github.com/Faultbox/scenegraph/pkg/math"
)

// File is a parsed scene description.
type File struct {
	Name  string     `yaml:"name"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	Name        string        `yaml:"name"`
	Parent      string        `yaml:"parent,omitempty"`
	Drawable    bool          `yaml:"drawable"`
	Translation [3]float32    `yaml:"translation"`
	Rotation    *RotationSpec `yaml:"rotation,omitempty"`
	Scale       *[3]float32   `yaml:"scale,omitempty"`
}

// RotationSpec is an axis-angle rotation.
type RotationSpec struct {
	Axis    [3]float32 `yaml:"axis"`
	Degrees float32    `yaml:"degrees"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing scene %s", path)
	}
	return f, nil
}

// Parse decodes a scene description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Transform returns the node's local TRS transform.
func (s *NodeSpec) Transform() *scenegraph.TRS {
	trs := scenegraph.NewTRS()
	trs.Translation = math.V3(s.Translation)
	if s.Scale != nil {
		trs.Scale = math.V3(*s.Scale)
	}
	if r := s.Rotation; r != nil && r.Degrees != 0 {
		rad := float32(float64(r.Degrees) * gomath.Pi / 180)
		trs.Rotation = math.QuatFromAxisAngle(math.V3(r.Axis).Normalize(), rad)
	}
	return trs
}

// Validate reports every structural problem in the file: empty or
// duplicate names, unknown parents, self-parenting, parent cycles and
// degenerate rotation axes.
func (f *File) Validate() error {
	var err error

	byName := make(map[string]*NodeSpec, len(f.Nodes))
	for i := range f.Nodes {
		n := &f.Nodes[i]
		switch {
		case n.Name == "":
			err = multierr.Append(err, errors.Errorf("node %d: empty name", i))
			continue
		case byName[n.Name] != nil:
			err = multierr.Append(err, errors.Errorf("node %q: duplicate name", n.Name))
			continue
		}
		byName[n.Name] = n

		if r := n.Rotation; r != nil && r.Degrees != 0 && math.V3(r.Axis).Length() == 0 {
			err = multierr.Append(err, errors.Errorf("node %q: zero rotation axis", n.Name))
		}
	}

	for i := range f.Nodes {
		n := &f.Nodes[i]
		if n.Name == "" || n.Parent == "" || byName[n.Name] != n {
			continue
		}
		if n.Parent == n.Name {
			err = multierr.Append(err, errors.Errorf("node %q: is its own parent", n.Name))
			continue
		}
		if byName[n.Parent] == nil {
			err = multierr.Append(err, errors.Errorf("node %q: unknown parent %q", n.Name, n.Parent))
		}
	}

	for _, name := range cycles(f.Nodes, byName) {
		err = multierr.Append(err, errors.Errorf("node %q: parent cycle", name))
	}

	return err
}

// cycles returns, in file order, the first node of each parent cycle.
func cycles(nodes []NodeSpec, byName map[string]*NodeSpec) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(nodes))
	var found []string

	for i := range nodes {
		start := &nodes[i]
		if byName[start.Name] != start || state[start.Name] != unvisited {
			continue
		}
		var path []*NodeSpec
		for cur := start; cur != nil && state[cur.Name] == unvisited; {
			state[cur.Name] = visiting
			path = append(path, cur)
			if cur.Parent == cur.Name {
				break
			}
			next := byName[cur.Parent]
			if next != nil && state[next.Name] == visiting {
				found = append(found, next.Name)
				break
			}
			cur = next
		}
		for _, n := range path {
			state[n.Name] = done
		}
	}
	return found
}
