// Package scene defines the scene node tree produced by brick conversion.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blsconv/pkg/math"
)

// Class is the kind of a scene node.
type Class string

// Node classes.
const (
	Part            Class = "Part"
	WedgePart       Class = "WedgePart"
	CornerWedgePart Class = "CornerWedgePart"
	SpawnLocation   Class = "SpawnLocation"
	Model           Class = "Model"
	CylinderMesh    Class = "CylinderMesh" // Rounds the silhouette of its parent part
)

// IsPart reports whether nodes of the class are physical parts that
// carry size, pose and surface properties.
func (c Class) IsPart() bool {
	switch c {
	case Part, WedgePart, CornerWedgePart, SpawnLocation:
		return true
	}
	return false
}

// Well-known property names.
const (
	PropSize         = "size"
	PropCFrame       = "CFrame"
	PropColor        = "Color3uint8"
	PropTransparency = "Transparency"
	PropCanCollide   = "CanCollide"
	PropName         = "Name"
)

// Node is a scene element. A node exclusively owns its children.
type Node struct {
	Class    Class
	Props    map[string]Value
	Children []*Node

	// pinned properties keep their value when brick appearance is applied.
	pinned map[string]bool
}

// New creates a node. Part classes start with the default properties.
func New(class Class) *Node {
	n := &Node{Class: class}
	if class.IsPart() {
		n.Props = DefaultPartProperties()
	} else {
		n.Props = make(map[string]Value)
	}
	return n
}

// NewPart creates a part of the given class with size and pose set.
func NewPart(class Class, size mgl32.Vec3, pose math.Pose) *Node {
	n := New(class)
	n.SetSize(size)
	n.SetPose(pose)
	return n
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Set sets a property.
func (n *Node) Set(name string, v Value) {
	n.Props[name] = v
}

// Pin sets a property and protects it from appearance injection.
func (n *Node) Pin(name string, v Value) {
	n.Set(name, v)
	if n.pinned == nil {
		n.pinned = make(map[string]bool)
	}
	n.pinned[name] = true
}

// Pinned reports whether the property is pinned.
func (n *Node) Pinned(name string) bool {
	return n.pinned[name]
}

// Size returns the node size, if it has one.
func (n *Node) Size() (mgl32.Vec3, bool) {
	v, ok := n.Props[PropSize].(Vector3)
	return mgl32.Vec3(v), ok
}

// SetSize sets the node size.
func (n *Node) SetSize(size mgl32.Vec3) {
	n.Props[PropSize] = Vector3(size)
}

// Pose returns the node pose, if it has one.
func (n *Node) Pose() (math.Pose, bool) {
	v, ok := n.Props[PropCFrame].(CFrame)
	return math.Pose(v), ok
}

// SetPose sets the node pose.
func (n *Node) SetPose(p math.Pose) {
	n.Props[PropCFrame] = CFrame(p)
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	c := &Node{
		Class: n.Class,
		Props: make(map[string]Value, len(n.Props)),
	}
	for k, v := range n.Props {
		c.Props[k] = v
	}
	if n.pinned != nil {
		c.pinned = make(map[string]bool, len(n.pinned))
		for k := range n.pinned {
			c.pinned[k] = true
		}
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Walk calls fn for n and every descendant, parents first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}

// Instantiate returns a copy of the template tree rooted at n placed at
// outer. n is left untouched.
func (n *Node) Instantiate(outer math.Pose, scale mgl32.Vec3) *Node {
	c := n.Clone()
	c.PlaceAt(outer, scale)
	return c
}

// PlaceAt moves a template tree into place in situ. Every pose in the
// tree is relative to the same canonical frame; each is placed with
// outer and every size is scaled component-wise.
func (n *Node) PlaceAt(outer math.Pose, scale mgl32.Vec3) {
	n.Walk(func(node *Node) {
		if size, ok := node.Size(); ok {
			node.SetSize(mgl32.Vec3{size.X() * scale.X(), size.Y() * scale.Y(), size.Z() * scale.Z()})
		}
		if pose, ok := node.Pose(); ok {
			node.SetPose(outer.Place(pose, scale))
		}
	})
}

// Appearance is the per-brick look applied to every part of a tree.
type Appearance struct {
	Color        Color
	Transparency float32
	CanCollide   bool
}

// ApplyAppearance sets color, transparency and collision on every part
// in the tree, skipping pinned properties.
func (n *Node) ApplyAppearance(a Appearance) {
	n.Walk(func(node *Node) {
		if !node.Class.IsPart() {
			return
		}
		set := func(name string, v Value) {
			if !node.Pinned(name) {
				node.Set(name, v)
			}
		}
		set(PropColor, a.Color)
		set(PropTransparency, Float(a.Transparency))
		set(PropCanCollide, Bool(a.CanCollide))
	})
}
