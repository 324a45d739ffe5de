package dotfield

import (
	"github.com/go-gl/mathgl/mgl64"
)

// nodeIDCounter is a plain counter (dotfield is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene graph element. A single flat struct is used for all node
// types; Type selects which of the typed fields are meaningful.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Position and Scale are in world units.
	Position mgl64.Vec3
	Scale    mgl64.Vec3

	Visible bool

	// Mesh fields (NodeTypeMesh)
	Geometry *Geometry
	Material *ShaderMaterial

	// Camera field (NodeTypeCamera)
	Camera *OrthographicCamera
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Visible = true
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewMesh creates a mesh node drawing geometry with the given material.
func NewMesh(name string, geometry *Geometry, material *ShaderMaterial) *Node {
	n := &Node{
		Name:     name,
		Type:     NodeTypeMesh,
		Geometry: geometry,
		Material: material,
	}
	nodeDefaults(n)
	return n
}

// ModelMatrix returns Translate(Position) * Scale(Scale).
func (n *Node) ModelMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	return t.Mul4(mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()))
}

// WorldMatrix returns the model matrix composed with every ancestor's.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.ModelMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.ModelMatrix().Mul4(m)
	}
	return m
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dotfield: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("dotfield: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dotfield: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// CountType returns how many nodes of type t are in the subtree rooted at n.
func (n *Node) CountType(t NodeType) int {
	count := 0
	n.Walk(func(c *Node) bool {
		if c.Type == t {
			count++
		}
		return true
	})
	return count
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
