package rangeslider

import "strings"

// nodeIDCounter is a plain counter; scenes are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// Node is the scene graph element. A slider is built from four nodes (track,
// buffer, fill, handle); nodes carry class names so integrations can decorate
// them and so the slider can tell which part a pointer landed on.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y           float64
	ScaleX, ScaleY float64

	// Box
	Width, Height float64
	Radius        float64 // corner radius used when drawing
	Color         Color

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	classes []string

	// Computed
	worldTransform [6]float64
	transformDirty bool

	disposed bool
}

// NewNode creates a visible node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Color:          ColorWhite,
		Visible:        true,
		transformDirty: true,
		worldTransform: identityTransform,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("rangeslider: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("rangeslider: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("rangeslider: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// IsDescendantOf reports whether n is ancestor or lies in ancestor's subtree.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	return isAncestor(ancestor, n)
}

// --- Box ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetSize sets the node's box size.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// MarkDirty forces the world transform to be recomputed on the next refresh.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Classes ---

// AddClass adds name to the node's class list. Duplicates are ignored.
func (n *Node) AddClass(name string) {
	if name == "" || n.HasClass(name) {
		return
	}
	n.classes = append(n.classes, name)
}

// RemoveClass removes every occurrence of name from the class list.
func (n *Node) RemoveClass(name string) {
	out := n.classes[:0]
	for _, c := range n.classes {
		if c != name {
			out = append(out, c)
		}
	}
	n.classes = out
}

// ToggleClass adds name when on is true and removes it otherwise.
func (n *Node) ToggleClass(name string, on bool) {
	if on {
		n.AddClass(name)
	} else {
		n.RemoveClass(name)
	}
}

// HasClass reports whether name is in the node's class list.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ClassName returns the class list joined with spaces.
func (n *Node) ClassName() string {
	return strings.Join(n.classes, " ")
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.classes = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
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

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
