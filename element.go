package xrview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Element is a node in the overlay UI tree. Elements form the overlay
// subtree that the placement controller moves between the default host
// container and the renderer's AR slot. A single flat struct covers
// containers, labeled readouts, and drawn panels.
type Element struct {
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// X and Y are the screen-anchored position of the element, used by
	// hotspots and drawn panels. Containers typically leave them zero.
	X, Y float64

	// Visible controls whether the element (and its canvas) is shown.
	Visible bool

	// Text is the label or readout content for textual elements.
	Text string

	// Canvas is an optional offscreen image for drawn panels (HUD,
	// hotspot badges). Nil for pure containers and labels.
	Canvas *ebiten.Image

	disposed bool
}

// NewElement creates a container or label element with no canvas.
func NewElement(name string) *Element {
	return &Element{Name: name, Visible: true}
}

// NewPanel creates an element backed by a w×h offscreen canvas.
func NewPanel(name string, w, h int) *Element {
	return &Element{Name: name, Visible: true, Canvas: ebiten.NewImage(w, h)}
}

// AddChild appends child to this element's children. If child already has
// a parent, it is moved — removed from that parent first, never cloned,
// so a child has exactly one parent at all times. Adding a child to its
// current parent is a no-op.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("xrview: cannot add nil child")
	}
	if e.disposed || child.disposed {
		panic("xrview: AddChild on disposed element")
	}
	if isAncestor(child, e) {
		panic("xrview: adding child would create a cycle")
	}
	if child.Parent == e {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("xrview: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
	}
	e.children = e.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// Contains reports whether candidate is this element or one of its
// descendants.
func (e *Element) Contains(candidate *Element) bool {
	for p := candidate; p != nil; p = p.Parent {
		if p == e {
			return true
		}
	}
	return false
}

// ChildByName returns the first descendant (depth-first) with the given
// name, or nil if none matches.
func (e *Element) ChildByName(name string) *Element {
	for _, child := range e.children {
		if child.Name == name {
			return child
		}
		if found := child.ChildByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants. Canvases are deallocated.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	if e.Canvas != nil {
		e.Canvas.Deallocate()
		e.Canvas = nil
	}
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// isAncestor reports whether candidate is an ancestor of element.
func isAncestor(candidate, element *Element) bool {
	for p := element; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in
// the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
