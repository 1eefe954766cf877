package retained

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when a handle does not resolve.
	ErrInvalidHandle = errors.New("retained: invalid widget handle")

	// ErrAttached is returned when adding a widget that already has a tree.
	ErrAttached = errors.New("retained: widget already attached")

	// ErrRemoveRoot is returned when removing the canvas root.
	ErrRemoveRoot = errors.New("retained: cannot remove canvas root")
)

// ============================================================================
// Tree (one per canvas)
// ============================================================================

type slot struct {
	gen uint32
	w   *Widget
}

// Tree is an arena of widgets rooted at a canvas widget.
// It is not safe for concurrent use; all input runs on the UI thread.
type Tree struct {
	name  string
	slots []slot
	free  []uint32
	root  WidgetID
	count int
}

// NewTree creates a canvas of the given size. The canvas itself is the
// root widget.
func NewTree(name string, width, height int) *Tree {
	t := &Tree{name: name}
	root := NewWidget(name).SetBounds(0, 0, width, height)
	t.root = t.insert(root, 0)
	return t
}

// Name returns the canvas name.
func (t *Tree) Name() string {
	return t.name
}

// Root returns the canvas root handle.
func (t *Tree) Root() WidgetID {
	return t.root
}

// RootWidget returns the canvas root widget.
func (t *Tree) RootWidget() *Widget {
	return t.slots[t.root.index()].w
}

// Len returns the number of live widgets, including the root.
func (t *Tree) Len() int {
	return t.count
}

func (t *Tree) insert(w *Widget, parent WidgetID) WidgetID {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}

	s := &t.slots[idx]
	s.gen++
	if s.gen == 0 {
		// Generation wrapped; zero is reserved for the zero handle
		s.gen = 1
	}
	s.w = w

	id := makeWidgetID(idx, s.gen)
	w.tree = t
	w.id = id
	w.parent = parent
	t.count++
	return id
}

// Widget resolves a handle. Returns nil for zero, stale or foreign handles.
func (t *Tree) Widget(id WidgetID) *Widget {
	if id.IsZero() {
		return nil
	}
	idx := id.index()
	if int(idx) >= len(t.slots) {
		return nil
	}
	s := t.slots[idx]
	if s.w == nil || s.gen != id.gen() {
		return nil
	}
	return s.w
}

// Contains reports whether id resolves to a live widget.
func (t *Tree) Contains(id WidgetID) bool {
	return t.Widget(id) != nil
}

// Add attaches w as the last child of parent.
func (t *Tree) Add(parent WidgetID, w *Widget) (WidgetID, error) {
	if w.tree != nil {
		return 0, fmt.Errorf("add %q: %w", w.name, ErrAttached)
	}
	p := t.Widget(parent)
	if p == nil {
		return 0, fmt.Errorf("add %q: parent: %w", w.name, ErrInvalidHandle)
	}
	id := t.insert(w, parent)
	p.children = append(p.children, id)
	return id, nil
}

// Remove detaches id and its whole subtree. Every handle into the subtree
// becomes invalid.
func (t *Tree) Remove(id WidgetID) error {
	if id == t.root {
		return ErrRemoveRoot
	}
	w := t.Widget(id)
	if w == nil {
		return fmt.Errorf("remove: %w", ErrInvalidHandle)
	}

	if p := t.Widget(w.parent); p != nil {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}

	stack := acquireIDSlice()
	stack = append(stack, id)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cw := t.Widget(cur)
		if cw == nil {
			continue
		}
		stack = append(stack, cw.children...)

		idx := cur.index()
		t.slots[idx].w = nil
		t.free = append(t.free, idx)
		t.count--

		cw.tree = nil
		cw.id = 0
		cw.parent = 0
		cw.children = nil
	}
	releaseIDSlice(stack)
	return nil
}

// Parent returns id's parent, or zero for the root and invalid handles.
func (t *Tree) Parent(id WidgetID) WidgetID {
	w := t.Widget(id)
	if w == nil {
		return 0
	}
	return w.parent
}

// Children returns a copy of id's child handles in z-order (last on top).
func (t *Tree) Children(id WidgetID) []WidgetID {
	w := t.Widget(id)
	if w == nil {
		return nil
	}
	out := make([]WidgetID, len(w.children))
	copy(out, w.children)
	return out
}

// HasChild reports whether child is a direct child of id.
func (t *Tree) HasChild(id, child WidgetID) bool {
	w := t.Widget(id)
	if w == nil || child.IsZero() {
		return false
	}
	for _, c := range w.children {
		if c == child {
			return true
		}
	}
	return false
}

// IsVisible reports whether id resolves and neither it nor any ancestor is
// hidden.
func (t *Tree) IsVisible(id WidgetID) bool {
	w := t.Widget(id)
	if w == nil {
		return false
	}
	for w != nil {
		if w.hidden {
			return false
		}
		w = t.Widget(w.parent)
	}
	return true
}

// ============================================================================
// Hit Testing
// ============================================================================

// ControlAt returns the topmost widget under canvas point (x, y), or zero if
// the point is outside the canvas. The canvas root is returned when no
// other widget is hit.
func (t *Tree) ControlAt(x, y int) WidgetID {
	root := t.RootWidget()
	lx, ly := root.bounds.LocalPoint(x, y)
	return t.controlAt(root, lx, ly)
}

// controlAt tests w with (x, y) local to w. Children are checked in
// reverse order (last child is drawn on top).
func (t *Tree) controlAt(w *Widget, x, y int) WidgetID {
	if w.hidden {
		return 0
	}
	if x < 0 || y < 0 || x >= w.bounds.Width || y >= w.bounds.Height {
		return 0
	}

	for i := len(w.children) - 1; i >= 0; i-- {
		child := t.Widget(w.children[i])
		if child == nil {
			continue
		}
		cx, cy := child.bounds.LocalPoint(x, y)
		if hit := t.controlAt(child, cx, cy); hit != 0 {
			return hit
		}
	}

	if !w.mouseInput {
		return 0
	}
	return w.id
}

// CanvasPosition converts a widget's origin to canvas coordinates.
func (t *Tree) CanvasPosition(id WidgetID) (Point, bool) {
	w := t.Widget(id)
	if w == nil {
		return Point{}, false
	}
	var p Point
	for w != nil {
		p.X += w.bounds.X
		p.Y += w.bounds.Y
		w = t.Widget(w.parent)
	}
	return p, true
}

// ============================================================================
// Walks
// ============================================================================

// Walk visits from and its subtree in pre-order, children in z-order.
// fn returning false stops the walk. Widgets removed by fn are skipped.
func (t *Tree) Walk(from WidgetID, fn func(w *Widget) bool) {
	stack := acquireIDSlice()
	stack = append(stack, from)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		w := t.Widget(cur)
		if w == nil {
			continue
		}
		if !fn(w) {
			break
		}
		for i := len(w.children) - 1; i >= 0; i-- {
			stack = append(stack, w.children[i])
		}
	}
	releaseIDSlice(stack)
}

// Touch tells every ancestor of id that a descendant was clicked. Each
// ancestor's responder receives the child on the path through it.
func (t *Tree) Touch(id WidgetID) {
	child := id
	for parent := t.Parent(child); parent != 0; parent = t.Parent(child) {
		p := t.Widget(parent)
		if p == nil {
			return
		}
		p.Responder().ChildTouched(child)
		child = parent
	}
}

// CloseMenus asks every menu on the canvas to close. Returns the number of
// widgets asked.
func (t *Tree) CloseMenus() int {
	n := 0
	t.Walk(t.root, func(w *Widget) bool {
		if mc, ok := w.Responder().(MenuCloser); ok {
			mc.CloseMenu()
			n++
		}
		return true
	})
	return n
}

// HandleAccelerator looks accel up on id and then its subtree in pre-order;
// the first bound handler runs and true is returned. focus is the current
// keyboard focus, consulted for widgets with AccelOnlyFocus set.
func (t *Tree) HandleAccelerator(id WidgetID, accel string, focus WidgetID) bool {
	handled := false
	t.Walk(id, func(w *Widget) bool {
		if w.accelOnlyFocus && w.id != focus {
			return true
		}
		if w.runAccelerator(accel) {
			handled = true
			return false
		}
		return true
	})
	return handled
}
