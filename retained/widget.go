// Package retained provides a retained-mode widget tree for the input core.
//
// Widgets live in an arena owned by a Tree (one Tree per canvas) and are
// addressed by WidgetID handles. Removing a widget invalidates its handle,
// so code holding on to a handle after the widget is gone sees an invalid
// handle rather than a stale widget.
//
// The package exposes only what input dispatch consumes: hit-testing,
// visibility, input flags, ancestor/child enumeration, accelerator tables
// and the Responder callbacks. Layout and rendering live elsewhere.
package retained

// WidgetID is a generational handle to a widget slot in a Tree.
// The zero WidgetID never refers to a widget.
type WidgetID uint64

func makeWidgetID(index, gen uint32) WidgetID {
	return WidgetID(uint64(gen)<<32 | uint64(index))
}

func (id WidgetID) index() uint32 { return uint32(id) }
func (id WidgetID) gen() uint32   { return uint32(id >> 32) }

// IsZero reports whether id is the zero handle.
func (id WidgetID) IsZero() bool { return id == 0 }

// Widget is a node in the tree. Create with NewWidget and attach with
// Tree.Add. Setters return the widget for chaining.
type Widget struct {
	name   string
	bounds Rect

	hidden         bool
	mouseInput     bool
	keyboardInput  bool
	menuComponent  bool
	accelOnlyFocus bool

	responder    Responder
	accelerators map[string]AcceleratorFunc

	// Set by the owning tree
	tree     *Tree
	id       WidgetID
	parent   WidgetID
	children []WidgetID
}

// NewWidget creates a detached widget. Mouse input is enabled and keyboard
// input disabled by default.
func NewWidget(name string) *Widget {
	return &Widget{
		name:       name,
		mouseInput: true,
	}
}

// Name returns the widget's debug name.
func (w *Widget) Name() string {
	return w.name
}

// ID returns the widget's handle, or zero if detached.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Tree returns the owning tree, or nil if detached.
func (w *Widget) Tree() *Tree {
	return w.tree
}

// Ref returns a canvas-tagged handle to the widget.
func (w *Widget) Ref() Ref {
	if w.tree == nil {
		return Ref{}
	}
	return Ref{tree: w.tree, id: w.id}
}

// ============================================================================
// Geometry
// ============================================================================

// SetBounds sets the parent-relative bounds.
func (w *Widget) SetBounds(x, y, width, height int) *Widget {
	w.bounds = Rect{X: x, Y: y, Width: width, Height: height}
	return w
}

// Bounds returns the parent-relative bounds.
func (w *Widget) Bounds() Rect {
	return w.bounds
}

// ============================================================================
// Capability Flags
// ============================================================================

// SetVisible shows or hides the widget and its subtree.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.hidden = !visible
	return w
}

// IsHidden reports the widget's own hidden flag, ignoring ancestors.
// Use Tree.IsVisible for effective visibility.
func (w *Widget) IsHidden() bool {
	return w.hidden
}

// SetMouseInputEnabled controls whether hit-testing may return this widget.
func (w *Widget) SetMouseInputEnabled(enabled bool) *Widget {
	w.mouseInput = enabled
	return w
}

// MouseInputEnabled reports whether the widget can be hovered.
func (w *Widget) MouseInputEnabled() bool {
	return w.mouseInput
}

// SetKeyboardInputEnabled controls whether the widget accepts keyboard focus.
func (w *Widget) SetKeyboardInputEnabled(enabled bool) *Widget {
	w.keyboardInput = enabled
	return w
}

// KeyboardInputEnabled reports whether the widget accepts keyboard focus.
func (w *Widget) KeyboardInputEnabled() bool {
	return w.keyboardInput
}

// SetMenuComponent marks the widget as part of a menu. Clicking a menu
// component does not close open menus.
func (w *Widget) SetMenuComponent(menu bool) *Widget {
	w.menuComponent = menu
	return w
}

// IsMenuComponent reports whether the widget is part of a menu.
func (w *Widget) IsMenuComponent() bool {
	return w.menuComponent
}

// SetAccelOnlyFocus restricts the widget's own accelerators to when it holds
// keyboard focus. Its children are still searched.
func (w *Widget) SetAccelOnlyFocus(only bool) *Widget {
	w.accelOnlyFocus = only
	return w
}

// AccelOnlyFocus reports whether accelerators require keyboard focus.
func (w *Widget) AccelOnlyFocus() bool {
	return w.accelOnlyFocus
}

// ============================================================================
// Responder and Accelerators
// ============================================================================

// SetResponder sets the input callback receiver.
func (w *Widget) SetResponder(r Responder) *Widget {
	w.responder = r
	return w
}

// Responder returns the widget's responder. Never nil.
func (w *Widget) Responder() Responder {
	if w.responder == nil {
		return BaseResponder{}
	}
	return w.responder
}

// AddAccelerator binds an accelerator string such as "CTRL+s" to fn.
// Matching is exact and case-sensitive.
func (w *Widget) AddAccelerator(accel string, fn AcceleratorFunc) *Widget {
	if w.accelerators == nil {
		w.accelerators = make(map[string]AcceleratorFunc)
	}
	w.accelerators[accel] = fn
	return w
}

// RemoveAccelerator unbinds an accelerator string.
func (w *Widget) RemoveAccelerator(accel string) *Widget {
	delete(w.accelerators, accel)
	return w
}

// Accelerators returns the bound accelerator strings in no particular order.
func (w *Widget) Accelerators() []string {
	out := make([]string, 0, len(w.accelerators))
	for accel := range w.accelerators {
		out = append(out, accel)
	}
	return out
}

// runAccelerator invokes the handler bound to accel, if any.
func (w *Widget) runAccelerator(accel string) bool {
	fn, ok := w.accelerators[accel]
	if !ok {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}
