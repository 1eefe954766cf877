package retained

// Ref is a widget handle tagged with the canvas (tree) it belongs to.
// The input core keeps hover, focus and capture as Refs so that one
// tracker can serve several canvases. The zero Ref refers to nothing.
//
// Refs are comparable: two Refs are equal iff they name the same slot
// generation in the same tree.
type Ref struct {
	tree *Tree
	id   WidgetID
}

// Ref returns a canvas-tagged handle for id. The handle is not checked.
func (t *Tree) Ref(id WidgetID) Ref {
	if id.IsZero() {
		return Ref{}
	}
	return Ref{tree: t, id: id}
}

// Tree returns the canvas the handle belongs to.
func (r Ref) Tree() *Tree { return r.tree }

// ID returns the raw handle.
func (r Ref) ID() WidgetID { return r.id }

// IsZero reports whether r refers to nothing.
func (r Ref) IsZero() bool { return r.tree == nil || r.id.IsZero() }

// Widget resolves the handle, returning nil if the widget is gone.
func (r Ref) Widget() *Widget {
	if r.tree == nil {
		return nil
	}
	return r.tree.Widget(r.id)
}

// Valid reports whether the handle still resolves to a live widget.
func (r Ref) Valid() bool {
	return r.Widget() != nil
}

// In reports whether r belongs to canvas t.
func (r Ref) In(t *Tree) bool {
	return t != nil && r.tree == t
}

// IsCanvas reports whether r refers to its tree's root.
func (r Ref) IsCanvas() bool {
	return r.tree != nil && r.id == r.tree.root
}

// Visible reports whether r resolves and is effectively visible.
func (r Ref) Visible() bool {
	return r.tree != nil && r.tree.IsVisible(r.id)
}

// String returns "canvas/widget" for debugging and logs.
func (r Ref) String() string {
	if r.IsZero() {
		return "<none>"
	}
	w := r.Widget()
	if w == nil {
		return r.tree.name + "/<removed>"
	}
	return r.tree.name + "/" + w.name
}
