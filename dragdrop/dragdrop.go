// Package dragdrop implements drag and drop between widgets of a retained
// tree. A Manager plugs into the input handler as its DragDrop
// collaborator: it sees left-button transitions before click callbacks
// run, and every mouse move after hover resolution.
//
// Widgets take part through their responders. A responder implementing
// Source can start drags; one implementing Target can receive drops.
package dragdrop

import "github.com/agiangrant/ctdinput/retained"

// DefaultThreshold is the distance in pixels, on either axis, the cursor
// must travel with the button held before a drag starts.
const DefaultThreshold = 5

// Package is the payload carried by a drag.
type Package struct {
	// Name lets targets filter what they accept.
	Name string

	// UserData is opaque to the manager.
	UserData any
}

// Source is implemented by responders whose widgets can be dragged.
type Source interface {
	// Draggable reports whether a press may turn into a drag.
	Draggable() bool

	// DragPackage is called once the drag threshold is crossed. Returning
	// nil cancels the drag.
	DragPackage(x, y int) *Package

	// EndDragging reports the outcome once the button is released.
	EndDragging(success bool, x, y int)
}

// Target is implemented by responders whose widgets accept drops.
type Target interface {
	CanAcceptPackage(p *Package) bool
	HoverEnter(p *Package, x, y int)
	HoverLeave(p *Package)
	Hover(p *Package, x, y int)
	HandleDrop(p *Package, x, y int) bool
}

func sourceOf(r retained.Ref) Source {
	w := r.Widget()
	if w == nil {
		return nil
	}
	s, _ := w.Responder().(Source)
	return s
}

func targetOf(r retained.Ref) Target {
	w := r.Widget()
	if w == nil {
		return nil
	}
	t, _ := w.Responder().(Target)
	return t
}

// ============================================================================
// Manager
// ============================================================================

// Manager tracks one drag at a time.
type Manager struct {
	// Threshold overrides DefaultThreshold when positive.
	Threshold int

	// OnDragStart runs when a drag begins. Hosts wire it to release mouse
	// capture so hover follows the cursor during the drag.
	OnDragStart func()

	pressed    retained.Ref
	pressedPos retained.Point

	source  retained.Ref
	pkg     *Package
	hovered retained.Ref
}

// NewManager returns an idle manager.
func NewManager() *Manager {
	return &Manager{Threshold: DefaultThreshold}
}

// Dragging reports whether a drag is in progress.
func (m *Manager) Dragging() bool {
	return m.pkg != nil
}

// Package returns the payload of the drag in progress, or nil.
func (m *Manager) Package() *Package {
	return m.pkg
}

// Source returns the widget being dragged.
func (m *Manager) Source() retained.Ref {
	return m.source
}

// Hovered returns the accepting target under the cursor during a drag.
func (m *Manager) Hovered() retained.Ref {
	return m.hovered
}

// OnMouseButton is the left-button hook. A press on a draggable widget arms
// a drag but never claims the event. A release finishes the drag in
// progress and claims it; without a drag the release is declined.
func (m *Manager) OnMouseButton(hovered retained.Ref, x, y int, down bool) bool {
	if !down {
		m.pressed = retained.Ref{}
		if m.pkg == nil {
			return false
		}
		m.drop(hovered, x, y)
		return true
	}

	src := sourceOf(hovered)
	if src == nil || !src.Draggable() {
		return false
	}
	m.pressed = hovered
	m.pressedPos = retained.Point{X: x, Y: y}
	return false
}

// OnMouseMoved starts an armed drag once the threshold is crossed and
// keeps target hover state current while dragging.
func (m *Manager) OnMouseMoved(hovered retained.Ref, x, y int) {
	if !m.pressed.IsZero() {
		if !m.pressed.Valid() {
			m.pressed = retained.Ref{}
			return
		}
		if !m.pastThreshold(x, y) {
			return
		}
		m.start(x, y)
	}

	if m.pkg == nil {
		return
	}

	m.updateHovered(hovered, x, y)
	if t := targetOf(m.hovered); t != nil {
		t.Hover(m.pkg, x, y)
	}
}

// Cancel aborts the drag in progress, reporting failure to the source.
func (m *Manager) Cancel() {
	m.pressed = retained.Ref{}
	if m.pkg == nil {
		return
	}
	if t := targetOf(m.hovered); t != nil {
		t.HoverLeave(m.pkg)
	}
	if s := sourceOf(m.source); s != nil {
		s.EndDragging(false, m.pressedPos.X, m.pressedPos.Y)
	}
	m.reset()
}

func (m *Manager) pastThreshold(x, y int) bool {
	threshold := m.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return abs(x-m.pressedPos.X) >= threshold || abs(y-m.pressedPos.Y) >= threshold
}

func (m *Manager) start(x, y int) {
	pressed := m.pressed
	m.pressed = retained.Ref{}

	src := sourceOf(pressed)
	if src == nil {
		return
	}
	pkg := src.DragPackage(x, y)
	if pkg == nil {
		return
	}

	m.pkg = pkg
	m.source = pressed
	if m.OnDragStart != nil {
		m.OnDragStart()
	}
}

// updateHovered moves target hover to hovered if it accepts the package.
// The source is never its own target.
func (m *Manager) updateHovered(hovered retained.Ref, x, y int) {
	if hovered == m.source {
		hovered = retained.Ref{}
	}
	if t := targetOf(hovered); t == nil || !t.CanAcceptPackage(m.pkg) {
		hovered = retained.Ref{}
	}
	if hovered == m.hovered {
		return
	}

	if old := targetOf(m.hovered); old != nil {
		old.HoverLeave(m.pkg)
	}
	m.hovered = hovered
	if t := targetOf(hovered); t != nil {
		t.HoverEnter(m.pkg, x, y)
	}
}

func (m *Manager) drop(hovered retained.Ref, x, y int) {
	m.updateHovered(hovered, x, y)

	success := false
	if t := targetOf(m.hovered); t != nil {
		t.HoverLeave(m.pkg)
		success = t.HandleDrop(m.pkg, x, y)
	}
	if s := sourceOf(m.source); s != nil {
		s.EndDragging(success, x, y)
	}
	if w := m.source.Widget(); w != nil {
		w.Responder().Redraw()
	}
	m.reset()
}

func (m *Manager) reset() {
	m.pkg = nil
	m.source = retained.Ref{}
	m.hovered = retained.Ref{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
