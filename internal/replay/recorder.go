package replay

import (
	"fmt"
	"strings"
	"time"

	"github.com/agiangrant/ctdinput/dragdrop"
	"github.com/agiangrant/ctdinput/input"
	"github.com/agiangrant/ctdinput/retained"
)

// Entry is one line of a replay trace.
type Entry struct {
	At     time.Duration
	Widget string
	Event  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%8.3fs  %-12s %s", e.At.Seconds(), e.Widget, e.Event)
}

// tracer collects entries stamped with the replay clock.
type tracer struct {
	clock   input.Clock
	verbose bool
	entries []Entry
}

func (t *tracer) add(widget, format string, args ...any) {
	t.entries = append(t.entries, Entry{
		At:     t.clock.Now(),
		Widget: widget,
		Event:  fmt.Sprintf(format, args...),
	})
}

// ============================================================================
// Recording responders
// ============================================================================

// recorder is the responder given to every scripted widget. Widgets with
// keyboard input consume keys and characters.
type recorder struct {
	name     string
	widget   *retained.Widget
	trace    *tracer
	dragName string
	names    func(retained.WidgetID) string
}

func (r *recorder) MouseEntered() { r.trace.add(r.name, "mouse_entered") }
func (r *recorder) MouseLeft()    { r.trace.add(r.name, "mouse_left") }

func (r *recorder) MouseClickedLeft(x, y int, down bool) {
	r.trace.add(r.name, "click_left %s at %d,%d", upDown(down), x, y)
}

func (r *recorder) MouseDoubleClickedLeft(x, y int) {
	r.trace.add(r.name, "double_click_left at %d,%d", x, y)
}

func (r *recorder) MouseClickedRight(x, y int, down bool) {
	r.trace.add(r.name, "click_right %s at %d,%d", upDown(down), x, y)
}

func (r *recorder) MouseDoubleClickedRight(x, y int) {
	r.trace.add(r.name, "double_click_right at %d,%d", x, y)
}

func (r *recorder) KeyPressed(key retained.Key, down bool) bool {
	r.trace.add(r.name, "key %s %s", key, upDown(down))
	return r.widget.KeyboardInputEnabled()
}

func (r *recorder) Char(ch rune) bool {
	r.trace.add(r.name, "char %q", ch)
	return r.widget.KeyboardInputEnabled()
}

func (r *recorder) Copy()      { r.trace.add(r.name, "copy") }
func (r *recorder) Paste()     { r.trace.add(r.name, "paste") }
func (r *recorder) Cut()       { r.trace.add(r.name, "cut") }
func (r *recorder) SelectAll() { r.trace.add(r.name, "select_all") }

func (r *recorder) KeyboardFocusGained() { r.trace.add(r.name, "focus_gained") }
func (r *recorder) KeyboardFocusLost()   { r.trace.add(r.name, "focus_lost") }

func (r *recorder) ChildTouched(child retained.WidgetID) {
	r.trace.add(r.name, "child_touched %s", r.names(child))
}

func (r *recorder) UpdateCursor() {
	if r.trace.verbose {
		r.trace.add(r.name, "update_cursor")
	}
}

func (r *recorder) Redraw() {
	if r.trace.verbose {
		r.trace.add(r.name, "redraw")
	}
}

// Every recorder is a drag source; only those with a package name drag.

func (r *recorder) Draggable() bool { return r.dragName != "" }

func (r *recorder) DragPackage(x, y int) *dragdrop.Package {
	r.trace.add(r.name, "drag_start %s at %d,%d", r.dragName, x, y)
	return &dragdrop.Package{Name: r.dragName, UserData: r.name}
}

func (r *recorder) EndDragging(success bool, x, y int) {
	r.trace.add(r.name, "drag_end success=%t at %d,%d", success, x, y)
}

// menuRecorder hides its widget when menus close.
type menuRecorder struct {
	*recorder
}

func (m menuRecorder) CloseMenu() {
	if m.widget.IsHidden() {
		return
	}
	m.trace.add(m.name, "menu_closed")
	m.widget.SetVisible(false)
}

// targetRecorder accepts drops through a dragdrop.Strip.
type targetRecorder struct {
	*recorder
	strip dragdrop.Strip
}

func newTargetRecorder(r *recorder, accept string) *targetRecorder {
	t := &targetRecorder{recorder: r}
	if accept != "*" {
		t.strip.Accept = accept
	}
	t.strip.OnDrop = func(p *dragdrop.Package, x, y int) bool {
		r.trace.add(r.name, "drop %s from %v at %d,%d", p.Name, p.UserData, x, y)
		return true
	}
	return t
}

func (t *targetRecorder) CanAcceptPackage(p *dragdrop.Package) bool {
	return t.strip.CanAcceptPackage(p)
}

func (t *targetRecorder) HoverEnter(p *dragdrop.Package, x, y int) {
	t.trace.add(t.name, "drag_hover_enter %s", p.Name)
	t.strip.HoverEnter(p, x, y)
}

func (t *targetRecorder) HoverLeave(p *dragdrop.Package) {
	t.trace.add(t.name, "drag_hover_leave %s", p.Name)
	t.strip.HoverLeave(p)
}

func (t *targetRecorder) Hover(p *dragdrop.Package, x, y int) {
	t.strip.Hover(p, x, y)
}

func (t *targetRecorder) HandleDrop(p *dragdrop.Package, x, y int) bool {
	return t.strip.HandleDrop(p, x, y)
}

func upDown(down bool) string {
	if down {
		return "down"
	}
	return "up"
}

// Format renders a trace, one entry per line.
func Format(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
