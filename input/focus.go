package input

import (
	"log/slog"

	"github.com/agiangrant/ctdinput/retained"
)

// ============================================================================
// Focus Management
// ============================================================================

// Focus gives keyboard focus to r. The old focus is told it lost focus
// before the new one is told it gained it. A stale r clears focus.
func (h *Handler) Focus(r retained.Ref) {
	if !r.Valid() {
		r = retained.Ref{}
	}
	if r == h.keyboardFocus {
		return
	}

	old := h.keyboardFocus
	h.keyboardFocus = r

	if lost := responder(old); lost != nil {
		lost.KeyboardFocusLost()
	}
	if gained := responder(r); gained != nil {
		gained.KeyboardFocusGained()
		gained.Redraw()
	}

	h.log.DebugContext(h.logCtx, "keyboard focus changed",
		slog.String("from", old.String()),
		slog.String("to", r.String()))
}

// Blur clears keyboard focus.
func (h *Handler) Blur() {
	h.Focus(retained.Ref{})
}

// SetMouseCapture makes r override hover resolution on its canvas until
// released. A stale r releases capture.
func (h *Handler) SetMouseCapture(r retained.Ref) {
	if !r.Valid() {
		r = retained.Ref{}
	}
	if r == h.mouseCapture {
		return
	}
	old := h.mouseCapture
	h.mouseCapture = r
	h.log.DebugContext(h.logCtx, "mouse capture changed",
		slog.String("from", old.String()),
		slog.String("to", r.String()))
}

// ReleaseMouseCapture clears mouse capture.
func (h *Handler) ReleaseMouseCapture() {
	h.SetMouseCapture(retained.Ref{})
}

// findKeyboardFocus walks from start towards the root and focuses the first
// widget that accepts keyboard input, unless one of that widget's direct
// children already holds focus. Nothing changes if no ancestor accepts.
func (h *Handler) findKeyboardFocus(start retained.Ref) {
	tree := start.Tree()
	if tree == nil {
		return
	}

	for id := start.ID(); !id.IsZero(); id = tree.Parent(id) {
		w := tree.Widget(id)
		if w == nil {
			return
		}
		if !w.KeyboardInputEnabled() {
			continue
		}
		if h.keyboardFocus.In(tree) && tree.HasChild(id, h.keyboardFocus.ID()) {
			return
		}
		h.Focus(tree.Ref(id))
		return
	}
}

// releaseStaleFocus drops capture that is gone or hidden, keyboard focus
// that is gone, hidden or no longer accepts keys, and hover that is gone.
// Nothing is notified.
func (h *Handler) releaseStaleFocus() {
	if c := h.mouseCapture; !c.IsZero() && !c.Visible() {
		h.mouseCapture = retained.Ref{}
		h.log.DebugContext(h.logCtx, "released stale mouse capture", slog.String("widget", c.String()))
	}

	if f := h.keyboardFocus; !f.IsZero() {
		w := f.Widget()
		if w == nil || !f.Visible() || !w.KeyboardInputEnabled() {
			h.keyboardFocus = retained.Ref{}
			h.log.DebugContext(h.logCtx, "released stale keyboard focus", slog.String("widget", f.String()))
		}
	}

	if hv := h.hovered; !hv.IsZero() && !hv.Valid() {
		h.hovered = retained.Ref{}
	}
	if lh := h.lastHit; !lh.IsZero() && !lh.Valid() {
		h.lastHit = retained.Ref{}
	}
}
