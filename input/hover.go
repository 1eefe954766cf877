package input

import "github.com/agiangrant/ctdinput/retained"

// updateHovered re-resolves hover for the current mouse position.
//
// The previous hover target is cleared before it is told the mouse left,
// so MouseLeft never observes itself as hovered. While a capture widget on
// this canvas is active it replaces the geometric result; the displaced
// target is redrawn so it can drop its hover look.
func (h *Handler) updateHovered(canvas *retained.Tree) {
	candidate := canvas.Ref(canvas.ControlAt(h.mousePos.X, h.mousePos.Y))

	capture := h.mouseCapture
	captured := capture.In(canvas) && capture.Valid()

	// Under capture, hovered is the capture widget; compare against the
	// last geometric hit so a still cursor stays quiet.
	changed := candidate != h.hovered
	if captured && candidate == h.lastHit {
		changed = false
	}
	h.lastHit = candidate

	if changed {
		if old := h.hovered; !old.IsZero() {
			h.hovered = retained.Ref{}
			if r := responder(old); r != nil {
				r.MouseLeft()
			}
		}

		h.hovered = candidate

		if r := responder(candidate); r != nil {
			r.MouseEntered()
		}
	}

	if captured {
		if old := h.hovered; !old.IsZero() && old != capture {
			h.hovered = retained.Ref{}
			if r := responder(old); r != nil {
				r.Redraw()
			}
		}
		h.hovered = capture
	}
}
