package input

import (
	"log/slog"
	"unicode"

	"github.com/agiangrant/ctdinput/retained"
)

// ============================================================================
// Mouse
// ============================================================================

// OnMouseMoved records the cursor position on canvas and re-resolves hover.
// A drag-and-drop collaborator that observes motion sees the move last.
func (h *Handler) OnMouseMoved(canvas *retained.Tree, x, y int) {
	h.mousePos = retained.Point{X: x, Y: y}
	h.updateHovered(canvas)

	if mo, ok := h.dragDrop.(MotionObserver); ok {
		mo.OnMouseMoved(h.hovered, x, y)
	}
}

// OnMouseClicked handles a button transition at the last cursor position.
//
// A press anywhere but on a menu component closes the canvas menus first.
// The event is dropped when nothing is hovered, the hover target is on
// another canvas, hidden, or the canvas itself, or the button index is out
// of range. Otherwise presses move keyboard focus and touch the target's
// ancestors; the left button is offered to drag and drop before the click
// callbacks. Buttons other than left and right get no callback and report
// false.
func (h *Handler) OnMouseClicked(canvas *retained.Tree, button retained.MouseButton, down bool) bool {
	hovered := h.hovered
	if down {
		if w := hovered.Widget(); w == nil || !w.IsMenuComponent() {
			if n := canvas.CloseMenus(); n > 0 {
				h.log.DebugContext(h.logCtx, "closed menus", slog.Int("count", n))
			}
		}
	}

	// Menu callbacks may have removed the hover target
	if !hovered.Valid() || !hovered.In(canvas) || !hovered.Visible() || hovered.IsCanvas() {
		return false
	}
	if button < 0 || int(button) >= h.cfg.MaxMouseButtons {
		return false
	}

	h.keys.setMouseDown(button, down)

	double := h.clicks.classify(button, down, h.mousePos, h.clock.Now(), h.cfg.DoubleClickSpeed)

	if down {
		h.findKeyboardFocus(hovered)
	}

	if r := responder(hovered); r != nil {
		r.UpdateCursor()
	}

	if down {
		canvas.Touch(hovered.ID())
	}

	x, y := h.mousePos.X, h.mousePos.Y
	switch button {
	case retained.MouseButtonLeft:
		if h.dragDrop != nil && h.dragDrop.OnMouseButton(hovered, x, y, down) {
			return true
		}
		r := responder(hovered)
		if r == nil {
			return false
		}
		if double {
			r.MouseDoubleClickedLeft(x, y)
		} else {
			r.MouseClickedLeft(x, y, down)
		}
		return true

	case retained.MouseButtonRight:
		r := responder(hovered)
		if r == nil {
			return false
		}
		if double {
			r.MouseDoubleClickedRight(x, y)
		} else {
			r.MouseClickedRight(x, y, down)
		}
		return true
	}

	return false
}

// ============================================================================
// Keyboard
// ============================================================================

// usableFocus returns the keyboard focus if it is on canvas and visible.
func (h *Handler) usableFocus(canvas *retained.Tree) (retained.Ref, bool) {
	f := h.keyboardFocus
	if f.IsZero() || !f.In(canvas) || !f.Visible() {
		return retained.Ref{}, false
	}
	return f, true
}

// OnKeyEvent handles a key transition for the keyboard focus on canvas.
// Only edges are delivered; repeats come from OnCanvasThink.
//
// The release always goes to the current focus, even when focus moved
// since the press. Shift+arrow chords in text widgets depend on it.
func (h *Handler) OnKeyEvent(canvas *retained.Tree, key retained.Key, down bool) bool {
	f, ok := h.usableFocus(canvas)
	if !ok {
		return false
	}
	if !h.keys.setKeyDown(key, down, h.clock.Now(), h.cfg.KeyRepeatDelay, f) {
		return false
	}
	return h.keyPressed(f, key, down)
}

func (h *Handler) keyPressed(f retained.Ref, key retained.Key, down bool) bool {
	r := responder(f)
	if r == nil {
		return false
	}
	return r.KeyPressed(key, down)
}

// OnCharacter handles a typed character: canvas accelerators first, then
// clipboard shortcuts, then the character itself for the keyboard focus.
// Characters typed with Control held are never delivered as text.
func (h *Handler) OnCharacter(canvas *retained.Tree, ch rune) bool {
	if !canvas.IsVisible(canvas.Root()) {
		return false
	}
	if h.HandleAccelerator(canvas, ch) {
		return true
	}
	if h.DoSpecialKeys(canvas, ch) {
		return true
	}

	f, ok := h.usableFocus(canvas)
	if !ok || h.IsControlDown() {
		return false
	}
	r := responder(f)
	if r == nil {
		return false
	}
	return r.Char(ch)
}

// DoSpecialKeys runs the clipboard shortcuts (Control with c, v, x or a in
// either case) on the keyboard focus of canvas.
func (h *Handler) DoSpecialKeys(canvas *retained.Tree, ch rune) bool {
	f, ok := h.usableFocus(canvas)
	if !ok || !h.IsControlDown() {
		return false
	}
	r := responder(f)
	if r == nil {
		return false
	}

	switch unicode.ToLower(ch) {
	case 'c':
		r.Copy()
	case 'v':
		r.Paste()
	case 'x':
		r.Cut()
	case 'a':
		r.SelectAll()
	default:
		return false
	}
	return true
}

// ============================================================================
// Per-frame
// ============================================================================

// OnCanvasThink must run once per frame per canvas. It releases stale
// focus and capture, then emits due key repeats to the keyboard focus when
// that focus lives on canvas.
func (h *Handler) OnCanvasThink(canvas *retained.Tree) {
	h.releaseStaleFocus()

	f := h.keyboardFocus
	if f.IsZero() || !f.In(canvas) {
		return
	}

	h.keys.advance(h.clock.Now(), h.cfg.KeyRepeatRate,
		func() retained.Ref { return h.keyboardFocus },
		func(key retained.Key) {
			if cur := h.keyboardFocus; !cur.IsZero() {
				h.keyPressed(cur, key, true)
			}
		})
}
