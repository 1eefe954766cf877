package input

import (
	"log/slog"
	"strings"

	"github.com/agiangrant/ctdinput/retained"
)

// AcceleratorString builds the lookup key for a typed character: "CTRL+"
// and "SHIFT+" prefixes in that order, then the character unchanged.
func AcceleratorString(ctrl, shift bool, ch rune) string {
	var b strings.Builder
	if ctrl {
		b.WriteString("CTRL+")
	}
	if shift {
		b.WriteString("SHIFT+")
	}
	b.WriteRune(ch)
	return b.String()
}

// Accelerator returns the lookup key for ch under the held modifiers.
func (h *Handler) Accelerator(ch rune) string {
	return AcceleratorString(h.IsControlDown(), h.IsShiftDown(), ch)
}

// HandleAccelerator resolves ch against the keyboard focus, then the mouse
// capture, then the whole canvas. Each lookup covers the widget and its
// subtree. The first bound handler wins.
func (h *Handler) HandleAccelerator(canvas *retained.Tree, ch rune) bool {
	accel := h.Accelerator(ch)

	var focus retained.WidgetID
	if h.keyboardFocus.In(canvas) {
		focus = h.keyboardFocus.ID()
	}

	for _, r := range [...]retained.Ref{h.keyboardFocus, h.mouseCapture} {
		if !r.In(canvas) || !r.Valid() {
			continue
		}
		if canvas.HandleAccelerator(r.ID(), accel, focus) {
			h.log.DebugContext(h.logCtx, "accelerator handled",
				slog.String("accel", accel), slog.String("widget", r.String()))
			return true
		}
	}

	if canvas.HandleAccelerator(canvas.Root(), accel, focus) {
		h.log.DebugContext(h.logCtx, "accelerator handled",
			slog.String("accel", accel), slog.String("widget", canvas.Name()))
		return true
	}
	return false
}
