// Package input routes raw platform input into retained widget trees.
//
// A Handler owns all tracking state: the held keys and their repeat
// schedule, the click history used for double clicks, the mouse position,
// and three canvas-tagged widget handles (hover, keyboard focus, mouse
// capture). The host creates one Handler and passes the canvas into every
// entry point; one Handler can serve several canvases.
//
// Every entry point runs synchronously on the UI thread. Nothing blocks
// and nothing is locked. Widget handles are revalidated on each call, so
// destroying widgets between calls is always safe.
//
// Entry points report whether the event was consumed. A false result means
// the host should offer the event elsewhere; it is never an error.
package input

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agiangrant/ctdinput/internal/logging"
	"github.com/agiangrant/ctdinput/retained"
)

// DragDrop is offered every left-button transition on a hovered widget
// before the click callbacks. Returning true claims the event.
type DragDrop interface {
	OnMouseButton(hovered retained.Ref, x, y int, down bool) bool
}

// MotionObserver is an optional DragDrop extension that sees every mouse
// move after hover resolution.
type MotionObserver interface {
	OnMouseMoved(hovered retained.Ref, x, y int)
}

// Handler is the input dispatch context. The zero value is not usable;
// create one with New.
type Handler struct {
	cfg      Config
	clock    Clock
	log      *slog.Logger
	logCtx   context.Context
	dragDrop DragDrop

	keys     keyState
	clicks   clickHistory
	mousePos retained.Point

	hovered       retained.Ref
	lastHit       retained.Ref
	keyboardFocus retained.Ref
	mouseCapture  retained.Ref
}

// Option configures a Handler.
type Option func(*Handler)

// WithConfig replaces the default timings.
func WithConfig(cfg Config) Option {
	return func(h *Handler) { h.cfg = cfg }
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(h *Handler) { h.clock = c }
}

// WithLogger sets the logger for focus and capture changes.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// WithDragDrop installs the drag-and-drop collaborator.
func WithDragDrop(d DragDrop) Option {
	return func(h *Handler) { h.dragDrop = d }
}

// New creates a Handler with nothing hovered, focused or held.
func New(opts ...Option) (*Handler, error) {
	h := &Handler{
		cfg:    DefaultConfig(),
		logCtx: logging.PackageCtx("input"),
	}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new input handler: %w", err)
	}
	if h.clock == nil {
		h.clock = NewSystemClock()
	}
	if h.log == nil {
		h.log = logging.Discard()
	}
	h.clicks = newClickHistory(h.cfg.MaxMouseButtons)
	return h, nil
}

// SetDragDrop installs or clears the drag-and-drop collaborator.
func (h *Handler) SetDragDrop(d DragDrop) {
	h.dragDrop = d
}

// Config returns the active timings.
func (h *Handler) Config() Config {
	return h.cfg
}

// ============================================================================
// Queries
// ============================================================================

// MousePosition returns the last reported cursor position.
func (h *Handler) MousePosition() retained.Point {
	return h.mousePos
}

// IsKeyDown reports whether key is held.
func (h *Handler) IsKeyDown(key retained.Key) bool {
	return h.keys.isKeyDown(key)
}

// IsShiftDown reports whether Shift is held.
func (h *Handler) IsShiftDown() bool {
	return h.keys.isKeyDown(retained.KeyShift)
}

// IsControlDown reports whether Control is held.
func (h *Handler) IsControlDown() bool {
	return h.keys.isKeyDown(retained.KeyControl)
}

// IsLeftMouseDown reports whether the left button is held over a widget.
func (h *Handler) IsLeftMouseDown() bool {
	return h.keys.leftMouseDown
}

// IsRightMouseDown reports whether the right button is held over a widget.
func (h *Handler) IsRightMouseDown() bool {
	return h.keys.rightMouseDown
}

// Hovered returns the widget under the cursor (or the capture widget).
func (h *Handler) Hovered() retained.Ref {
	return h.hovered
}

// KeyboardFocus returns the widget receiving key and character input.
func (h *Handler) KeyboardFocus() retained.Ref {
	return h.keyboardFocus
}

// MouseCapture returns the widget overriding hover, if any.
func (h *Handler) MouseCapture() retained.Ref {
	return h.mouseCapture
}

// responder resolves r at call time; callbacks may have removed it.
func responder(r retained.Ref) retained.Responder {
	w := r.Widget()
	if w == nil {
		return nil
	}
	return w.Responder()
}
