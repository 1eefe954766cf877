package retained

// ============================================================================
// Input Vocabulary
// ============================================================================

// Key identifies a non-character key tracked by the input core.
// Printable characters arrive separately as runes.
type Key uint8

const (
	KeyInvalid Key = iota
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyShift
	KeyTab
	KeySpace
	KeyHome
	KeyEnd
	KeyControl
	KeyAlt
	KeyUp
	KeyDown
	KeyEscape

	// KeyCount is the number of tracked keys. Not a real key.
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyInvalid:   "invalid",
	KeyReturn:    "return",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyShift:     "shift",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyControl:   "control",
	KeyAlt:       "alt",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyEscape:    "escape",
}

// String returns the lower-case key name.
func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a key name back to its Key. The second result is false
// for unknown names.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && Key(k) != KeyInvalid {
			return Key(k), true
		}
	}
	return KeyInvalid, false
}

// MouseButton is a platform mouse button index.
// 0 is the left button and 1 the right; higher indices are extra buttons.
type MouseButton int

const (
	MouseButtonLeft  MouseButton = 0
	MouseButtonRight MouseButton = 1
)

// Point is a position in canvas (or parent-relative) pixels.
type Point struct {
	X, Y int
}

// Rect is a widget's bounds relative to its parent.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains checks if a point in the parent's space is within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// LocalPoint converts parent-relative coordinates to coordinates relative
// to the rect's top-left corner.
func (r Rect) LocalPoint(x, y int) (localX, localY int) {
	return x - r.X, y - r.Y
}

// ============================================================================
// Responder Interface
// ============================================================================

// Responder is implemented by widgets that react to input. The input core
// calls these methods; widgets never call each other through it.
// Embed BaseResponder to pick up no-op defaults.
type Responder interface {
	MouseEntered()
	MouseLeft()

	// MouseClickedLeft reports a left button transition at canvas
	// coordinates x, y.
	MouseClickedLeft(x, y int, down bool)
	MouseDoubleClickedLeft(x, y int)
	MouseClickedRight(x, y int, down bool)
	MouseDoubleClickedRight(x, y int)

	// KeyPressed reports a key transition or an auto-repeat pulse.
	// Return true if the key was consumed.
	KeyPressed(key Key, down bool) bool

	// Char delivers a typed character. Return true if consumed.
	Char(r rune) bool

	// Clipboard shortcuts.
	Copy()
	Paste()
	Cut()
	SelectAll()

	KeyboardFocusGained()
	KeyboardFocusLost()

	// ChildTouched is called on every ancestor of a clicked widget.
	ChildTouched(child WidgetID)

	UpdateCursor()
	Redraw()
}

// MenuCloser is implemented by responders of menu-like widgets that must
// close when the user clicks elsewhere on the canvas.
type MenuCloser interface {
	CloseMenu()
}

// BaseResponder implements Responder with no-ops.
type BaseResponder struct{}

func (BaseResponder) MouseEntered()                         {}
func (BaseResponder) MouseLeft()                            {}
func (BaseResponder) MouseClickedLeft(x, y int, down bool)  {}
func (BaseResponder) MouseDoubleClickedLeft(x, y int)       {}
func (BaseResponder) MouseClickedRight(x, y int, down bool) {}
func (BaseResponder) MouseDoubleClickedRight(x, y int)      {}
func (BaseResponder) KeyPressed(key Key, down bool) bool    { return false }
func (BaseResponder) Char(r rune) bool                      { return false }
func (BaseResponder) Copy()                                 {}
func (BaseResponder) Paste()                                {}
func (BaseResponder) Cut()                                  {}
func (BaseResponder) SelectAll()                            {}
func (BaseResponder) KeyboardFocusGained()                  {}
func (BaseResponder) KeyboardFocusLost()                    {}
func (BaseResponder) ChildTouched(child WidgetID)           {}
func (BaseResponder) UpdateCursor()                         {}
func (BaseResponder) Redraw()                               {}

// AcceleratorFunc runs when an accelerator string matches.
type AcceleratorFunc func()
