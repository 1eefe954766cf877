package input

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/ctdinput/retained"
)

// eventLog collects "widget: event" lines from every spy of a fixture.
type eventLog struct {
	lines   []string
	redraws bool
}

func (l *eventLog) add(name, format string, args ...any) {
	l.lines = append(l.lines, name+": "+fmt.Sprintf(format, args...))
}

// take returns the lines recorded so far and starts over.
func (l *eventLog) take() []string {
	out := l.lines
	l.lines = nil
	return out
}

type spy struct {
	retained.BaseResponder
	name string
	log  *eventLog

	onLeft   func()
	onCopy   func()
	menu     *retained.Widget
	consumes bool
}

func (s *spy) MouseEntered() { s.log.add(s.name, "entered") }

func (s *spy) MouseLeft() {
	s.log.add(s.name, "left")
	if s.onLeft != nil {
		s.onLeft()
	}
}

func (s *spy) MouseClickedLeft(x, y int, down bool) {
	s.log.add(s.name, "click_left %t", down)
}

func (s *spy) MouseDoubleClickedLeft(x, y int) { s.log.add(s.name, "double_left") }

func (s *spy) MouseClickedRight(x, y int, down bool) {
	s.log.add(s.name, "click_right %t", down)
}

func (s *spy) MouseDoubleClickedRight(x, y int) { s.log.add(s.name, "double_right") }

func (s *spy) KeyPressed(key retained.Key, down bool) bool {
	s.log.add(s.name, "key %s %t", key, down)
	return s.consumes
}

func (s *spy) Char(ch rune) bool {
	s.log.add(s.name, "char %c", ch)
	return s.consumes
}

func (s *spy) Copy() {
	s.log.add(s.name, "copy")
	if s.onCopy != nil {
		s.onCopy()
	}
}

func (s *spy) Paste()               { s.log.add(s.name, "paste") }
func (s *spy) Cut()                 { s.log.add(s.name, "cut") }
func (s *spy) SelectAll()           { s.log.add(s.name, "select_all") }
func (s *spy) KeyboardFocusGained() { s.log.add(s.name, "focus_gained") }
func (s *spy) KeyboardFocusLost()   { s.log.add(s.name, "focus_lost") }

func (s *spy) ChildTouched(retained.WidgetID) {
	s.log.add(s.name, "child_touched")
}

func (s *spy) Redraw() {
	if s.log.redraws {
		s.log.add(s.name, "redraw")
	}
}

// menuSpy hides its widget when asked to close.
type menuSpy struct {
	*spy
}

func (m menuSpy) CloseMenu() {
	m.log.add(m.name, "close_menu")
	m.menu.SetVisible(false)
}

type fixture struct {
	t     *testing.T
	clock *ManualClock
	h     *Handler
	tree  *retained.Tree
	log   *eventLog
	spies map[string]*spy
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		t:     t,
		clock: &ManualClock{},
		tree:  retained.NewTree("main", 800, 600),
		log:   &eventLog{},
		spies: make(map[string]*spy),
	}
	h, err := New(append([]Option{WithClock(f.clock)}, opts...)...)
	require.NoError(t, err)
	f.h = h
	return f
}

// add attaches a spied widget under parent (zero means the canvas root).
func (f *fixture) add(parent retained.WidgetID, name string, x, y, w, h int) *retained.Widget {
	f.t.Helper()
	if parent.IsZero() {
		parent = f.tree.Root()
	}
	s := &spy{name: name, log: f.log, consumes: true}
	f.spies[name] = s
	wid := retained.NewWidget(name).SetBounds(x, y, w, h).SetResponder(s)
	_, err := f.tree.Add(parent, wid)
	require.NoError(f.t, err)
	return wid
}

// addMenu attaches a menu component that hides itself when menus close.
func (f *fixture) addMenu(name string, x, y, w, h int) *retained.Widget {
	f.t.Helper()
	wid := f.add(0, name, x, y, w, h).SetMenuComponent(true)
	s := f.spies[name]
	s.menu = wid
	wid.SetResponder(menuSpy{s})
	return wid
}

// moveTo puts the cursor one pixel inside w's top-left corner.
func (f *fixture) moveTo(w *retained.Widget) {
	f.t.Helper()
	p, ok := f.tree.CanvasPosition(w.ID())
	require.True(f.t, ok)
	f.h.OnMouseMoved(f.tree, p.X+1, p.Y+1)
}

func (f *fixture) click(button retained.MouseButton) bool {
	down := f.h.OnMouseClicked(f.tree, button, true)
	up := f.h.OnMouseClicked(f.tree, button, false)
	return down || up
}

func (f *fixture) at(seconds float64) {
	f.clock.Set(Seconds(seconds))
}

func (f *fixture) advance(d time.Duration) {
	f.clock.Advance(d)
}
