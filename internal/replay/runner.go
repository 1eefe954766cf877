package replay

import (
	"fmt"
	"log/slog"

	"github.com/agiangrant/ctdinput/dragdrop"
	"github.com/agiangrant/ctdinput/input"
	"github.com/agiangrant/ctdinput/internal/logging"
	"github.com/agiangrant/ctdinput/retained"
)

// Options tunes a replay.
type Options struct {
	// Config is the base timing config; script overrides apply on top.
	// The zero Config means input.DefaultConfig.
	Config input.Config

	// Logger receives the handler's debug records. Nil discards them.
	Logger *slog.Logger

	// Verbose also records cursor updates and redraws.
	Verbose bool
}

// Runner owns the canvas, handler and clock of one replay.
type Runner struct {
	script  *Script
	clock   *input.ManualClock
	trace   *tracer
	tree    *retained.Tree
	handler *input.Handler
	drag    *dragdrop.Manager
	ids     map[string]retained.WidgetID
}

// NewRunner builds the canvas and widgets declared by s.
func NewRunner(s *Script, opts Options) (*Runner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	base := opts.Config
	if base == (input.Config{}) {
		base = input.DefaultConfig()
	}

	clock := &input.ManualClock{}
	drag := dragdrop.NewManager()
	h, err := input.New(
		input.WithConfig(s.Config.Apply(base)),
		input.WithClock(clock),
		input.WithLogger(logger),
		input.WithDragDrop(drag),
	)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	drag.OnDragStart = h.ReleaseMouseCapture

	r := &Runner{
		script:  s,
		clock:   clock,
		trace:   &tracer{clock: clock, verbose: opts.Verbose},
		tree:    retained.NewTree(s.Canvas.Name, s.Canvas.Width, s.Canvas.Height),
		handler: h,
		drag:    drag,
		ids:     make(map[string]retained.WidgetID),
	}
	r.ids[s.Canvas.Name] = r.tree.Root()

	for _, spec := range s.Widgets {
		if err := r.addWidget(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Runner) addWidget(spec WidgetSpec) error {
	parent := r.tree.Root()
	if spec.Parent != "" {
		parent = r.ids[spec.Parent]
	}

	w := retained.NewWidget(spec.Name).
		SetBounds(spec.Bounds[0], spec.Bounds[1], spec.Bounds[2], spec.Bounds[3]).
		SetVisible(!spec.Hidden).
		SetKeyboardInputEnabled(spec.Keyboard).
		SetMenuComponent(spec.Menu).
		SetAccelOnlyFocus(spec.AccelOnlyFocus)
	if spec.Mouse != nil {
		w.SetMouseInputEnabled(*spec.Mouse)
	}

	rec := &recorder{
		name:     spec.Name,
		widget:   w,
		trace:    r.trace,
		dragName: spec.Draggable,
		names:    r.nameOf,
	}
	switch {
	case spec.Menu:
		w.SetResponder(menuRecorder{rec})
	case spec.DropTarget != "":
		w.SetResponder(newTargetRecorder(rec, spec.DropTarget))
	default:
		w.SetResponder(rec)
	}

	for _, accel := range spec.Accelerators {
		name := spec.Name
		w.AddAccelerator(accel, func() {
			r.trace.add(name, "accelerator %s", accel)
		})
	}

	id, err := r.tree.Add(parent, w)
	if err != nil {
		return fmt.Errorf("replay: widget %q: %w", spec.Name, err)
	}
	r.ids[spec.Name] = id
	return nil
}

func (r *Runner) nameOf(id retained.WidgetID) string {
	if w := r.tree.Widget(id); w != nil {
		return w.Name()
	}
	return "<removed>"
}

func (r *Runner) ref(name string) retained.Ref {
	if name == "" {
		return retained.Ref{}
	}
	return r.tree.Ref(r.ids[name])
}

// Handler exposes the handler for inspection after a run.
func (r *Runner) Handler() *input.Handler {
	return r.handler
}

// Tree exposes the canvas.
func (r *Runner) Tree() *retained.Tree {
	return r.tree
}

// Run plays every event in order and returns the trace.
func (r *Runner) Run() ([]Entry, error) {
	for i, e := range r.script.Events {
		if e.At > 0 {
			r.clock.Set(input.Seconds(e.At))
		}
		if err := r.step(e); err != nil {
			return r.trace.entries, fmt.Errorf("replay: event %d: %w", i, err)
		}
	}
	return r.trace.entries, nil
}

func (r *Runner) step(e EventSpec) error {
	h, canvas := r.handler, r.tree
	name := canvas.Name()

	switch {
	case len(e.Move) == 2:
		r.trace.add(name, "> move %d,%d", e.Move[0], e.Move[1])
		h.OnMouseMoved(canvas, e.Move[0], e.Move[1])

	case e.Button != nil:
		r.button(retained.MouseButton(e.Button.Index), e.Button.Down)

	case e.Click != nil:
		r.button(retained.MouseButton(*e.Click), true)
		r.button(retained.MouseButton(*e.Click), false)

	case e.Key != nil:
		key, _ := retained.ParseKey(e.Key.Name)
		r.trace.add(name, "> key %s %s", key, upDown(e.Key.Down))
		if !h.OnKeyEvent(canvas, key, e.Key.Down) {
			r.trace.add(name, "  unhandled")
		}

	case e.Char != "":
		ch := []rune(e.Char)[0]
		r.trace.add(name, "> char %q", ch)
		if !h.OnCharacter(canvas, ch) {
			r.trace.add(name, "  unhandled")
		}

	case e.Think:
		h.OnCanvasThink(canvas)

	case e.Focus != nil:
		r.trace.add(name, "> focus %q", *e.Focus)
		h.Focus(r.ref(*e.Focus))

	case e.Capture != nil:
		r.trace.add(name, "> capture %q", *e.Capture)
		h.SetMouseCapture(r.ref(*e.Capture))

	case e.Hide != "":
		r.trace.add(name, "> hide %s", e.Hide)
		r.widget(e.Hide).SetVisible(false)

	case e.Show != "":
		r.trace.add(name, "> show %s", e.Show)
		r.widget(e.Show).SetVisible(true)

	case e.Remove != "":
		r.trace.add(name, "> remove %s", e.Remove)
		if err := canvas.Remove(r.ids[e.Remove]); err != nil {
			return err
		}
	}
	return nil
}

// button dispatches one transition. A release the handler declines ends
// any drag in progress, since the drop target was not a widget.
func (r *Runner) button(b retained.MouseButton, down bool) {
	name := r.tree.Name()
	r.trace.add(name, "> button %d %s", b, upDown(down))
	if r.handler.OnMouseClicked(r.tree, b, down) {
		return
	}
	r.trace.add(name, "  unhandled")
	if !down && b == retained.MouseButtonLeft && r.drag.Dragging() {
		r.drag.Cancel()
	}
}

// widget returns a scripted widget. Removed widgets resolve to a detached
// stand-in so later show/hide events are harmless.
func (r *Runner) widget(name string) *retained.Widget {
	if w := r.tree.Widget(r.ids[name]); w != nil {
		return w
	}
	return retained.NewWidget(name)
}

// Run builds a runner for s and plays it.
func Run(s *Script, opts Options) ([]Entry, error) {
	r, err := NewRunner(s, opts)
	if err != nil {
		return nil, err
	}
	return r.Run()
}
