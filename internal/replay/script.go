// Package replay drives an input handler from a YAML script and records
// every callback the widgets receive. Time comes from a manual clock, so a
// replay is deterministic.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agiangrant/ctdinput/input"
	"github.com/agiangrant/ctdinput/retained"
)

var (
	// ErrUnknownWidget is returned when an event or parent names a widget
	// that was never declared.
	ErrUnknownWidget = errors.New("replay: unknown widget")

	// ErrDuplicateWidget is returned when two widgets share a name.
	ErrDuplicateWidget = errors.New("replay: duplicate widget")

	// ErrInvalidEvent is returned for events with zero or several actions.
	ErrInvalidEvent = errors.New("replay: invalid event")

	// ErrInvalidWidget is returned for inconsistent widget declarations.
	ErrInvalidWidget = errors.New("replay: invalid widget")
)

// Script is a canvas, the widgets on it, and a timeline of raw input.
type Script struct {
	Canvas  CanvasSpec      `yaml:"canvas"`
	Config  *ConfigOverride `yaml:"config,omitempty"`
	Widgets []WidgetSpec    `yaml:"widgets"`
	Events  []EventSpec     `yaml:"events"`
}

// CanvasSpec sizes the canvas.
type CanvasSpec struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ConfigOverride replaces individual timings, in seconds.
type ConfigOverride struct {
	DoubleClickSpeed *float64 `yaml:"double_click_speed,omitempty"`
	KeyRepeatDelay   *float64 `yaml:"key_repeat_delay,omitempty"`
	KeyRepeatRate    *float64 `yaml:"key_repeat_rate,omitempty"`
	MaxMouseButtons  *int     `yaml:"max_mouse_buttons,omitempty"`
}

// Apply returns cfg with the overrides set.
func (o *ConfigOverride) Apply(cfg input.Config) input.Config {
	if o == nil {
		return cfg
	}
	if o.DoubleClickSpeed != nil {
		cfg.DoubleClickSpeed = input.Seconds(*o.DoubleClickSpeed)
	}
	if o.KeyRepeatDelay != nil {
		cfg.KeyRepeatDelay = input.Seconds(*o.KeyRepeatDelay)
	}
	if o.KeyRepeatRate != nil {
		cfg.KeyRepeatRate = input.Seconds(*o.KeyRepeatRate)
	}
	if o.MaxMouseButtons != nil {
		cfg.MaxMouseButtons = *o.MaxMouseButtons
	}
	return cfg
}

// WidgetSpec declares one widget. Parent defaults to the canvas.
type WidgetSpec struct {
	Name           string   `yaml:"name"`
	Parent         string   `yaml:"parent,omitempty"`
	Bounds         []int    `yaml:"bounds"`
	Keyboard       bool     `yaml:"keyboard,omitempty"`
	Mouse          *bool    `yaml:"mouse,omitempty"`
	Hidden         bool     `yaml:"hidden,omitempty"`
	Menu           bool     `yaml:"menu,omitempty"`
	AccelOnlyFocus bool     `yaml:"accel_only_focus,omitempty"`
	Accelerators   []string `yaml:"accelerators,omitempty"`

	// Draggable names the package a drag from this widget carries.
	Draggable string `yaml:"draggable,omitempty"`

	// DropTarget names the package accepted; "*" accepts any.
	DropTarget string `yaml:"drop_target,omitempty"`
}

// EventSpec is one timeline entry. At is in seconds; when zero the clock
// stays where it is. Exactly one action must be set.
type EventSpec struct {
	At float64 `yaml:"at,omitempty"`

	Move    []int       `yaml:"move,omitempty"`
	Button  *ButtonSpec `yaml:"button,omitempty"`
	Click   *int        `yaml:"click,omitempty"`
	Key     *KeySpec    `yaml:"key,omitempty"`
	Char    string      `yaml:"char,omitempty"`
	Think   bool        `yaml:"think,omitempty"`
	Focus   *string     `yaml:"focus,omitempty"`
	Capture *string     `yaml:"capture,omitempty"`
	Hide    string      `yaml:"hide,omitempty"`
	Show    string      `yaml:"show,omitempty"`
	Remove  string      `yaml:"remove,omitempty"`
}

// ButtonSpec is a mouse button transition.
type ButtonSpec struct {
	Index int  `yaml:"index"`
	Down  bool `yaml:"down"`
}

// KeySpec is a key transition. Name is a retained.Key name.
type KeySpec struct {
	Name string `yaml:"name"`
	Down bool   `yaml:"down"`
}

func (e EventSpec) actions() int {
	n := 0
	for _, set := range []bool{
		len(e.Move) > 0, e.Button != nil, e.Click != nil, e.Key != nil,
		e.Char != "", e.Think, e.Focus != nil, e.Capture != nil,
		e.Hide != "", e.Show != "", e.Remove != "",
	} {
		if set {
			n++
		}
	}
	return n
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks names, parents and events without building anything.
func (s *Script) Validate() error {
	if s.Canvas.Name == "" {
		s.Canvas.Name = "canvas"
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidWidget, s.Canvas.Width, s.Canvas.Height)
	}

	names := map[string]bool{s.Canvas.Name: true}
	for i, w := range s.Widgets {
		if w.Name == "" {
			return fmt.Errorf("%w: widget %d has no name", ErrInvalidWidget, i)
		}
		if names[w.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateWidget, w.Name)
		}
		if w.Parent != "" && !names[w.Parent] {
			return fmt.Errorf("%w: %q (parent of %q, must be declared first)", ErrUnknownWidget, w.Parent, w.Name)
		}
		if len(w.Bounds) != 4 {
			return fmt.Errorf("%w: %q bounds must be [x, y, width, height]", ErrInvalidWidget, w.Name)
		}
		if w.Menu && w.DropTarget != "" {
			return fmt.Errorf("%w: %q cannot be both a menu and a drop target", ErrInvalidWidget, w.Name)
		}
		names[w.Name] = true
	}

	for i, e := range s.Events {
		if n := e.actions(); n != 1 {
			return fmt.Errorf("%w: event %d has %d actions, want 1", ErrInvalidEvent, i, n)
		}
		if len(e.Move) > 0 && len(e.Move) != 2 {
			return fmt.Errorf("%w: event %d: move must be [x, y]", ErrInvalidEvent, i)
		}
		if e.Key != nil {
			if _, ok := retained.ParseKey(e.Key.Name); !ok {
				return fmt.Errorf("%w: event %d: unknown key %q", ErrInvalidEvent, i, e.Key.Name)
			}
		}
		if e.Char != "" && len([]rune(e.Char)) != 1 {
			return fmt.Errorf("%w: event %d: char %q must be one character", ErrInvalidEvent, i, e.Char)
		}
		for _, ref := range []string{e.Hide, e.Show, e.Remove, deref(e.Focus), deref(e.Capture)} {
			if ref != "" && !names[ref] {
				return fmt.Errorf("%w: %q in event %d", ErrUnknownWidget, ref, i)
			}
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
