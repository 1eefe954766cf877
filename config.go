// Package ctdinput is the input core of a retained widget toolkit.
//
// The work is done by the subpackages: retained (the widget arena),
// input (dispatch, focus, repeat and click timing) and dragdrop. This
// package re-exports what most hosts need to get started.
package ctdinput

import (
	"github.com/agiangrant/ctdinput/dragdrop"
	"github.com/agiangrant/ctdinput/input"
	"github.com/agiangrant/ctdinput/retained"
)

// Config configures input timings.
// This is a re-export of input.Config for consumer convenience.
type Config = input.Config

// Handler is the input dispatch context.
// This is a re-export of input.Handler for consumer convenience.
type Handler = input.Handler

// DefaultConfig returns the standard desktop timings.
func DefaultConfig() Config {
	return input.DefaultConfig()
}

// LoadConfig reads timings from a TOML file.
func LoadConfig(path string) (Config, error) {
	return input.LoadConfig(path)
}

// NewCanvas creates a widget tree whose root is a canvas of the given size.
func NewCanvas(name string, width, height int) *retained.Tree {
	return retained.NewTree(name, width, height)
}

// New creates a Handler with a drag-and-drop manager already wired: drags
// release mouse capture when they start.
func New(cfg Config, opts ...input.Option) (*Handler, *dragdrop.Manager, error) {
	dd := dragdrop.NewManager()
	opts = append([]input.Option{input.WithConfig(cfg), input.WithDragDrop(dd)}, opts...)
	h, err := input.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	dd.OnDragStart = h.ReleaseMouseCapture
	return h, dd, nil
}
