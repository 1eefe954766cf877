package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/ctdinput/retained"
)

func TestFocusOrder(t *testing.T) {
	f := newFixture(t)
	a := f.add(0, "a", 0, 0, 10, 10).SetKeyboardInputEnabled(true)
	b := f.add(0, "b", 20, 0, 10, 10).SetKeyboardInputEnabled(true)

	f.h.Focus(a.Ref())
	f.h.Focus(a.Ref())
	f.h.Focus(b.Ref())
	assert.Equal(t, []string{"a: focus_gained", "a: focus_lost", "b: focus_gained"}, f.log.take())

	f.h.Blur()
	assert.Equal(t, []string{"b: focus_lost"}, f.log.take())
	assert.True(t, f.h.KeyboardFocus().IsZero())
}

func TestFocusStaleRefClears(t *testing.T) {
	f := newFixture(t)
	a := f.add(0, "a", 0, 0, 10, 10).SetKeyboardInputEnabled(true)
	b := f.add(0, "b", 20, 0, 10, 10).SetKeyboardInputEnabled(true)
	f.h.Focus(a.Ref())

	stale := b.Ref()
	require.NoError(t, f.tree.Remove(b.ID()))
	f.log.take()

	f.h.Focus(stale)
	assert.Equal(t, []string{"a: focus_lost"}, f.log.take())
	assert.True(t, f.h.KeyboardFocus().IsZero())
}

func TestClickMovesFocusToKeyboardAncestor(t *testing.T) {
	f := newFixture(t)
	form := f.add(0, "form", 0, 0, 400, 400).SetKeyboardInputEnabled(true)
	label := f.add(form.ID(), "label", 10, 10, 100, 20)

	f.moveTo(label)
	f.log.take()
	f.click(retained.MouseButtonLeft)

	assert.Equal(t, form.Ref(), f.h.KeyboardFocus())
	assert.Equal(t, []string{
		"form: focus_gained",
		"form: child_touched",
		"label: click_left true",
		"label: click_left false",
	}, f.log.take())
}

func TestClickKeepsFocusHeldByDirectChild(t *testing.T) {
	f := newFixture(t)
	form := f.add(0, "form", 0, 0, 400, 400).SetKeyboardInputEnabled(true)
	field := f.add(form.ID(), "field", 10, 10, 100, 20).SetKeyboardInputEnabled(true)
	label := f.add(form.ID(), "label", 10, 40, 100, 20)

	f.h.Focus(field.Ref())
	f.moveTo(label)
	f.click(retained.MouseButtonLeft)

	assert.Equal(t, field.Ref(), f.h.KeyboardFocus())
}

func TestClickWithoutKeyboardAncestorKeepsFocus(t *testing.T) {
	f := newFixture(t)
	field := f.add(0, "field", 0, 0, 100, 20).SetKeyboardInputEnabled(true)
	button := f.add(0, "button", 0, 100, 100, 20)

	f.h.Focus(field.Ref())
	f.moveTo(button)
	f.click(retained.MouseButtonLeft)

	assert.Equal(t, field.Ref(), f.h.KeyboardFocus())
}

func TestThinkReleasesStaleFocus(t *testing.T) {
	tests := []struct {
		name        string
		spoil       func(f *fixture, w *retained.Widget)
		captureGone bool
	}{
		{
			name:        "hidden",
			spoil:       func(_ *fixture, w *retained.Widget) { w.SetVisible(false) },
			captureGone: true,
		},
		{
			name:  "keyboard disabled",
			spoil: func(_ *fixture, w *retained.Widget) { w.SetKeyboardInputEnabled(false) },
		},
		{
			name: "parent hidden",
			spoil: func(f *fixture, w *retained.Widget) {
				f.tree.Widget(f.tree.Parent(w.ID())).SetVisible(false)
			},
			captureGone: true,
		},
		{
			name: "removed",
			spoil: func(f *fixture, w *retained.Widget) {
				require.NoError(t, f.tree.Remove(w.ID()))
			},
			captureGone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			panel := f.add(0, "panel", 0, 0, 300, 300)
			field := f.add(panel.ID(), "field", 10, 10, 100, 20).SetKeyboardInputEnabled(true)
			f.h.Focus(field.Ref())
			f.h.SetMouseCapture(field.Ref())
			f.log.take()

			tt.spoil(f, field)
			f.h.OnCanvasThink(f.tree)

			assert.True(t, f.h.KeyboardFocus().IsZero())
			assert.Equal(t, tt.captureGone, f.h.MouseCapture().IsZero())
			assert.Empty(t, f.log.take(), "release is silent")
		})
	}
}

func TestThinkKeepsCaptureWithoutKeyboard(t *testing.T) {
	f := newFixture(t)
	slider := f.add(0, "slider", 0, 0, 300, 20)
	f.h.SetMouseCapture(slider.Ref())

	f.h.OnCanvasThink(f.tree)

	assert.Equal(t, slider.Ref(), f.h.MouseCapture())
}
