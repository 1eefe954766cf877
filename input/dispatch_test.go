package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/ctdinput/retained"
)

func TestMenusCloseOnPress(t *testing.T) {
	f := newFixture(t)
	menu := f.addMenu("menu", 0, 0, 100, 100)
	button := f.add(0, "button", 200, 0, 100, 100)

	f.moveTo(button)
	f.log.take()
	f.click(retained.MouseButtonLeft)

	assert.Equal(t, []string{
		"menu: close_menu",
		"button: click_left true",
		"button: click_left false",
	}, f.log.take())
	assert.True(t, menu.IsHidden())

	t.Run("press on a menu keeps menus open", func(t *testing.T) {
		menu.SetVisible(true)
		f.moveTo(menu)
		f.log.take()
		f.click(retained.MouseButtonLeft)

		assert.Equal(t, []string{"menu: click_left true", "menu: click_left false"}, f.log.take())
		assert.False(t, menu.IsHidden())
	})
}

func TestMouseClickRejected(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *fixture, a *retained.Widget) *retained.Tree
		button  retained.MouseButton
	}{
		{
			name: "canvas itself",
			prepare: func(f *fixture, _ *retained.Widget) *retained.Tree {
				f.h.OnMouseMoved(f.tree, 700, 500)
				return f.tree
			},
		},
		{
			name: "outside the canvas",
			prepare: func(f *fixture, _ *retained.Widget) *retained.Tree {
				f.h.OnMouseMoved(f.tree, 1000, 1000)
				return f.tree
			},
		},
		{
			name: "hover on another canvas",
			prepare: func(f *fixture, a *retained.Widget) *retained.Tree {
				f.moveTo(a)
				return retained.NewTree("other", 800, 600)
			},
		},
		{
			name: "hover target hidden",
			prepare: func(f *fixture, a *retained.Widget) *retained.Tree {
				f.moveTo(a)
				a.SetVisible(false)
				return f.tree
			},
		},
		{
			name: "hover target removed",
			prepare: func(f *fixture, a *retained.Widget) *retained.Tree {
				f.moveTo(a)
				require.NoError(t, f.tree.Remove(a.ID()))
				return f.tree
			},
		},
		{
			name: "button out of range",
			prepare: func(f *fixture, a *retained.Widget) *retained.Tree {
				f.moveTo(a)
				return f.tree
			},
			button: 5,
		},
		{
			name: "negative button",
			prepare: func(f *fixture, a *retained.Widget) *retained.Tree {
				f.moveTo(a)
				return f.tree
			},
			button: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a := f.add(0, "a", 10, 10, 100, 100).SetKeyboardInputEnabled(true)
			canvas := tt.prepare(f, a)
			f.log.take()

			assert.False(t, f.h.OnMouseClicked(canvas, tt.button, true))
			assert.False(t, f.h.OnMouseClicked(canvas, tt.button, false))
			assert.Empty(t, f.log.take())
			assert.True(t, f.h.KeyboardFocus().IsZero())
			assert.False(t, f.h.IsLeftMouseDown())
		})
	}
}

func TestMiddleButtonMovesFocusButIsUnhandled(t *testing.T) {
	f := newFixture(t)
	a := f.add(0, "a", 10, 10, 100, 100).SetKeyboardInputEnabled(true)
	f.moveTo(a)
	f.log.take()

	assert.False(t, f.h.OnMouseClicked(f.tree, 2, true))
	assert.Equal(t, a.Ref(), f.h.KeyboardFocus())
	assert.Equal(t, []string{"a: focus_gained"}, f.log.take())
}

func TestMouseButtonState(t *testing.T) {
	f := newFixture(t)
	a := f.add(0, "a", 10, 10, 100, 100)
	f.moveTo(a)

	f.h.OnMouseClicked(f.tree, retained.MouseButtonLeft, true)
	f.h.OnMouseClicked(f.tree, retained.MouseButtonRight, true)
	assert.True(t, f.h.IsLeftMouseDown())
	assert.True(t, f.h.IsRightMouseDown())

	f.h.OnMouseClicked(f.tree, retained.MouseButtonLeft, false)
	assert.False(t, f.h.IsLeftMouseDown())
	assert.True(t, f.h.IsRightMouseDown())
}

func TestCopyScenario(t *testing.T) {
	f := newFixture(t)
	editor := f.add(0, "editor", 10, 10, 300, 20).SetKeyboardInputEnabled(true)
	copies := 0
	f.spies["editor"].onCopy = func() { copies++ }
	f.h.Focus(editor.Ref())

	require.True(t, f.h.OnKeyEvent(f.tree, retained.KeyControl, true))
	assert.True(t, f.h.DoSpecialKeys(f.tree, 'c'))
	assert.Equal(t, 1, copies)

	f.h.OnKeyEvent(f.tree, retained.KeyControl, false)
	assert.Equal(t, 1, copies)
	assert.False(t, f.h.DoSpecialKeys(f.tree, 'c'))
}

func TestSpecialKeys(t *testing.T) {
	tests := []struct {
		ch     rune
		want   string
		handle bool
	}{
		{ch: 'c', want: "editor: copy", handle: true},
		{ch: 'C', want: "editor: copy", handle: true},
		{ch: 'v', want: "editor: paste", handle: true},
		{ch: 'x', want: "editor: cut", handle: true},
		{ch: 'A', want: "editor: select_all", handle: true},
		{ch: 'z'},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			f := newFixture(t)
			editor := f.add(0, "editor", 10, 10, 300, 20).SetKeyboardInputEnabled(true)
			f.h.Focus(editor.Ref())
			f.h.OnKeyEvent(f.tree, retained.KeyControl, true)
			f.log.take()

			assert.Equal(t, tt.handle, f.h.OnCharacter(f.tree, tt.ch))
			if tt.handle {
				assert.Equal(t, []string{tt.want}, f.log.take())
			} else {
				assert.Empty(t, f.log.take(), "control characters are not text")
			}
		})
	}
}

func TestOnCharacter(t *testing.T) {
	f := newFixture(t)
	editor := f.add(0, "editor", 10, 10, 300, 20).SetKeyboardInputEnabled(true)

	assert.False(t, f.h.OnCharacter(f.tree, 'h'), "no focus")

	f.h.Focus(editor.Ref())
	f.log.take()
	assert.True(t, f.h.OnCharacter(f.tree, 'h'))
	assert.Equal(t, []string{"editor: char h"}, f.log.take())

	f.spies["editor"].consumes = false
	assert.False(t, f.h.OnCharacter(f.tree, 'i'))
	f.log.take()

	f.tree.RootWidget().SetVisible(false)
	assert.False(t, f.h.OnCharacter(f.tree, 'j'))
	assert.Empty(t, f.log.take())
}

func TestTwoCanvasesDoNotCrossDeliver(t *testing.T) {
	f := newFixture(t)
	editor := f.add(0, "editor", 10, 10, 300, 20).SetKeyboardInputEnabled(true)
	f.h.Focus(editor.Ref())
	f.log.take()

	other := retained.NewTree("other", 800, 600)
	other.RootWidget().AddAccelerator("x", func() { t.Error("accelerator on other canvas ran") })
	editor.AddAccelerator("y", func() { t.Error("accelerator for focus ran from other canvas") })

	assert.False(t, f.h.OnKeyEvent(other, retained.KeyReturn, true))
	assert.False(t, f.h.OnCharacter(other, 'y'))
	assert.False(t, f.h.DoSpecialKeys(other, 'c'))
	f.h.OnCanvasThink(other)

	assert.Empty(t, f.log.take())
	assert.Equal(t, editor.Ref(), f.h.KeyboardFocus())
}

func TestRemovedFocusIsClearedOnThink(t *testing.T) {
	f := newFixture(t)
	editor := f.add(0, "editor", 10, 10, 300, 20).SetKeyboardInputEnabled(true)
	f.h.Focus(editor.Ref())
	require.True(t, f.h.OnKeyEvent(f.tree, retained.KeyEnd, true))
	require.NoError(t, f.tree.Remove(editor.ID()))
	f.log.take()

	f.h.OnCanvasThink(f.tree)
	assert.True(t, f.h.KeyboardFocus().IsZero())
	assert.False(t, f.h.OnKeyEvent(f.tree, retained.KeyEnd, false))
	assert.False(t, f.h.OnCharacter(f.tree, 'a'))
	assert.Empty(t, f.log.take())
}
