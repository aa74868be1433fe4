package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redox-os/orbital/internal/scheme"
	"github.com/redox-os/orbital/internal/window"
)

func TestFlagCommandSetsEveryCharInOneCall(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10})
	w, _ := m.Window(id)

	require.NoError(t, m.ApplyWrite(id, "F,art,1"))
	assert.True(t, w.HasFlag(window.FlagAsync))
	assert.True(t, w.HasFlag(window.FlagResizable))
	assert.True(t, w.HasFlag(window.FlagTransparent))
	assert.False(t, w.HasFlag(window.FlagUnclosable))

	require.NoError(t, m.ApplyWrite(id, "F,a,0"))
	assert.False(t, w.HasFlag(window.FlagAsync))
}

func TestFlagCommandRejectsUnknownLetter(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10})
	assert.Error(t, m.ApplyWrite(id, "F,z,1"))
}

func TestMouseCommandMapsCToCursorAndGToGrab(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10})
	w, _ := m.Window(id)

	require.NoError(t, m.ApplyWrite(id, "M,C,1"))
	assert.True(t, w.MouseCursor)
	assert.False(t, w.MouseGrab)

	require.NoError(t, m.ApplyWrite(id, "M,G,1"))
	assert.True(t, w.MouseGrab)
	assert.True(t, w.MouseCursor) // unaffected by a grab toggle
}
