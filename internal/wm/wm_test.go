package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redox-os/orbital/internal/clipboard"
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/protocol"
	"github.com/redox-os/orbital/internal/scheme"
	"github.com/redox-os/orbital/internal/window"
)

type fakeDisplay struct{ r geom.Rect }

func (f fakeDisplay) ScreenRect() geom.Rect { return f.r }

func newTestManager() *Manager {
	return NewManager([]Display{fakeDisplay{r: geom.New(0, 0, 1000, 800)}}, nil, clipboard.New(nil), nil, nil)
}

func TestNewWindowAutoCentersWhenBothNegative(t *testing.T) {
	m := newTestManager()
	id, err := m.NewWindow(scheme.OpenSpec{X: -1, Y: -1, W: 100, H: 100, AutoCenter: true})
	require.NoError(t, err)
	w, _ := m.Window(id)
	assert.Equal(t, 450, w.X)
	assert.Equal(t, 350, w.Y)
}

func TestBackWindowNeverStealsFocus(t *testing.T) {
	m := newTestManager()
	front, _ := m.NewWindow(scheme.OpenSpec{X: 0, Y: 0, W: 50, H: 50})

	backID, _ := m.NewWindow(scheme.OpenSpec{X: 500, Y: 500, W: 50, H: 50})
	m.windows[backID].ZOrder = window.Back
	m.order.Remove(backID)
	m.order.Add(backID, window.Back)
	m.rezbuffer()

	m.ButtonEvent(510, 510, true)
	focused, _ := m.order.Focused()
	assert.Equal(t, front, focused)
}

func TestTileThenRestore(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{X: 10, Y: 10, W: 50, H: 50})
	w, _ := m.Window(id)
	origX, origY, origW, origH := w.X, w.Y, w.W, w.H

	m.tileFrontWindow(tileFull)
	assert.Equal(t, 0, w.X)
	assert.Equal(t, 1000, w.W)
	assert.True(t, w.HasFlag(window.FlagMaximized))

	// Tiling again while a Restore is pinned toggles back instead of
	// re-tiling (§4.H tile_window).
	m.tileFrontWindow(tileFull)
	assert.Equal(t, origX, w.X)
	assert.Equal(t, origY, w.Y)
	assert.Equal(t, origW, w.W)
	assert.Equal(t, origH, w.H)
	assert.False(t, w.HasFlag(window.FlagMaximized))
}

func TestSuperTabPromotesNextWindow(t *testing.T) {
	m := newTestManager()
	id1, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10})
	id2, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10})
	_ = id1
	focused, _ := m.order.Focused()
	assert.Equal(t, id2, focused)

	m.superTab(false)
	focused, _ = m.order.Focused()
	assert.Equal(t, id1, focused)
}

func TestDragTitleMovesWindow(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{X: 100, Y: 100, W: 50, H: 50})
	w, _ := m.Window(id)

	m.drag.Begin(w, DragTitle, 110, 105)
	m.MouseEvent(130, 120)
	assert.Equal(t, 120, w.X)
	assert.Equal(t, 115, w.Y)
}

func TestMoveFrontWindowSnapsToGridAndClampsToDisplay(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{X: 100, Y: 100, W: 50, H: 50})
	w, _ := m.Window(id)

	m.moveFrontWindow(1, 0)
	assert.Equal(t, 112, w.X)

	w.X = 0
	m.moveFrontWindow(-5, 0)
	assert.Equal(t, 0, w.X)
}

func TestPlainSuperArrowMovesShiftTiles(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{X: 100, Y: 100, W: 50, H: 50})
	w, _ := m.Window(id)

	m.TrackModifierState(KeySuper, true)
	m.KeyEvent(KeyRight, true)

	assert.Equal(t, 112, w.X)
	assert.Equal(t, 50, w.W) // unchanged: this was a move, not a tile

	m.TrackModifierState(KeyShift, true)
	m.KeyEvent(KeyRight, true)

	assert.Equal(t, 500, w.X) // right-half tile against the 1000-wide display
	assert.Equal(t, 500, w.W)
}

func TestVolumeShortcutsAdjustAndMute(t *testing.T) {
	m := newTestManager()
	assert.Equal(t, 50, m.VolumePercent())

	m.TrackModifierState(KeySuper, true)
	m.KeyEvent(KeyVolumeUp, true)
	assert.Equal(t, 55, m.VolumePercent())
	kind, active := m.OverlayKind()
	assert.True(t, active)
	assert.Equal(t, "volume", kind)

	m.KeyEvent(KeyVolumeMute, true)
	assert.Equal(t, 0, m.VolumePercent())

	m.KeyEvent(KeyVolumeUp, true)
	assert.Equal(t, 60, m.VolumePercent()) // un-mutes and keeps adjusting the stored level
}

func TestSuperMTogglesMaximize(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{X: 10, Y: 10, W: 50, H: 50})
	w, _ := m.Window(id)

	m.TrackModifierState(KeySuper, true)
	m.KeyEvent(KeyM, true)
	assert.True(t, w.HasFlag(window.FlagMaximized))
	assert.Equal(t, 0, w.X)

	m.KeyEvent(KeyEnter, true)
	assert.False(t, w.HasFlag(window.FlagMaximized))
	assert.Equal(t, 10, w.X)
}

func TestSuperCXVEmitClipboardEventsToFrontWindow(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10})
	w, _ := m.Window(id)

	m.TrackModifierState(KeySuper, true)
	m.KeyEvent(KeyC, true)
	m.KeyEvent(KeyX, true)
	m.KeyEvent(KeyV, true)

	require.Len(t, w.Events, 3)
	assert.Equal(t, protocol.ClipboardCopy, w.Events[0].A)
	assert.Equal(t, protocol.ClipboardCut, w.Events[1].A)
	assert.Equal(t, protocol.ClipboardPaste, w.Events[2].A)
}

func TestApplyWriteRetitle(t *testing.T) {
	m := newTestManager()
	id, _ := m.NewWindow(scheme.OpenSpec{W: 10, H: 10, Title: "old"})
	require.NoError(t, m.ApplyWrite(id, "T,new title"))
	w, _ := m.Window(id)
	assert.Equal(t, "new title", w.Title)
}
