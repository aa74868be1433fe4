package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/protocol"
)

func TestRectIncludesDecoration(t *testing.T) {
	w := New(1, 100, 100, 200, 150, "test", Normal, 0)
	assert.Equal(t, geom.New(96, 80, 208, 174), w.Rect())
	assert.Equal(t, geom.New(100, 100, 200, 150), w.BodyRect())
}

func TestBorderlessRectHasNoDecoration(t *testing.T) {
	w := New(1, 100, 100, 200, 150, "test", Normal, FlagBorderless)
	assert.Equal(t, geom.New(100, 100, 200, 150), w.Rect())
	assert.True(t, w.TitleRect().IsEmpty())
	assert.True(t, w.LeftBorderRect().IsEmpty())
}

func TestSetFlagTogglesBits(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "t", Normal, 0)
	assert.False(t, w.HasFlag(FlagResizable))
	w.SetFlag(FlagResizable, true)
	assert.True(t, w.HasFlag(FlagResizable))
	w.SetFlag(FlagResizable, false)
	assert.False(t, w.HasFlag(FlagResizable))
}

func TestResizeReallocatesFramebuffer(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "t", Normal, 0)
	w.Resize(50, 60)
	assert.Equal(t, 50, w.W)
	assert.Equal(t, 60, w.H)
	assert.Equal(t, 50, w.Image.Width())
	assert.Equal(t, 60, w.Image.Height())
}

func TestPushAndPopEventsPreservesOrder(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "t", Normal, 0)
	w.PushEvent(protocol.Event{Code: protocol.KindKey, A: 1})
	w.PushEvent(protocol.Event{Code: protocol.KindKey, A: 2})
	w.PushEvent(protocol.Event{Code: protocol.KindKey, A: 3})

	got := w.PopEvents(2)
	assert.Len(t, got, 2)
	assert.EqualValues(t, 1, got[0].A)
	assert.EqualValues(t, 2, got[1].A)

	rest := w.PopEvents(10)
	assert.Len(t, rest, 1)
	assert.EqualValues(t, 3, rest[0].A)
}

func TestPopEventsZeroOrOversizedReturnsAll(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "t", Normal, 0)
	w.PushEvent(protocol.Event{Code: protocol.KindKey})
	assert.Len(t, w.PopEvents(0), 1)
}
