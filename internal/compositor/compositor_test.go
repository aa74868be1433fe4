package compositor

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redox-os/orbital/internal/display"
	"github.com/redox-os/orbital/internal/rimage"
	"github.com/redox-os/orbital/internal/window"
)

type fakeBackend struct{}

func (fakeBackend) Map(file *os.File, width, height int) (*rimage.Image, error) {
	return rimage.New(width, height), nil
}
func (fakeBackend) Unmap(*rimage.Image) {}

type fakeSource struct {
	windows map[int]*window.Window
	order   []struct {
		ID      int
		Focused bool
	}
}

func (s fakeSource) Window(id int) (*window.Window, bool) {
	w, ok := s.windows[id]
	return w, ok
}
func (s fakeSource) PaintOrder() []struct {
	ID      int
	Focused bool
} {
	return s.order
}

func newTestDisplay(t *testing.T) *display.Display {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "disp")
	require.NoError(t, err)
	d, err := display.New(0, 0, 100, 100, f, fakeBackend{}, logrus.NewEntry(logrus.New()))
	require.NoError(t, err)
	return d
}

func TestRedrawPaintsBackgroundAndClearsDirty(t *testing.T) {
	d := newTestDisplay(t)
	c := New([]*display.Display{d}, rimage.RGBA(1, 2, 3, 255), logrus.NewEntry(logrus.New()))
	c.DamageAll()

	src := fakeSource{windows: map[int]*window.Window{}}
	syncs := c.Redraw(src, Cursor{})

	assert.NotEmpty(t, syncs)
	assert.Equal(t, rimage.RGBA(1, 2, 3, 255), d.Image().At(0, 0))

	// second redraw with nothing dirty is a no-op
	assert.Nil(t, c.Redraw(src, Cursor{}))
}

func TestRedrawPaintsWindowBody(t *testing.T) {
	d := newTestDisplay(t)
	c := New([]*display.Display{d}, 0, logrus.NewEntry(logrus.New()))
	w := window.New(1, 10, 10, 20, 20, "w", window.Normal, window.FlagBorderless)
	w.Image.FillRect(w.Image.Rect(), rimage.RGBA(9, 9, 9, 255))

	src := fakeSource{
		windows: map[int]*window.Window{1: w},
		order: []struct {
			ID      int
			Focused bool
		}{{ID: 1, Focused: true}},
	}
	c.DamageAll()
	c.Redraw(src, Cursor{})

	assert.Equal(t, rimage.RGBA(9, 9, 9, 255), d.Image().At(15, 15))
}

func TestRedrawBlendsTransparentWindowInsteadOfBlitting(t *testing.T) {
	d := newTestDisplay(t)
	c := New([]*display.Display{d}, rimage.RGBA(5, 5, 5, 255), logrus.NewEntry(logrus.New()))
	w := window.New(1, 10, 10, 20, 20, "w", window.Normal, window.FlagBorderless|window.FlagTransparent)
	w.Image.FillRect(w.Image.Rect(), rimage.RGBA(200, 0, 0, 0))

	src := fakeSource{
		windows: map[int]*window.Window{1: w},
		order: []struct {
			ID      int
			Focused bool
		}{{ID: 1, Focused: true}},
	}
	c.DamageAll()
	c.Redraw(src, Cursor{})

	// a fully-transparent source pixel must not overwrite the background,
	// unlike an opaque Blit which would stamp (200,0,0) directly.
	assert.NotEqual(t, rimage.RGBA(200, 0, 0, 0), d.Image().At(15, 15))
}

func TestSetFPSOSDDamagesOnlyItsCornerPanel(t *testing.T) {
	d := newTestDisplay(t)
	c := New([]*display.Display{d}, 0, logrus.NewEntry(logrus.New()))

	c.SetFPSOSD((&FPSOverlay{}).OSD())
	require.Len(t, c.dirty, 1)
	assert.Equal(t, 100-320-20, c.dirty[0].X) // top-right anchor against the 100-wide test display
}

func TestSetOSDAndSetFPSOSDComposeInOneFrame(t *testing.T) {
	d := newTestDisplay(t)
	c := New([]*display.Display{d}, 0, logrus.NewEntry(logrus.New()))
	c.SetOSD(VolumeOSD(50))
	c.SetFPSOSD((&FPSOverlay{}).OSD())

	src := fakeSource{windows: map[int]*window.Window{}}
	syncs := c.Redraw(src, Cursor{})
	assert.NotEmpty(t, syncs)
	// both overlays painted without one clearing the other
	assert.NotNil(t, c.osd)
	assert.NotNil(t, c.fpsOSD)
}
