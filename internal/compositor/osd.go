package compositor

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/redox-os/orbital/internal/display"
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/rimage"
)

// OSD draws a transient overlay on top of the composited frame. nil is a
// valid OSD that draws nothing.
type OSD interface {
	Draw(d *display.Display, clip geom.Rect)
}

// anchor picks which corner of the first display a rectOSD's panel hugs;
// the menu-style overlays (window list, volume, shortcuts) and the fps
// readout use opposite corners so both can be on screen at once.
type anchor int

const (
	anchorTopLeft anchor = iota
	anchorTopRight
)

// rectOSD is the common shape of the window-list/volume/shortcuts/fps
// overlays: a single translucent panel anchored near a corner of the
// first display. The lines only set the panel's height; Draw fills the
// panel with bg and does not rasterize the text (fg is not used).
type rectOSD struct {
	lines  []string
	bg     rimage.Color
	fg     rimage.Color
	anchor anchor
}

func (o rectOSD) Draw(d *display.Display, clip geom.Rect) {
	panel := o.panelRect(d)
	painted := panel.Intersect(clip)
	if painted.IsEmpty() {
		return
	}
	d.Roi(painted).Blend(solid(painted.Offset(-panel.X, -panel.Y), painted.W, painted.H, o.bg))
}

func (o rectOSD) panelRect(d *display.Display) geom.Rect {
	const w = 320
	h := 16 + len(o.lines)*14
	if o.anchor == anchorTopRight {
		return geom.New(d.X+d.ScreenRect().W-w-20, d.Y+20, w, h)
	}
	return geom.New(d.X+20, d.Y+20, w, h)
}

func solid(_ geom.Rect, w, h int, c rimage.Color) *rimage.Roi {
	img := rimage.New(w, h)
	img.FillRect(img.Rect(), c)
	return img.Roi(img.Rect())
}

// WindowListOSD builds Super+Tab's cycling list: one line per title, in
// the order given (the caller passes titles in focus order, so the
// current target is the first line; no marker is added).
func WindowListOSD(titles []string) OSD {
	return rectOSD{lines: titles, bg: rimage.RGBA(20, 20, 20, 200), fg: rimage.RGBA(255, 255, 255, 255)}
}

// VolumeOSD renders the transient volume-level bar shown on volume-key
// presses.
func VolumeOSD(percent int) OSD {
	return rectOSD{lines: []string{fmt.Sprintf("volume: %d%%", percent)}, bg: rimage.RGBA(20, 20, 20, 200), fg: rimage.RGBA(255, 255, 255, 255)}
}

// ShortcutsOSD renders the Super-held help overlay, shown when Super is
// pressed and hidden when Super is released or another key is pressed
// with it.
var shortcutsList = []string{
	"Super+Tab             cycle windows",
	"Super+Shift+Tab       cycle windows (reverse)",
	"Super+Arrow           move window by one grid step",
	"Super+Shift+Arrow     tile window to that half",
	"Super+M / Super+Enter toggle maximize",
	"Super+C / X / V       clipboard copy / cut / paste",
	"Super+{ / Super+}     volume down / up",
	"Super+\\               toggle mute",
	"Super+Q               close focused window",
	"Super+Escape          close all overlays",
}

func ShortcutsOSD() OSD {
	return rectOSD{lines: shortcutsList, bg: rimage.RGBA(10, 10, 10, 220), fg: rimage.RGBA(255, 255, 255, 255)}
}

// FPSStats is a single sample of the fps/perf overlay, enriched beyond
// the original's plain frame counter with process CPU% and RSS sampled
// via gopsutil, matching the telemetry erez-monitor gathers for its tray.
type FPSStats struct {
	FPS      float64
	CPUPct   float64
	RSSBytes uint64
}

// FPSOverlay samples process stats on demand and renders them alongside
// the frame-rate counter.
type FPSOverlay struct {
	proc      *process.Process
	lastFrame time.Time
	frames    int
	fps       float64
}

func NewFPSOverlay() *FPSOverlay {
	p, _ := process.NewProcess(int32(os.Getpid()))
	return &FPSOverlay{proc: p, lastFrame: time.Now()}
}

// Tick records one composited frame; call once per Redraw.
func (f *FPSOverlay) Tick(now time.Time) {
	f.frames++
	if elapsed := now.Sub(f.lastFrame); elapsed >= time.Second {
		f.fps = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.lastFrame = now
	}
}

func (f *FPSOverlay) Stats() FPSStats {
	stats := FPSStats{FPS: f.fps}
	if f.proc == nil {
		return stats
	}
	if cpu, err := f.proc.CPUPercent(); err == nil {
		stats.CPUPct = cpu
	}
	if mem, err := f.proc.MemoryInfo(); err == nil && mem != nil {
		stats.RSSBytes = mem.RSS
	}
	return stats
}

func (f *FPSOverlay) OSD() OSD {
	s := f.Stats()
	return rectOSD{
		lines: []string{
			fmt.Sprintf("%.1f fps", s.FPS),
			fmt.Sprintf("cpu %.1f%%  rss %d KiB", s.CPUPct, s.RSSBytes/1024),
		},
		bg:     rimage.RGBA(0, 0, 0, 160),
		fg:     rimage.RGBA(0, 255, 0, 255),
		anchor: anchorTopRight,
	}
}
