package main

import (
	"github.com/redox-os/orbital/internal/compositor"
	"github.com/redox-os/orbital/internal/wm"
)

// lastOverlayKind/lastOverlayGen track what was last handed to
// comp.SetOSD so syncOverlay only calls it (and pays for the DamageAll it
// triggers) on an actual change, not on every redraw tick while an
// overlay is held — but still refreshes on each Super+Tab step or volume
// adjustment, which changes content without changing kind.
var (
	lastOverlayKind string
	lastOverlayGen  int
)

// syncOverlay builds the OSD content for manager's current overlay state
// (window list, shortcuts help, or volume bar) and installs it on comp, the
// glue between wm's overlay bookkeeping and compositor's OSD interface
// those two packages are kept decoupled from each other (§4.D/§4.H).
func syncOverlay(manager *wm.Manager, comp *compositor.Compositor) {
	kind, active := manager.OverlayKind()
	if !active {
		kind = ""
	}
	gen := manager.OverlayGeneration()
	if kind == lastOverlayKind && gen == lastOverlayGen {
		return
	}
	lastOverlayKind, lastOverlayGen = kind, gen

	switch kind {
	case "windowlist":
		comp.SetOSD(compositor.WindowListOSD(manager.WindowTitles()))
	case "shortcuts":
		comp.SetOSD(compositor.ShortcutsOSD())
	case "volume":
		comp.SetOSD(compositor.VolumeOSD(manager.VolumePercent()))
	default:
		comp.SetOSD(nil)
	}
}
