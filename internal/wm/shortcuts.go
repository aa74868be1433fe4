package wm

// superTab cycles focus among open windows: forward moves the
// currently-focused window to just behind the next one in focus order
// (promoting that next one to front); reverse walks the other direction.
// It then switches the overlay to the window list (see OverlayKind),
// which lists titles in the new focus order.
func (m *Manager) superTab(reverse bool) {
	order := m.order.FocusOrder()
	if len(order) < 2 {
		return
	}
	var target int
	if reverse {
		target = order[len(order)-1]
	} else {
		target = order[1]
	}
	m.order.MakeFocused(target)
	m.rezbuffer()
	if m.comp != nil {
		m.comp.DamageAll()
	}
	m.overlay = overlayWindowList
	m.syncOSD()
}

// OverlayKind exposes the manager's current overlay state so the
// eventloop can build the matching compositor.OSD (window list,
// shortcuts help, or volume bar) without wm depending on compositor's
// OSD constructors directly.
func (m *Manager) OverlayKind() (kind string, active bool) {
	switch m.overlay {
	case overlayWindowList:
		return "windowlist", true
	case overlayShortcuts:
		return "shortcuts", true
	case overlayVolume:
		return "volume", true
	default:
		return "", false
	}
}

// ToggleShortcuts flips the shortcuts help overlay on or off, the
// administrative equivalent of holding Super (cmd/orbitaltray).
func (m *Manager) ToggleShortcuts() {
	if m.overlay == overlayShortcuts {
		m.overlay = overlayNone
	} else {
		m.overlay = overlayShortcuts
	}
	m.syncOSD()
}

// adjustVolume changes the WM-tracked volume level by delta, clamped to
// [0,100], unmuting on any change (matching a typical volume-key chord:
// pressing up/down while muted restores audible volume). It shows the
// volume OSD, which the next Super-key release or Escape clears.
func (m *Manager) adjustVolume(delta int) {
	m.volumePercent += delta
	if m.volumePercent < 0 {
		m.volumePercent = 0
	}
	if m.volumePercent > 100 {
		m.volumePercent = 100
	}
	m.muted = false
	m.overlay = overlayVolume
	m.syncOSD()
}

// toggleMute flips the mute flag without altering the stored percentage,
// so un-muting restores the level it was set to before.
func (m *Manager) toggleMute() {
	m.muted = !m.muted
	m.overlay = overlayVolume
	m.syncOSD()
}

// VolumePercent returns the WM-tracked volume level, or 0 while muted, for
// the volume OSD (cmd/orbitald wires this into compositor.VolumeOSD).
func (m *Manager) VolumePercent() int {
	if m.muted {
		return 0
	}
	return m.volumePercent
}

// WindowTitles returns window titles in focus order, for the window-list
// overlay.
func (m *Manager) WindowTitles() []string {
	titles := make([]string, 0, len(m.windows))
	for _, id := range m.order.FocusOrder() {
		if w, ok := m.windows[id]; ok {
			titles = append(titles, w.Title)
		}
	}
	return titles
}
