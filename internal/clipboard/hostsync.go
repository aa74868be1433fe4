//go:build !headless

package clipboard

import (
	"context"

	goclipboard "golang.design/x/clipboard"
)

// HostClipboard bridges Buffer to the host OS clipboard via
// golang.design/x/clipboard, so text copied in orbital is available to
// (and from) other applications on the host running the dev/Ebiten
// backend. Watch is started once at construction and kept open for the
// process lifetime; Read only ever drains it, since golang.design/x/clipboard
// spawns a polling goroutine per Watch call that runs until its context
// is canceled — calling Watch anew on every PullFromHost tick would leak
// one of those goroutines per tick.
type HostClipboard struct {
	cancel context.CancelFunc
	ch     <-chan []byte
}

// NewHostClipboard initializes the host clipboard bridge. It returns an
// error (never fatal to the caller) if the host has no clipboard
// mechanism available, e.g. running headless on redox itself.
func NewHostClipboard() (*HostClipboard, error) {
	if err := goclipboard.Init(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &HostClipboard{cancel: cancel, ch: goclipboard.Watch(ctx, goclipboard.FmtText)}, nil
}

// Close stops the background watch goroutine; callers should defer it
// for the lifetime of the bridge.
func (h *HostClipboard) Close() {
	h.cancel()
}

func (HostClipboard) Write(data string) {
	goclipboard.Write(goclipboard.FmtText, []byte(data))
}

func (h *HostClipboard) Read() (string, bool) {
	select {
	case data := <-h.ch:
		return string(data), len(data) > 0
	default:
		return "", false
	}
}
