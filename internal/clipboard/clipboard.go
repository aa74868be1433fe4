// Package clipboard implements the single process-wide clipboard buffer
// and each window's independent read offset into it (§ clipboard).
package clipboard

import "sync"

// Buffer is the one shared clipboard payload plus a per-window seek
// position, mirroring the original's clipboard_seek field on Window:
// every window reads from its own offset into the same buffer, so a
// window that has already read the buffer gets nothing more until new
// data arrives, while other windows can still read it from the start. A
// Write (or a changed host clipboard) resets every window's offset.
type Buffer struct {
	mu     sync.Mutex
	data   string
	seek   map[int]int
	bridge HostBridge
}

// HostBridge optionally mirrors the buffer onto/from the host OS
// clipboard (golang.design/x/clipboard in hostsync.go). A nil bridge
// disables host sync entirely.
type HostBridge interface {
	Write(data string)
	Read() (string, bool)
}

func New(bridge HostBridge) *Buffer {
	return &Buffer{seek: make(map[int]int), bridge: bridge}
}

// Write replaces the buffer contents and resets every window's seek to
// zero so a subsequent read starts from the beginning of the new data.
func (b *Buffer) Write(windowID int, data string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
	b.seek = make(map[int]int)
	if b.bridge != nil {
		b.bridge.Write(data)
	}
}

// Read returns the remaining bytes from windowID's seek position onward
// and advances that window's seek to the end of the buffer.
func (b *Buffer) Read(windowID int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	pos := b.seek[windowID]
	if pos >= len(b.data) {
		return ""
	}
	out := b.data[pos:]
	b.seek[windowID] = len(b.data)
	return out
}

// Forget drops windowID's read offset, used when a window is closed and
// its entry should no longer be tracked.
func (b *Buffer) Forget(windowID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.seek, windowID)
}

// PullFromHost refreshes the buffer from the host clipboard if a bridge
// is configured and the host contents differ, returning true if the
// buffer changed.
func (b *Buffer) PullFromHost() bool {
	if b.bridge == nil {
		return false
	}
	data, ok := b.bridge.Read()
	if !ok {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if data == b.data {
		return false
	}
	b.data = data
	b.seek = make(map[int]int)
	return true
}
