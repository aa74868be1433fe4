// Package protocol defines the fixed-size wire event and sync-rectangle
// structures exchanged over the scheme socket and the display file (§6).
package protocol

import "encoding/binary"

// Kind identifies the event payload carried in an Event's Code field.
type Kind int64

const (
	KindNone Kind = iota
	KindKey
	KindButton
	KindMouse
	KindMouseRelative
	KindScroll
	KindResize
	KindScreen
	KindQuit
	KindFocus
	KindMove
	KindClipboard
	KindHover
)

// Clipboard action codes carried in a KindClipboard event's A field
// (§4.H Super-C/X/V), mirroring the original's orbclient::CLIPBOARD_*.
const (
	ClipboardCopy int64 = iota
	ClipboardCut
	ClipboardPaste
)

// Event is the fixed 32-byte record exchanged with clients: a kind tag
// plus three opaque payload words whose meaning depends on Code, mirroring
// the original's packed (i64, i64, i64, i64) event record.
type Event struct {
	Code    Kind
	A, B, C int64
}

const EventSize = 32

// MarshalBinary encodes the event into a 32-byte little-endian record.
func (e Event) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EventSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.Code))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(e.A))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(e.B))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(e.C))
	return buf, nil
}

// UnmarshalBinary decodes a 32-byte record produced by MarshalBinary.
func (e *Event) UnmarshalBinary(buf []byte) error {
	if len(buf) < EventSize {
		return errShortBuffer
	}
	e.Code = Kind(binary.LittleEndian.Uint64(buf[0:8]))
	e.A = int64(binary.LittleEndian.Uint64(buf[8:16]))
	e.B = int64(binary.LittleEndian.Uint64(buf[16:24]))
	e.C = int64(binary.LittleEndian.Uint64(buf[24:32]))
	return nil
}

type protocolError string

func (e protocolError) Error() string { return string(e) }

const errShortBuffer protocolError = "protocol: buffer shorter than one event"

// SyncRect is written back to the display file after a redraw to tell
// the kernel (or host) which screen region changed.
type SyncRect struct {
	X, Y, W, H int32
}

const SyncRectSize = 16

func (s SyncRect) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SyncRectSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(s.X))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(s.Y))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(s.W))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(s.H))
	return buf, nil
}
