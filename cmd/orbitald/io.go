package main

import (
	"encoding/binary"
	"os"
	"strconv"
	"strings"

	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/protocol"
	"github.com/redox-os/orbital/internal/scheme"
	"github.com/redox-os/orbital/internal/wm"
)

// inputFile implements eventloop.Source over the display file's input
// side: batches of fixed-size protocol.Event records are read and
// translated into wm calls.
type inputFile struct {
	file *os.File
}

func (f *inputFile) FD() int { return int(f.file.Fd()) }

func (f *inputFile) Drain() (bool, error) {
	buf := make([]byte, protocol.EventSize*32)
	n, err := f.file.Read(buf)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	count := n / protocol.EventSize
	for i := 0; i < count; i++ {
		var ev protocol.Event
		if err := ev.UnmarshalBinary(buf[i*protocol.EventSize:]); err != nil {
			continue
		}
		dispatchInput(ev)
	}
	return count > 0, nil
}

var activeManager *wm.Manager

// pointerPos is the last absolute pointer position seen, read by
// main.go's redraw callback to place the cursor overlay.
var pointerPos geom.Point

func dispatchInput(ev protocol.Event) {
	if activeManager == nil {
		return
	}
	switch ev.Code {
	case protocol.KindKey:
		activeManager.KeyEvent(ev.A, ev.B != 0)
	case protocol.KindButton:
		activeManager.ButtonEvent(int(ev.A), int(ev.B), ev.C != 0)
	case protocol.KindMouse:
		pointerPos = geom.Point{X: int(ev.A), Y: int(ev.B)}
		activeManager.MouseEvent(int(ev.A), int(ev.B))
	case protocol.KindScroll:
		activeManager.ScrollEvent(ev.A, ev.B)
	case protocol.KindResize:
		activeManager.ResizeEvent(int(ev.A), int(ev.B))
	}
}

// connHandler services one scheme client connection's request/response
// pairs. Requests are framed as a one-byte opcode followed by
// '\x00'-joined string arguments:
//
//	'O' open       args: path
//	'D' dup        args: fd, selector
//	'R' read       args: fd, maxEvents
//	'W' write      args: fd, data
//	'P' fpath      args: fd
//	'E' fevent     args: fd, flags
//	'S' fsync      args: fd
//	'C' close      args: fd
type connHandler struct {
	conn    *scheme.Conn
	srv     *scheme.Server
	manager *wm.Manager
}

// pendingReads maps a parked read's handle to the connection waiting on
// it, so RetryDelayed's callback (keyed by handle, not by net.Conn) can
// find the right connection to reply on once the window's queue is no
// longer empty.
var pendingReads = map[int]*connHandler{}

func (c *connHandler) FD() int { return c.conn.FD() }

func (c *connHandler) HandleReadable() error {
	msg, err := c.conn.ReadMessage()
	if err != nil {
		_ = c.conn.Close()
		return err
	}
	if len(msg) == 0 {
		return nil
	}
	op := msg[0]
	args := strings.Split(string(msg[1:]), "\x00")

	switch op {
	case 'O':
		fd, err := c.srv.Open(args[0])
		return c.reply(err, itob(fd))
	case 'D':
		fd := atoiSafe(args[0])
		newFD, err := c.srv.Dup(fd, args[1])
		return c.reply(err, itob(newFD))
	case 'R':
		fd := atoiSafe(args[0])
		if fd&scheme.ClipboardFlag != 0 {
			data, err := c.srv.ReadClipboard(fd)
			return c.reply(err, []byte(data))
		}
		max := atoiSafe(args[1])
		events, ready, err := c.srv.Read(fd, max)
		if err != nil {
			return c.reply(err, nil)
		}
		if !ready {
			pendingReads[fd] = c
			return nil
		}
		return c.reply(nil, eventsToBytes(events))
	case 'W':
		fd := atoiSafe(args[0])
		n, err := c.srv.Write(fd, args[1])
		return c.reply(err, itob(n))
	case 'P':
		fd := atoiSafe(args[0])
		path, err := c.srv.Fpath(fd)
		return c.reply(err, []byte(path))
	case 'E':
		fd := atoiSafe(args[0])
		err := c.srv.Fevent(fd, atoiSafe(args[1]))
		return c.reply(err, nil)
	case 'S':
		fd := atoiSafe(args[0])
		err := c.srv.Fsync(fd)
		return c.reply(err, nil)
	case 'C':
		fd := atoiSafe(args[0])
		if ch, ok := pendingReads[fd]; ok {
			delete(pendingReads, fd)
			_ = ch.reply(scheme.ErrCanceled("scheme: read canceled by close"), nil)
		}
		err := c.srv.Close(fd)
		return c.reply(err, nil)

	// Admin opcodes used by cmd/orbitalctl (L, K, T) and cmd/orbitaltray
	// (L, X), outside the client-facing
	// open/read/write/fpath/fevent/fsync/close grammar.
	case 'L':
		var sb strings.Builder
		for _, w := range c.manager.ListWindows() {
			sb.WriteString(strconv.Itoa(w.ID))
			sb.WriteByte('\t')
			sb.WriteString(w.Title)
			sb.WriteByte('\n')
		}
		return c.reply(nil, []byte(sb.String()))
	case 'K':
		id := atoiSafe(args[0])
		err := c.manager.ClipboardWrite(id, args[1])
		return c.reply(err, nil)
	case 'T':
		id := atoiSafe(args[0])
		err := c.manager.ForceTile(id)
		return c.reply(err, nil)
	case 'X':
		c.manager.ToggleShortcuts()
		return c.reply(nil, nil)
	}
	return nil
}

func (c *connHandler) reply(err error, payload []byte) error {
	status := byte(0)
	if err != nil {
		status = 1
		payload = []byte(err.Error())
	}
	return c.conn.WriteMessage(append([]byte{status}, payload...))
}

func itob(v int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(int64(v)))
	return buf
}

func atoiSafe(s string) int {
	v := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		v = v*10 + int(r-'0')
	}
	if neg {
		v = -v
	}
	return v
}

func eventsToBytes(events []protocol.Event) []byte {
	out := make([]byte, 0, len(events)*protocol.EventSize)
	for _, ev := range events {
		b, _ := ev.MarshalBinary()
		out = append(out, b...)
	}
	return out
}
