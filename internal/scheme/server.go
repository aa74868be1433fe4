package scheme

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/redox-os/orbital/internal/protocol"
	"github.com/redox-os/orbital/internal/window"
)

// ClipboardFlag tags a descriptor returned by Dup as a per-window
// clipboard handle rather than a window handle, set in the
// highest bit of the native int width (§ clipboard, CLIPBOARD_FLAG).
const ClipboardFlag = 1 << (bits.UintSize - 1)

// WindowManager is the subset of window-manager state the protocol
// handler needs; implemented by internal/wm.Manager. Kept as an
// interface here so internal/scheme does not import internal/wm.
type WindowManager interface {
	NewWindow(spec OpenSpec) (id int, err error)
	Window(id int) (*window.Window, bool)
	CloseWindow(id int)
	ApplyWrite(id int, cmd string) error
	RequestRedraw()
	ClipboardRead(id int, seek int) (string, error)
	ClipboardWrite(id int, data string) error
}

// handleState is one open descriptor: either a window (clipboard == false) or
// that window's clipboard view (clipboard == true, id has ClipboardFlag
// set in the wire-visible form returned to the client).
type handleState struct {
	windowID  int
	clipboard bool
}

// Server drives the protocol state machine described in §4.G: open
// creates a window and returns a handle; read/write/fpath/fsync/close
// operate on a handle; dup produces a second handle aliasing either the
// same window or (for the clipboard selector) its clipboard.
type Server struct {
	wm      WindowManager
	handles map[int]*handleState
	nextFD  int
	delayed DelayedQueue
}

func NewServer(wm WindowManager) *Server {
	return &Server{wm: wm, handles: make(map[int]*handleState), nextFD: 1}
}

func (s *Server) allocFD() int {
	fd := s.nextFD
	s.nextFD++
	return fd
}

// Open parses path as an OpenSpec, creates the window, and returns the
// new handle.
func (s *Server) Open(path string) (int, error) {
	spec, err := ParseOpenPath(path)
	if err != nil {
		return 0, err
	}
	winID, err := s.wm.NewWindow(spec)
	if err != nil {
		return 0, err
	}
	fd := s.allocFD()
	s.handles[fd] = &handleState{windowID: winID}
	return fd, nil
}

// Dup aliases handle fd; selector "clipboard" returns a clipboard
// descriptor for the same window tagged with ClipboardFlag, any other
// selector (including empty) aliases the window handle itself.
func (s *Server) Dup(fd int, selector string) (int, error) {
	h, ok := s.handles[fd]
	if !ok {
		return 0, ErrBadDescriptor("scheme: dup unknown handle")
	}
	newFD := s.allocFD()
	if strings.TrimSpace(selector) == "clipboard" {
		s.handles[newFD] = &handleState{windowID: h.windowID, clipboard: true}
		return newFD | ClipboardFlag, nil
	}
	s.handles[newFD] = &handleState{windowID: h.windowID, clipboard: h.clipboard}
	return newFD, nil
}

func (s *Server) lookup(fd int) (*handleState, int, error) {
	raw := fd &^ ClipboardFlag
	h, ok := s.handles[raw]
	if !ok {
		return nil, 0, ErrBadDescriptor("scheme: unknown handle")
	}
	return h, raw, nil
}

// ReadClipboard returns the remaining clipboard bytes for fd, a handle
// previously produced by Dup's "clipboard" selector. Unlike window
// reads, a clipboard read is never delayed: an empty buffer simply
// yields an empty string.
func (s *Server) ReadClipboard(fd int) (string, error) {
	h, _, err := s.lookup(fd)
	if err != nil {
		return "", err
	}
	if !h.clipboard {
		return "", ErrInvalidArgument("scheme: read clipboard on non-clipboard handle")
	}
	return s.wm.ClipboardRead(h.windowID, 0)
}

// Read drains queued events for fd's window. If the window is
// synchronous (FlagAsync unset) and the queue is currently empty, the
// read is parked in the delayed queue instead of returning immediately;
// ready reports this via the bool return.
func (s *Server) Read(fd int, maxEvents int) (events []protocol.Event, ready bool, err error) {
	h, rawFD, err := s.lookup(fd)
	if err != nil {
		return nil, false, err
	}
	if h.clipboard {
		return nil, false, ErrInvalidArgument("scheme: read clipboard handle via window event read")
	}
	w, ok := s.wm.Window(h.windowID)
	if !ok {
		return nil, false, ErrBadDescriptor("scheme: read on closed window")
	}
	if len(w.Events) == 0 && !w.HasFlag(window.FlagAsync) {
		s.delayed.Push(DelayedRead{Handle: rawFD, WindowID: h.windowID, MaxEvents: maxEvents})
		return nil, false, nil
	}
	w.NotifiedRead = false
	return w.PopEvents(maxEvents), true, nil
}

// RetryDelayed re-checks every parked read, invoking deliver(handle,
// events) for each one whose window now has events. Call after any input
// event batch or on explicit cancellation (§ delayed-read protocol).
func (s *Server) RetryDelayed(deliver func(fd int, events []protocol.Event)) {
	s.delayed.Retry(
		func(windowID int) bool {
			w, ok := s.wm.Window(windowID)
			return ok && len(w.Events) > 0
		},
		func(d DelayedRead) {
			w, ok := s.wm.Window(d.WindowID)
			if !ok {
				deliver(d.Handle, nil)
				return
			}
			w.NotifiedRead = false
			deliver(d.Handle, w.PopEvents(d.MaxEvents))
		},
	)
}

// CancelRead cancels a previously-parked read for fd, if any.
func (s *Server) CancelRead(fd int) bool {
	return s.delayed.Cancel(fd &^ ClipboardFlag)
}

// Write applies a command string to fd's window (title/resize/flags/
// move/mouse, per the write-command table in §4.G) or, for a
// clipboard handle, stores data as the new clipboard contents.
func (s *Server) Write(fd int, data string) (int, error) {
	h, _, err := s.lookup(fd)
	if err != nil {
		return 0, err
	}
	if h.clipboard {
		if err := s.wm.ClipboardWrite(h.windowID, data); err != nil {
			return 0, err
		}
		return len(data), nil
	}
	if err := s.wm.ApplyWrite(h.windowID, data); err != nil {
		return 0, err
	}
	s.wm.RequestRedraw()
	return len(data), nil
}

// Fpath reformats fd's window geometry back into the open-path grammar.
func (s *Server) Fpath(fd int) (string, error) {
	h, _, err := s.lookup(fd)
	if err != nil {
		return "", err
	}
	w, ok := s.wm.Window(h.windowID)
	if !ok {
		return "", ErrBadDescriptor("scheme: fpath on closed window")
	}
	return FormatFpath(OpenSpec{
		X: w.X, Y: w.Y, W: w.W, H: w.H,
		Flags: w.Flags,
		Title: w.Title,
	}), nil
}

// Fevent arms or disarms FEVENT notification for fd's window by clearing
// NotifiedRead so the next non-empty queue produces a fresh notification;
// flags is accepted but unused beyond validating the handle, matching
// the original's EVENT_READ-only notification model (§4.G).
func (s *Server) Fevent(fd int, flags int) error {
	h, _, err := s.lookup(fd)
	if err != nil {
		return err
	}
	w, ok := s.wm.Window(h.windowID)
	if !ok {
		return ErrBadDescriptor("scheme: fevent on closed window")
	}
	w.NotifiedRead = false
	return nil
}

// Fsync requests an immediate redraw covering fd's window.
func (s *Server) Fsync(fd int) error {
	h, _, err := s.lookup(fd)
	if err != nil {
		return err
	}
	if _, ok := s.wm.Window(h.windowID); !ok {
		return ErrBadDescriptor("scheme: fsync on closed window")
	}
	s.wm.RequestRedraw()
	return nil
}

// Close releases fd. Closing a window's last handle destroys the
// window; closing a clipboard handle only releases the dup. Any read
// parked against fd in the delayed queue is canceled first, otherwise
// it would sit there forever since RetryDelayed only drains entries
// whose window gains events, never ones whose handle simply closed.
func (s *Server) Close(fd int) error {
	h, rawFD, err := s.lookup(fd)
	if err != nil {
		return err
	}
	s.CancelRead(rawFD)
	delete(s.handles, rawFD)
	if h.clipboard {
		return nil
	}
	for _, other := range s.handles {
		if other.windowID == h.windowID && !other.clipboard {
			return nil
		}
	}
	s.wm.CloseWindow(h.windowID)
	return nil
}

// ParseResizeCommand parses an "S,<w>,<h>" write command for ApplyWrite
// implementations elsewhere; kept here since it's purely a string-grammar
// concern of the wire protocol.
func ParseResizeCommand(data string) (w, h int, ok bool) {
	parts := strings.Split(data, ",")
	if len(parts) != 3 || parts[0] != "S" {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(parts[1])
	h, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return w, h, true
}
