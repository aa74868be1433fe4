// Package scheme implements the orbital wire protocol: the open-path
// grammar for creating windows, the per-descriptor read/write/fevent/
// fpath/fsync/close operations, and the delayed-read queue that makes a
// read on an empty, synchronous window's queue block without spinning
// (§4.G).
//
// Redox multiplexes every client call through one kernel-provided scheme
// socket fd. Linux has no equivalent single-fd abstraction for a
// userspace protocol server, so Server instead listens on one Unix
// domain socket and accepts one connection per client process; the
// event loop polls the listener plus every accepted connection plus the
// display file, which generalizes the original's "exactly two file
// descriptors" to "exactly two *classes* of descriptor" (client
// connections, and the display).
package scheme

import (
	"encoding/binary"
	"io"
	"net"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Listener accepts client connections on a Unix domain socket.
type Listener struct {
	ln *net.UnixListener
}

func Listen(path string) (*Listener, error) {
	_ = os.Remove(path)
	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, errors.Wrap(err, "scheme: resolve socket path")
	}
	ln, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, errors.Wrap(err, "scheme: listen")
	}
	return &Listener{ln: ln}, nil
}

// FD returns the listener's raw file descriptor for epoll registration.
func (l *Listener) FD() (int, error) {
	f, err := l.ln.File()
	if err != nil {
		return -1, errors.Wrap(err, "scheme: listener fd")
	}
	return int(f.Fd()), nil
}

func (l *Listener) Accept() (*Conn, error) {
	c, err := l.ln.AcceptUnix()
	if err != nil {
		return nil, errors.Wrap(err, "scheme: accept")
	}
	f, err := c.File()
	if err != nil {
		return nil, errors.Wrap(err, "scheme: conn fd")
	}
	if err := unix.SetNonblock(int(f.Fd()), true); err != nil {
		return nil, errors.Wrap(err, "scheme: set nonblock")
	}
	return &Conn{uc: c, file: f}, nil
}

func (l *Listener) Close() error { return l.ln.Close() }

// Dial connects to a running Server's socket, for admin clients such as
// cmd/orbitalctl.
func Dial(path string) (*Conn, error) {
	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, errors.Wrap(err, "scheme: resolve socket path")
	}
	uc, err := net.DialUnix("unix", nil, addr)
	if err != nil {
		return nil, errors.Wrap(err, "scheme: dial")
	}
	f, err := uc.File()
	if err != nil {
		return nil, errors.Wrap(err, "scheme: conn fd")
	}
	return &Conn{uc: uc, file: f}, nil
}

// Conn is one accepted client connection, framed as a 4-byte
// little-endian length prefix followed by the payload, mirroring the
// fixed-size framing protocol.Event already uses for the event stream.
type Conn struct {
	uc   *net.UnixConn
	file *os.File
}

func (c *Conn) FD() int { return int(c.file.Fd()) }

// ReadMessage reads one length-prefixed frame, waiting until the whole
// frame has arrived. It returns io.EOF if the peer closed the connection
// before a frame began and io.ErrUnexpectedEOF if it closed mid-frame;
// errors are returned unwrapped.
func (c *Conn) ReadMessage() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(c.uc, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.uc, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (c *Conn) WriteMessage(payload []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := c.uc.Write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "scheme: write frame header")
	}
	if _, err := c.uc.Write(payload); err != nil {
		return errors.Wrap(err, "scheme: write frame payload")
	}
	return nil
}

func (c *Conn) Close() error { return c.uc.Close() }
