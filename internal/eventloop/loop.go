// Package eventloop drives the single-threaded, cooperative dispatch
// loop: it polls the scheme listener, every accepted client connection,
// and the display input file, and pumps delayed reads and redraws in
// response (§4.I).
//
// Redox's own event loop multiplexes exactly two kernel-provided file
// descriptors. On Linux there is no equivalent single fd representing
// "all scheme calls", so this loop epoll-waits on the listener plus one
// fd per connected client plus the display/input fd — still a single
// poll, still single-threaded and cooperative, just fanned out over
// more descriptors than the original needed.
package eventloop

import (
	stderrors "errors"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Source is anything the loop polls other than scheme connections: the
// display/input file, which surfaces batches of input events.
type Source interface {
	FD() int
	// Drain is called when the fd is readable; it returns true if any
	// input was actually consumed (used to decide whether to retry
	// delayed reads and trigger a redraw).
	Drain() (consumed bool, err error)
}

// ConnHandler services one readable client connection.
type ConnHandler interface {
	FD() int
	HandleReadable() error
}

// Loop owns the epoll fd and the registered sources.
type Loop struct {
	epfd     int
	listenFD int
	onAccept func() (ConnHandler, error)
	conns    map[int]ConnHandler
	display  Source
	onInput  func()
	log      *logrus.Entry
}

func New(listenFD int, onAccept func() (ConnHandler, error), display Source, onInput func(), log *logrus.Entry) (*Loop, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, errors.Wrap(err, "eventloop: epoll_create1")
	}
	l := &Loop{epfd: epfd, listenFD: listenFD, onAccept: onAccept, conns: map[int]ConnHandler{}, display: display, onInput: onInput, log: log}
	if err := l.add(listenFD); err != nil {
		return nil, err
	}
	if err := l.add(display.FD()); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loop) add(fd int) error {
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return errors.Wrapf(err, "eventloop: epoll_ctl add fd %d", fd)
	}
	return nil
}

func (l *Loop) remove(fd int) {
	_ = unix.EpollCtl(l.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

// RegisterConn adds a newly-accepted connection to the poll set.
func (l *Loop) RegisterConn(h ConnHandler) error {
	if err := l.add(h.FD()); err != nil {
		return err
	}
	l.conns[h.FD()] = h
	return nil
}

func (l *Loop) unregisterConn(fd int) {
	l.remove(fd)
	delete(l.conns, fd)
}

// Run blocks, servicing events until ctx-equivalent stop is signaled via
// closing the display source's fd (the same shutdown path the original
// relies on: the display file closing ends the run loop).
func (l *Loop) Run() error {
	events := make([]unix.EpollEvent, 16+len(l.conns))
	for {
		n, err := unix.EpollWait(l.epfd, events, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return errors.Wrap(err, "eventloop: epoll_wait")
		}
		inputArrived := false
		for i := 0; i < n; i++ {
			fd := int(events[i].Fd)
			switch {
			case fd == l.listenFD:
				l.handleAccept()
			case fd == l.display.FD():
				consumed, derr := l.display.Drain()
				if derr != nil {
					if stderrors.Is(derr, os.ErrClosed) {
						return nil
					}
					l.log.WithError(derr).Warn("display drain error")
					continue
				}
				if consumed {
					inputArrived = true
				}
			default:
				if h, ok := l.conns[fd]; ok {
					if err := h.HandleReadable(); err != nil {
						l.log.WithError(err).WithField("fd", fd).Debug("connection closed")
						l.unregisterConn(fd)
					}
				}
			}
		}
		if inputArrived && l.onInput != nil {
			l.onInput()
		}
	}
}

func (l *Loop) handleAccept() {
	h, err := l.onAccept()
	if err != nil {
		l.log.WithError(err).Warn("accept failed")
		return
	}
	if err := l.RegisterConn(h); err != nil {
		l.log.WithError(err).Warn("register connection failed")
	}
}

func (l *Loop) Close() error {
	return unix.Close(l.epfd)
}
