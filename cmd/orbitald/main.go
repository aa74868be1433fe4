// Command orbitald is the orbital display server: it owns the scheme
// socket, composites client windows onto one or more displays, and
// drives the window-manager policy layer.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/redox-os/orbital/internal/clipboard"
	"github.com/redox-os/orbital/internal/compositor"
	"github.com/redox-os/orbital/internal/config"
	"github.com/redox-os/orbital/internal/display"
	"github.com/redox-os/orbital/internal/eventloop"
	"github.com/redox-os/orbital/internal/logging"
	"github.com/redox-os/orbital/internal/protocol"
	"github.com/redox-os/orbital/internal/rimage"
	"github.com/redox-os/orbital/internal/scheme"
	"github.com/redox-os/orbital/internal/wm"
	"github.com/redox-os/orbital/internal/wm/script"
)

func main() {
	configPath := flag.String("config", "/etc/orbital/orbital.yaml", "path to orbital's configuration file")
	displayPath := flag.String("display", "display:1024/768", "display file to map the framebuffer from")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
	entry := log.WithField("component", "orbitald")

	displayFile, err := os.OpenFile(*displayPath, os.O_RDWR, 0)
	if err != nil {
		entry.WithError(err).Fatal("failed to open display file")
	}

	backend := display.MmapBackend{}
	dsp, err := display.New(0, 0, 1024, 768, displayFile, backend, entry)
	if err != nil {
		entry.WithError(err).Fatal("failed to map display")
	}
	defer dsp.Close()

	comp := compositor.New([]*display.Display{dsp}, cfg.BackgroundColor, entry)
	comp.DamageAll()

	var fpsOverlay *compositor.FPSOverlay
	if cfg.FPSOverlay {
		fpsOverlay = compositor.NewFPSOverlay()
	}

	var cursorImage *rimage.Image
	if cfg.CursorPath != "" {
		if img, err := config.DecodeCursor(cfg.CursorPath); err != nil {
			entry.WithError(err).Warn("failed to load cursor image, falling back to the hardware cursor hint")
		} else {
			cursorImage = rimage.FromStdImage(img)
		}
	}

	var bridge clipboard.HostBridge
	if hc, err := clipboard.NewHostClipboard(); err == nil {
		bridge = hc
		defer hc.Close()
	} else {
		entry.WithError(err).Debug("host clipboard bridge unavailable, clipboard stays process-local")
	}
	clip := clipboard.New(bridge)

	var legacy wm.LegacyHandler
	if cfg.ScriptPath != "" {
		hook, err := script.Load(cfg.ScriptPath)
		if err != nil {
			entry.WithError(err).Warn("failed to load keybinding script, legacy Super-key fallback disabled")
		} else {
			legacy = hook
			defer hook.Close()
		}
	}

	manager := wm.NewManager([]wm.Display{dsp}, comp, clip, legacy, entry)
	activeManager = manager

	srv := scheme.NewServer(manager)

	ln, err := scheme.Listen(cfg.SocketPath)
	if err != nil {
		entry.WithError(err).Fatal("failed to listen on scheme socket")
	}
	defer ln.Close()
	listenFD, err := ln.FD()
	if err != nil {
		entry.WithError(err).Fatal("failed to get listener fd")
	}

	inputSource := &inputFile{file: displayFile}

	loop, err := eventloop.New(listenFD, func() (eventloop.ConnHandler, error) {
		conn, err := ln.Accept()
		if err != nil {
			return nil, err
		}
		return &connHandler{conn: conn, srv: srv, manager: manager}, nil
	}, inputSource, func() {
		srv.RetryDelayed(func(fd int, events []protocol.Event) {
			if ch, ok := pendingReads[fd]; ok {
				delete(pendingReads, fd)
				_ = ch.reply(nil, eventsToBytes(events))
			}
		})
		clip.PullFromHost()
		syncOverlay(manager, comp)
		if fpsOverlay != nil {
			fpsOverlay.Tick(time.Now())
			comp.SetFPSOSD(fpsOverlay.OSD())
		}
		cursor := compositor.Cursor{Pos: pointerPos}
		if cursorImage != nil {
			cursor.Image = cursorImage
		} else {
			cursor.HardwareHint = true
		}
		syncs := comp.Redraw(manager, cursor)
		for range syncs {
			// Writing a protocol.SyncRect back to the display file is
			// backend-specific; the mmap backend needs no explicit
			// flush since the framebuffer is shared memory.
		}
	}, entry)
	if err != nil {
		entry.WithError(err).Fatal("failed to start event loop")
	}
	defer loop.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		entry.Info("shutting down")
		_ = ln.Close()
		os.Exit(0)
	}()

	entry.Info("orbitald started")
	if err := loop.Run(); err != nil {
		entry.WithError(err).Fatal("event loop terminated")
	}
}

var _ scheme.WindowManager = (*wm.Manager)(nil)
