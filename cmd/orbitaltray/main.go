// Command orbitaltray is a host-desktop tray companion for orbitald: it
// shows a running count of open windows and lets the user toggle the
// shortcuts OSD without switching focus into the WM itself.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/getlantern/systray"

	"github.com/redox-os/orbital/internal/scheme"
)

var socketPath = flag.String("socket", "/run/orbital.sock", "path to orbitald's scheme socket")

func main() {
	flag.Parse()
	systray.Run(onReady, onExit)
}

func onReady() {
	systray.SetTitle("orbital")
	systray.SetTooltip("orbital display server")

	statusItem := systray.AddMenuItem("connecting...", "server status")
	statusItem.Disable()
	systray.AddSeparator()
	shortcutsItem := systray.AddMenuItem("Toggle shortcuts overlay", "show/hide the Super-key shortcuts help")
	quitItem := systray.AddMenuItem("Quit", "quit orbitaltray")

	ticker := time.NewTicker(2 * time.Second)
	go func() {
		for {
			select {
			case <-ticker.C:
				statusItem.SetTitle(statusLabel())
			case <-shortcutsItem.ClickedCh:
				toggleShortcuts()
			case <-quitItem.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func onExit() {}

func statusLabel() string {
	conn, err := scheme.Dial(*socketPath)
	if err != nil {
		return "orbitald unreachable"
	}
	defer conn.Close()
	if err := conn.WriteMessage([]byte{'L'}); err != nil {
		return "orbitald unreachable"
	}
	resp, err := conn.ReadMessage()
	if err != nil || len(resp) == 0 || resp[0] != 0 {
		return "orbitald unreachable"
	}
	count := countLines(resp[1:])
	return fmt.Sprintf("%d window(s) open", count)
}

func toggleShortcuts() {
	conn, err := scheme.Dial(*socketPath)
	if err != nil {
		return
	}
	defer conn.Close()
	_ = conn.WriteMessage([]byte{'X'})
	_, _ = conn.ReadMessage()
}

func countLines(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}
