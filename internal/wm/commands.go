package wm

import (
	"strconv"
	"strings"

	"github.com/redox-os/orbital/internal/scheme"
	"github.com/redox-os/orbital/internal/window"
)

// applyWriteCommand dispatches one write(2) command string to w, per the
// wire grammar:
//
//	T,<title>        retitle
//	S,<w>,<h>        resize the client framebuffer
//	P,<x>,<y>        move (absolute, desktop space)
//	F,<chars>,<0|1>  set each flag char in chars (§4.E: a,l,r,t,u,m)
//	M,<sub>          mouse/cursor sub-commands: C,<0|1> cursor-visible, R,<0|1> relative, G,<0|1> grab
func applyWriteCommand(w *window.Window, cmd string, m *Manager) error {
	parts := strings.SplitN(cmd, ",", 2)
	if len(parts) == 0 {
		return scheme.ErrInvalidArgument("wm: empty write command")
	}
	switch parts[0] {
	case "T":
		title := ""
		if len(parts) == 2 {
			title = parts[1]
		}
		w.Retitle(title)
		m.damageWindow(w)
	case "S":
		width, height, ok := scheme.ParseResizeCommand(cmd)
		if !ok {
			return scheme.ErrInvalidArgument("wm: malformed resize command")
		}
		w.Resize(width, height)
		if m.drag.Active && m.drag.WindowID == w.ID {
			m.drag.onResize(w)
		}
		w.PushEvent(screenEvent(width, height))
		m.damageWindow(w)
	case "P":
		x, y, ok := parseXY(parts)
		if !ok {
			return scheme.ErrInvalidArgument("wm: malformed move command")
		}
		w.X, w.Y = x, y
		m.damageWindow(w)
	case "F":
		return applyFlagCommand(w, parts, m)
	case "M":
		return applyMouseCommand(w, parts)
	default:
		return scheme.ErrInvalidArgument("wm: unknown write command " + parts[0])
	}
	return nil
}

func parseXY(parts []string) (int, int, bool) {
	if len(parts) != 2 {
		return 0, 0, false
	}
	xy := strings.SplitN(parts[1], ",", 2)
	if len(xy) != 2 {
		return 0, 0, false
	}
	x, err1 := strconv.Atoi(xy[0])
	y, err2 := strconv.Atoi(xy[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return x, y, true
}

// applyFlagCommand sets every flag letter in fv[0] to fv[1] in one call
// (§4.E set_flag): a=Async l=Borderless r=Resizable t=Transparent
// u=Unclosable m=Maximized.
func applyFlagCommand(w *window.Window, parts []string, m *Manager) error {
	if len(parts) != 2 {
		return scheme.ErrInvalidArgument("wm: malformed flag command")
	}
	fv := strings.SplitN(parts[1], ",", 2)
	if len(fv) != 2 {
		return scheme.ErrInvalidArgument("wm: malformed flag command")
	}
	on := fv[1] == "1"
	for _, r := range fv[0] {
		switch r {
		case 'a':
			w.SetFlag(window.FlagAsync, on)
		case 'l':
			w.SetFlag(window.FlagBorderless, on)
			m.damageWindow(w)
		case 'r':
			w.SetFlag(window.FlagResizable, on)
		case 't':
			w.SetFlag(window.FlagTransparent, on)
			m.damageWindow(w)
		case 'u':
			w.SetFlag(window.FlagUnclosable, on)
		case 'm':
			w.SetFlag(window.FlagMaximized, on)
			m.damageWindow(w)
		default:
			return scheme.ErrInvalidArgument("wm: unknown flag " + string(r))
		}
	}
	return nil
}

func applyMouseCommand(w *window.Window, parts []string) error {
	if len(parts) != 2 {
		return scheme.ErrInvalidArgument("wm: malformed mouse command")
	}
	sub := strings.SplitN(parts[1], ",", 2)
	if len(sub) != 2 {
		return scheme.ErrInvalidArgument("wm: malformed mouse command")
	}
	on := sub[1] == "1"
	switch sub[0] {
	case "C":
		w.MouseCursor = on
	case "R":
		w.MouseRelative = on
	case "G":
		w.MouseGrab = on
	default:
		return scheme.ErrInvalidArgument("wm: unknown mouse sub-command " + sub[0])
	}
	return nil
}
