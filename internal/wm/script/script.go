// Package script loads a user-supplied Lua keybinding hook that services
// the "legacy" unbound Super-key fallback (§4.H): instead of hardcoding
// what an unrecognized Super-chord does, orbital calls into a small Lua
// script so a user can rebind it without recompiling the server.
package script

import (
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// Hook wraps one Lua state exposing an `on_unbound_super_key(code,
// window_id)` global function. A nil *Hook (returned alongside a non-nil
// error from Load, or simply never constructed) means "no script
// loaded"; callers should treat that as a no-op, not an error.
type Hook struct {
	state *lua.LState
}

// Load parses and runs path, which must define on_unbound_super_key.
func Load(path string) (*Hook, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, errors.Wrap(err, "script: run keybinding script")
	}
	fn := L.GetGlobal("on_unbound_super_key")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, errors.New("script: on_unbound_super_key not defined")
	}
	return &Hook{state: L}, nil
}

// HandleUnboundSuperKey implements wm.LegacyHandler.
func (h *Hook) HandleUnboundSuperKey(code int64, lowestWindowID int) error {
	if h == nil || h.state == nil {
		return nil
	}
	fn := h.state.GetGlobal("on_unbound_super_key")
	if fn.Type() != lua.LTFunction {
		return nil
	}
	if err := h.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(code), lua.LNumber(lowestWindowID)); err != nil {
		return errors.Wrap(err, "script: on_unbound_super_key")
	}
	return nil
}

func (h *Hook) Close() {
	if h != nil && h.state != nil {
		h.state.Close()
	}
}
