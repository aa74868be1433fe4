package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keybind.lua")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRejectsScriptWithoutHandler(t *testing.T) {
	path := writeScript(t, "x = 1")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestHandleUnboundSuperKeyCallsIntoLua(t *testing.T) {
	path := writeScript(t, `
last_code = nil
last_window = nil
function on_unbound_super_key(code, window_id)
  last_code = code
  last_window = window_id
end
`)
	hook, err := Load(path)
	require.NoError(t, err)
	defer hook.Close()

	require.NoError(t, hook.HandleUnboundSuperKey(42, 7))
	assert.Equal(t, lua.LNumber(42), hook.state.GetGlobal("last_code"))
	assert.Equal(t, lua.LNumber(7), hook.state.GetGlobal("last_window"))
}

func TestNilHookIsANoOp(t *testing.T) {
	var hook *Hook
	assert.NoError(t, hook.HandleUnboundSuperKey(1, 1))
	hook.Close() // must not panic
}
