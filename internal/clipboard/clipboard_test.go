package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBridge struct {
	written string
	toHost  string
	hasNew  bool
}

func (f *fakeBridge) Write(data string) { f.written = data }
func (f *fakeBridge) Read() (string, bool) {
	if !f.hasNew {
		return "", false
	}
	f.hasNew = false
	return f.toHost, true
}

func TestWriteResetsSeekForAllWindows(t *testing.T) {
	b := New(nil)
	b.Write(1, "hello")
	assert.Equal(t, "hello", b.Read(1))
	assert.Equal(t, "", b.Read(1))

	b.Write(1, "world")
	assert.Equal(t, "world", b.Read(2))
	assert.Equal(t, "world", b.Read(1))
}

func TestReadAdvancesPerWindowSeekIndependently(t *testing.T) {
	b := New(nil)
	b.Write(1, "abcdef")
	assert.Equal(t, "abcdef", b.Read(1))
	assert.Equal(t, "abcdef", b.Read(2))
	assert.Equal(t, "", b.Read(1))
}

func TestForgetDropsSeekEntry(t *testing.T) {
	b := New(nil)
	b.Write(1, "data")
	b.Read(1)
	b.Forget(1)
	assert.Equal(t, "data", b.Read(1))
}

func TestWriteMirrorsToHostBridge(t *testing.T) {
	bridge := &fakeBridge{}
	b := New(bridge)
	b.Write(1, "clip text")
	assert.Equal(t, "clip text", bridge.written)
}

func TestPullFromHostUpdatesOnChange(t *testing.T) {
	bridge := &fakeBridge{hasNew: true, toHost: "from host"}
	b := New(bridge)
	changed := b.PullFromHost()
	assert.True(t, changed)
	assert.Equal(t, "from host", b.Read(1))
}

func TestPullFromHostNoOpWithoutBridge(t *testing.T) {
	b := New(nil)
	assert.False(t, b.PullFromHost())
}
