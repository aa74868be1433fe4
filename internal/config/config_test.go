package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R())
	assert.Equal(t, uint8(0x80), c.G())
	assert.Equal(t, uint8(0x00), c.B())
}

func TestParseHexColorRejectsMalformed(t *testing.T) {
	_, err := parseHexColor("ff8000")
	assert.Error(t, err)
	_, err = parseHexColor("#ff80")
	assert.Error(t, err)
}

func TestLoadFPSOverlayDefaultsOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbital.yaml")
	require.NoError(t, os.WriteFile(path, []byte("socket_path: /tmp/orbital.sock\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.FPSOverlay)
}

func TestLoadFPSOverlayEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbital.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps_overlay: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.FPSOverlay)
}
