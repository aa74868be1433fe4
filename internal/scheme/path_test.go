package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redox-os/orbital/internal/window"
)

func TestParseOpenPathBasic(t *testing.T) {
	spec, err := ParseOpenPath("ar/10/20/300/400/hello")
	require.NoError(t, err)
	assert.Equal(t, 10, spec.X)
	assert.Equal(t, 20, spec.Y)
	assert.Equal(t, 300, spec.W)
	assert.Equal(t, 400, spec.H)
	assert.False(t, spec.AutoCenter)
	assert.True(t, spec.Flags&window.FlagAsync != 0)
	assert.True(t, spec.Flags&window.FlagResizable != 0)
	assert.Equal(t, "hello", spec.Title)
}

func TestParseOpenPathTitleMayContainSlashes(t *testing.T) {
	spec, err := ParseOpenPath("/10/20/300/400/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "a/b/c", spec.Title)
}

func TestParseOpenPathBothNegativeAutoCenters(t *testing.T) {
	spec, err := ParseOpenPath("/-1/-1/640/480/")
	require.NoError(t, err)
	assert.True(t, spec.AutoCenter)
}

func TestParseOpenPathEitherNegativeAutoCenters(t *testing.T) {
	spec, err := ParseOpenPath("/-1/5/640/480/")
	require.NoError(t, err)
	assert.True(t, spec.AutoCenter)

	spec, err = ParseOpenPath("/5/-1/640/480/")
	require.NoError(t, err)
	assert.True(t, spec.AutoCenter)
}

func TestParseOpenPathNoNegativeDoesNotAutoCenter(t *testing.T) {
	spec, err := ParseOpenPath("/5/5/640/480/")
	require.NoError(t, err)
	assert.False(t, spec.AutoCenter)
}

func TestParseOpenPathMissingSegmentsDefaultToZero(t *testing.T) {
	spec, err := ParseOpenPath("ar")
	require.NoError(t, err)
	assert.Equal(t, 0, spec.X)
	assert.Equal(t, 0, spec.Y)
	assert.Equal(t, 0, spec.W)
	assert.Equal(t, 0, spec.H)
	assert.Equal(t, "", spec.Title)
	assert.True(t, spec.Flags&window.FlagAsync != 0)
}

func TestParseOpenPathMalformedErrors(t *testing.T) {
	_, err := ParseOpenPath("")
	assert.Error(t, err)

	_, err = ParseOpenPath("/x/20/300/400/")
	assert.Error(t, err)
}

func TestFormatFpathRoundTrips(t *testing.T) {
	spec := OpenSpec{X: 1, Y: 2, W: 3, H: 4, Flags: window.FlagBorderless | window.FlagUnclosable, Title: "win"}
	path := FormatFpath(spec)

	reparsed, err := ParseOpenPath(path)
	require.NoError(t, err)
	assert.Equal(t, spec.X, reparsed.X)
	assert.Equal(t, spec.W, reparsed.W)
	assert.Equal(t, spec.Flags, reparsed.Flags)
	assert.Equal(t, spec.Title, reparsed.Title)
}
