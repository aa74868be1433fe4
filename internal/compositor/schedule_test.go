package compositor

import (
	"testing"

	"github.com/redox-os/orbital/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestScheduleMergesAdjacent(t *testing.T) {
	var dirty []geom.Rect
	dirty = Schedule(dirty, geom.New(0, 0, 10, 10))
	dirty = Schedule(dirty, geom.New(10, 0, 10, 10))
	assert.Len(t, dirty, 1)
	assert.Equal(t, geom.New(0, 0, 20, 10), dirty[0])
}

func TestScheduleAppendsWhenWasteful(t *testing.T) {
	var dirty []geom.Rect
	dirty = Schedule(dirty, geom.New(0, 0, 10, 10))
	dirty = Schedule(dirty, geom.New(1000, 1000, 10, 10))
	assert.Len(t, dirty, 2)
}

func TestScheduleIgnoresEmpty(t *testing.T) {
	var dirty []geom.Rect
	dirty = Schedule(dirty, geom.Rect{})
	assert.Len(t, dirty, 0)
}
