package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderAddFocusesFrontWindows(t *testing.T) {
	o := NewOrder()
	o.Add(1, Normal)
	o.Add(2, Normal)
	id, ok := o.Focused()
	assert.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestOrderAddBackNeverFocuses(t *testing.T) {
	o := NewOrder()
	o.Add(1, Normal)
	o.Add(2, Back)
	id, _ := o.Focused()
	assert.Equal(t, 1, id)
}

func TestOrderRezbufferSortsByPlane(t *testing.T) {
	o := NewOrder()
	planes := map[int]ZOrder{1: Back, 2: Normal, 3: Front}
	o.Add(1, Back)
	o.Add(2, Normal)
	o.Add(3, Front)
	o.Rezbuffer(func(id int) ZOrder { return planes[id] })

	frontToBack := o.IterFrontToBack()
	assert.Equal(t, []int{3, 2, 1}, frontToBack)
}

func TestOrderMakeFocused(t *testing.T) {
	o := NewOrder()
	o.Add(1, Normal)
	o.Add(2, Normal)
	o.Add(3, Normal)
	o.MakeFocused(1)
	id, _ := o.Focused()
	assert.Equal(t, 1, id)
}

func TestOrderRemove(t *testing.T) {
	o := NewOrder()
	o.Add(1, Normal)
	o.Add(2, Normal)
	o.Remove(2)
	assert.Equal(t, []int{1}, o.FocusOrder())
}
