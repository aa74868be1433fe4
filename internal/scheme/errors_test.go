package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfMatchesEachSentinel(t *testing.T) {
	assert.Equal(t, KindBadDescriptor, KindOf(ErrBadDescriptor("ctx")))
	assert.Equal(t, KindInvalidArgument, KindOf(ErrInvalidArgument("ctx")))
	assert.Equal(t, KindCanceled, KindOf(ErrCanceled("ctx")))
	assert.Equal(t, KindNone, KindOf(nil))
}
