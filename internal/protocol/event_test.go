package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshalBinaryIsLittleEndian(t *testing.T) {
	e := Event{Code: KindKey, A: 1, B: 0x0100, C: -1}
	buf, err := e.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, EventSize)

	assert.Equal(t, byte(KindKey), buf[0])
	assert.Equal(t, byte(1), buf[8])
	assert.Equal(t, byte(0x00), buf[16])
	assert.Equal(t, byte(0x01), buf[17])
	assert.Equal(t, byte(0xff), buf[24]) // -1 as two's complement, low byte
}

func TestEventUnmarshalBinaryRejectsShortBuffer(t *testing.T) {
	var e Event
	err := e.UnmarshalBinary(make([]byte, EventSize-1))
	assert.Error(t, err)
}

func TestSyncRectMarshalBinary(t *testing.T) {
	s := SyncRect{X: 1, Y: 2, W: 3, H: 4}
	buf, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, SyncRectSize)
	assert.Equal(t, byte(1), buf[0])
	assert.Equal(t, byte(2), buf[4])
	assert.Equal(t, byte(3), buf[8])
	assert.Equal(t, byte(4), buf[12])
}
