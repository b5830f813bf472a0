package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(16)
	require.Equal(0, bb.Len())
	require.Equal(16, bb.Cap())

	bb.SetLength(8)
	require.Equal(8, bb.Len())
	copy(bb.B, []byte("citysave"))

	bb.Grow(64)
	require.GreaterOrEqual(bb.Cap(), 64)
	require.Equal([]byte("citysave"), bb.Bytes())

	bb.Reset()
	require.Equal(0, bb.Len())
	require.Panics(func() { bb.SetLength(bb.Cap() + 1) })
}

func TestScratchPool(t *testing.T) {
	bb := GetScratch()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), ScratchBufferSize)
	bb.SetLength(10)
	PutScratch(bb)

	again := GetScratch()
	require.Equal(t, 0, again.Len())
	PutScratch(again)
}

func TestPoolDropsOversized(t *testing.T) {
	p := NewByteBufferPool(4, 8)
	big := NewByteBuffer(32)
	p.Put(big)
	p.Put(nil)

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 8)
}
