package miniparquet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWriteWithinCapacityDoesNotReallocate(t *testing.T) {
	b := newByteBuffer()
	b.Resize(16)
	before := &b.Raw()[0]

	n, err := b.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 16, cap(b.Raw()))
	require.True(t, before == &b.Raw()[0], "write within capacity must not reallocate")
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
}

func TestByteBufferResizeResetsLength(t *testing.T) {
	b := newByteBuffer()
	b.Resize(4)
	_, _ = b.Write([]byte{1, 2, 3, 4})
	require.Equal(t, 4, b.Len())

	b.Resize(8)
	require.Equal(t, 0, b.Len())
}

func TestByteBufferResetKeepsCapacity(t *testing.T) {
	b := newByteBuffer()
	b.Resize(4)
	_, _ = b.Write([]byte{1, 2, 3, 4})
	capBefore := cap(b.Raw())

	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, capBefore, cap(b.Raw()))
}

func TestByteBufferSetLenAfterDirectWrite(t *testing.T) {
	b := newByteBuffer()
	b.Resize(8)
	raw := b.Raw()
	copy(raw, []byte{9, 9, 9})
	b.SetLen(3)
	require.Equal(t, []byte{9, 9, 9}, b.Bytes())
}

func TestByteBufferWriteGrowsWhenNeeded(t *testing.T) {
	b := newByteBuffer()
	n, err := b.Write([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, b.Bytes())
}
