package demo

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteInt32(t *testing.T) {
	p := NewProvider()
	p.AddInt32Column(0, []int32{1, -2, 3})

	var buf bytes.Buffer
	require.NoError(t, p.WriteInt32(&buf, 0))
	require.Equal(t, 12, buf.Len())
	require.Equal(t, int32(1), int32(binary.LittleEndian.Uint32(buf.Bytes()[0:4])))
	require.Equal(t, int32(-2), int32(binary.LittleEndian.Uint32(buf.Bytes()[4:8])))
}

func TestWriteBooleanPacksLSBFirst(t *testing.T) {
	p := NewProvider()
	p.AddBooleanColumn(0, []bool{true, false, true, false, false, false, false, false, true})

	var buf bytes.Buffer
	require.NoError(t, p.WriteBoolean(&buf, 0))
	require.Equal(t, []byte{0x05, 0x01}, buf.Bytes())
}

func TestByteArrayPlainSizeAndLayout(t *testing.T) {
	p := NewProvider()
	p.AddByteArrayColumn(0, []string{"ab", "c"}, false)

	require.Equal(t, uint32(4+2+4+1), p.SizeByteArray(0))

	var buf bytes.Buffer
	require.NoError(t, p.WriteByteArray(&buf, 0))
	require.Equal(t, int(p.SizeByteArray(0)), buf.Len())
}

func TestDictionaryDeduplicatesInFirstSeenOrder(t *testing.T) {
	p := NewProvider()
	p.AddByteArrayColumn(0, []string{"a", "b", "a", "b"}, true)

	require.Equal(t, uint32(2), p.NumValuesByteArrayDictionary(0))

	var dict bytes.Buffer
	require.NoError(t, p.WriteByteArrayDictionary(&dict, 0))
	require.Equal(t, int(p.SizeByteArrayDictionary(0)), dict.Len())

	var idx bytes.Buffer
	require.NoError(t, p.WriteDictionaryIndices(&idx, 0))
	want := []int32{0, 1, 0, 1}
	require.Equal(t, 4*len(want), idx.Len())
	for i, w := range want {
		got := int32(binary.LittleEndian.Uint32(idx.Bytes()[i*4 : i*4+4]))
		require.Equal(t, w, got)
	}
}
