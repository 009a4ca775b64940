package miniparquet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nanoparquet/miniparquet/demo"
	"github.com/nanoparquet/miniparquet/parquet"
	"github.com/stretchr/testify/require"
)

func TestColumnWriterPlainUncompressedBoolean(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddBooleanColumn(0, []bool{true, false, true, true, false, false, false, false, true})

	var out bytes.Buffer
	w := newWritePos(&out)
	cw := newColumnWriter(parquet.CompressionCodec_UNCOMPRESSED, newThriftCodec())
	cmd := &parquet.ColumnMetaData{}

	require.NoError(t, cw.writeColumn(w, 0, 9, parquet.Type_BOOLEAN, cmd, false, provider))
	require.EqualValues(t, 9, cmd.NumValues)
	require.True(t, cmd.TotalUncompressedSize > 0)
	require.Equal(t, cmd.TotalUncompressedSize, cmd.TotalCompressedSize)
	require.EqualValues(t, out.Len(), cmd.TotalUncompressedSize)
}

func TestColumnWriterPlainCompressedSnappy(t *testing.T) {
	provider := demo.NewProvider()
	values := make([]int32, 200)
	for i := range values {
		values[i] = 42 // highly compressible
	}
	provider.AddInt32Column(0, values)

	var out bytes.Buffer
	w := newWritePos(&out)
	cw := newColumnWriter(parquet.CompressionCodec_SNAPPY, newThriftCodec())
	cmd := &parquet.ColumnMetaData{}

	require.NoError(t, cw.writeColumn(w, 0, 200, parquet.Type_INT32, cmd, false, provider))
	require.EqualValues(t, 800, cmd.TotalUncompressedSize)
	require.True(t, cmd.TotalCompressedSize > 0)
	require.True(t, cmd.TotalCompressedSize < cmd.TotalUncompressedSize, "repeated values should compress well")
}

func TestColumnWriterDictionaryUncompressedOnlyByteArray(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddInt32Column(0, []int32{1})

	var out bytes.Buffer
	w := newWritePos(&out)
	cw := newColumnWriter(parquet.CompressionCodec_UNCOMPRESSED, newThriftCodec())
	cmd := &parquet.ColumnMetaData{}

	err := cw.writeColumn(w, 0, 1, parquet.Type_INT32, cmd, true, provider)
	require.True(t, errors.Is(err, ErrUnsupportedPhysicalType))
}

func TestColumnWriterDictionaryAndCompressionRejected(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddByteArrayColumn(0, []string{"a", "b"}, true)

	var out bytes.Buffer
	w := newWritePos(&out)
	cw := newColumnWriter(parquet.CompressionCodec_SNAPPY, newThriftCodec())
	cmd := &parquet.ColumnMetaData{}

	err := cw.writeColumn(w, 0, 2, parquet.Type_BYTE_ARRAY, cmd, true, provider)
	require.True(t, errors.Is(err, ErrUnsupportedCompression))
}

func TestColumnWriterDictionaryUncompressedOffsetsOrdering(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddByteArrayColumn(0, []string{"x", "y", "x", "y", "x"}, true)

	var out bytes.Buffer
	w := newWritePos(&out)
	cw := newColumnWriter(parquet.CompressionCodec_UNCOMPRESSED, newThriftCodec())
	cmd := &parquet.ColumnMetaData{}

	require.NoError(t, cw.writeColumn(w, 0, 5, parquet.Type_BYTE_ARRAY, cmd, true, provider))
	require.NotNil(t, cmd.DictionaryPageOffset)
	require.True(t, *cmd.DictionaryPageOffset < cmd.DataPageOffset)
	require.EqualValues(t, 5, cmd.NumValues)
	require.Equal(t, cmd.TotalUncompressedSize, cmd.TotalCompressedSize)
}

func TestPlainSizeUnsupportedType(t *testing.T) {
	_, err := plainSize(parquet.Type_INT64, 1, 0, demo.NewProvider())
	require.True(t, errors.Is(err, ErrUnsupportedPhysicalType))
}
