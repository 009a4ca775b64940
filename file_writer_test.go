package miniparquet_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/nanoparquet/miniparquet"
	"github.com/nanoparquet/miniparquet/demo"
	"github.com/nanoparquet/miniparquet/parquet"
	"github.com/stretchr/testify/require"
)

func readFooter(t *testing.T, buf []byte) *parquet.FileMetaData {
	t.Helper()
	require.True(t, len(buf) > 12)
	require.Equal(t, "PAR1", string(buf[:4]))
	require.Equal(t, "PAR1", string(buf[len(buf)-4:]))

	footerLen := int(buf[len(buf)-8]) | int(buf[len(buf)-7])<<8 | int(buf[len(buf)-6])<<16 | int(buf[len(buf)-5])<<24
	footerStart := len(buf) - 8 - footerLen
	require.True(t, footerStart >= 4)

	tbuf := thrift.NewTMemoryBuffer()
	_, err := tbuf.Write(buf[footerStart : footerStart+footerLen])
	require.NoError(t, err)
	proto := thrift.NewTCompactProtocolFactory().GetProtocol(tbuf)

	meta := &parquet.FileMetaData{}
	require.NoError(t, meta.Read(proto))
	return meta
}

func TestFileWriterPlainUncompressedRoundTrip(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddInt32Column(0, []int32{10, 20, 30})
	provider.AddByteArrayColumn(1, []string{"a", "bb", "ccc"}, false)

	var out bytes.Buffer
	fw := miniparquet.NewFileWriter(&out, miniparquet.Uncompressed, provider)
	fw.SetNumRows(3)
	require.NoError(t, fw.AddColumn("ints", miniparquet.Int32))
	require.NoError(t, fw.AddColumn("strs", miniparquet.ByteArray))
	require.NoError(t, fw.Write())

	meta := readFooter(t, out.Bytes())
	require.EqualValues(t, 1, meta.Version)
	require.EqualValues(t, 3, meta.NumRows)
	require.Len(t, meta.Schema, 3) // root + 2 leaves
	require.EqualValues(t, 2, *meta.Schema[0].NumChildren)
	require.Len(t, meta.RowGroups, 1)

	rg := meta.RowGroups[0]
	require.Len(t, rg.Columns, 2)
	require.EqualValues(t, 3, rg.NumRows)

	col0 := rg.Columns[0].MetaData
	require.Equal(t, parquet.Type_INT32, col0.Type)
	require.EqualValues(t, 3, col0.NumValues)
	// The chunk is one page header plus 12 value bytes and ends where column
	// 1's data page begins.
	require.EqualValues(t, rg.Columns[1].MetaData.DataPageOffset-col0.DataPageOffset, col0.TotalUncompressedSize)
	require.Equal(t, col0.DataPageOffset, rg.Columns[0].FileOffset)
	require.Nil(t, col0.DictionaryPageOffset)

	col1 := rg.Columns[1].MetaData
	require.Equal(t, parquet.Type_BYTE_ARRAY, col1.Type)
	require.EqualValues(t, 3, col1.NumValues)
}

func TestFileWriterSnappyCompressedRoundTrip(t *testing.T) {
	provider := demo.NewProvider()
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	provider.AddDoubleColumn(0, values)

	var out bytes.Buffer
	fw := miniparquet.NewFileWriter(&out, miniparquet.Snappy, provider)
	fw.SetNumRows(100)
	require.NoError(t, fw.AddColumn("doubles", miniparquet.Double))
	require.NoError(t, fw.Write())

	meta := readFooter(t, out.Bytes())
	col := meta.RowGroups[0].Columns[0].MetaData
	require.Equal(t, parquet.CompressionCodec_SNAPPY, col.Codec)
	require.EqualValues(t, 800, col.TotalUncompressedSize)
	require.True(t, col.TotalCompressedSize > 0)
}

func TestFileWriterDictionaryEncodedByteArray(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddByteArrayColumn(0, []string{"a", "b", "a", "b"}, true)

	var out bytes.Buffer
	fw := miniparquet.NewFileWriter(&out, miniparquet.Uncompressed, provider)
	fw.SetNumRows(4)
	require.NoError(t, fw.AddLogicalColumn("strs", miniparquet.StringLogicalType(), true))
	require.NoError(t, fw.Write())

	meta := readFooter(t, out.Bytes())
	col := meta.RowGroups[0].Columns[0].MetaData
	require.NotNil(t, col.DictionaryPageOffset)
	require.Contains(t, col.Encodings, parquet.Encoding_RLE_DICTIONARY)
	require.NotNil(t, meta.Schema[1].ConvertedType)
	require.Equal(t, parquet.ConvertedType_UTF8, *meta.Schema[1].ConvertedType)
}

func TestFileWriterRejectsMissingRowCount(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddInt32Column(0, []int32{1})

	var out bytes.Buffer
	fw := miniparquet.NewFileWriter(&out, miniparquet.Uncompressed, provider)
	require.NoError(t, fw.AddColumn("ints", miniparquet.Int32))
	err := fw.Write()
	require.True(t, errors.Is(err, miniparquet.ErrMissingRowCount))
}

func TestFileWriterRejectsDictionaryPlusCompression(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddByteArrayColumn(0, []string{"a", "b"}, true)

	var out bytes.Buffer
	fw := miniparquet.NewFileWriter(&out, miniparquet.Snappy, provider)
	fw.SetNumRows(2)
	require.NoError(t, fw.AddLogicalColumn("strs", miniparquet.StringLogicalType(), true))
	err := fw.Write()
	require.True(t, errors.Is(err, miniparquet.ErrUnsupportedCompression))
}

func TestFileWriterKeyValueMetadataOrderPreserved(t *testing.T) {
	provider := demo.NewProvider()
	provider.AddInt32Column(0, []int32{1})

	var out bytes.Buffer
	fw := miniparquet.NewFileWriter(&out, miniparquet.Uncompressed, provider)
	fw.SetNumRows(1)
	require.NoError(t, fw.AddColumn("ints", miniparquet.Int32))
	fw.AddKeyValueMetadata("a", "1")
	fw.AddKeyValueMetadata("b", "2")
	require.NoError(t, fw.Write())

	meta := readFooter(t, out.Bytes())
	require.Len(t, meta.KeyValueMetadata, 2)
	require.Equal(t, "a", meta.KeyValueMetadata[0].Key)
	require.Equal(t, "b", meta.KeyValueMetadata[1].Key)
}
