package miniparquet

import (
	"encoding/binary"
	"io"

	"github.com/golang/snappy"
	"github.com/nanoparquet/miniparquet/parquet"
	"github.com/nanoparquet/miniparquet/rle"
	"github.com/pkg/errors"
)

// columnWriter drives the four code paths selected by (dictionary?,
// compressed?), staging data through two reusable byte buffers that it owns
// and reuses across columns.
type columnWriter struct {
	codec  parquet.CompressionCodec
	thrift *thriftCodec
	bufUnc *byteBuffer
	bufCom *byteBuffer
}

func newColumnWriter(codec parquet.CompressionCodec, thrift *thriftCodec) *columnWriter {
	return &columnWriter{
		codec:  codec,
		thrift: thrift,
		bufUnc: newByteBuffer(),
		bufCom: newByteBuffer(),
	}
}

// writeColumn writes column idx's pages to w and fills in cmd's deferred
// fields (num_values, sizes, offsets). dict selects RLE_DICTIONARY vs
// PLAIN.
func (cw *columnWriter) writeColumn(w *writePos, idx int, numRows uint32, typ parquet.Type, cmd *parquet.ColumnMetaData, dict bool, src ColumnSource) error {
	switch {
	case !dict && cw.codec == parquet.CompressionCodec_UNCOMPRESSED:
		return cw.writePlainUncompressed(w, idx, numRows, typ, cmd, src)
	case !dict && cw.codec == parquet.CompressionCodec_SNAPPY:
		return cw.writePlainCompressed(w, idx, numRows, typ, cmd, src)
	case dict && cw.codec == parquet.CompressionCodec_UNCOMPRESSED:
		return cw.writeDictionaryUncompressed(w, idx, numRows, typ, cmd, src)
	case cw.codec != parquet.CompressionCodec_UNCOMPRESSED && cw.codec != parquet.CompressionCodec_SNAPPY:
		return wrapColumn(errors.Wrapf(ErrUnsupportedCompression, "codec %v", cw.codec), idx, "dispatch")
	default:
		return wrapColumn(errors.Wrap(ErrUnsupportedCompression, "dictionary encoding with compression is not implemented"), idx, "dispatch")
	}
}

func plainSize(typ parquet.Type, numRows uint32, idx int, src ColumnSource) (uint32, error) {
	switch typ {
	case parquet.Type_BOOLEAN:
		size := numRows / 8
		if numRows%8 > 0 {
			size++
		}
		return size, nil
	case parquet.Type_INT32:
		return numRows * 4, nil
	case parquet.Type_DOUBLE:
		return numRows * 8, nil
	case parquet.Type_BYTE_ARRAY:
		return src.SizeByteArray(idx), nil
	default:
		return 0, wrapColumn(errors.Wrapf(ErrUnsupportedPhysicalType, "type %v", typ), idx, "plain size")
	}
}

func writeTypedValue(w io.Writer, typ parquet.Type, idx int, src ColumnSource) error {
	switch typ {
	case parquet.Type_INT32:
		return src.WriteInt32(w, idx)
	case parquet.Type_DOUBLE:
		return src.WriteDouble(w, idx)
	case parquet.Type_BYTE_ARRAY:
		return src.WriteByteArray(w, idx)
	case parquet.Type_BOOLEAN:
		return src.WriteBoolean(w, idx)
	default:
		return errors.Wrapf(ErrUnsupportedPhysicalType, "type %v", typ)
	}
}

func (cw *columnWriter) writeHeader(w *writePos, ph *parquet.PageHeader) error {
	b, err := cw.thrift.encode(ph)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// writePlainUncompressed writes a single DATA_PAGE, PLAIN encoding, values
// written straight to the file.
func (cw *columnWriter) writePlainUncompressed(w *writePos, idx int, numRows uint32, typ parquet.Type, cmd *parquet.ColumnMetaData, src ColumnSource) error {
	colStart := w.Pos()
	dataSize, err := plainSize(typ, numRows, idx, src)
	if err != nil {
		return err
	}

	dataOffset := w.Pos()
	ph := &parquet.PageHeader{
		Type:                 parquet.PageType_DATA_PAGE,
		UncompressedPageSize: int32(dataSize),
		CompressedPageSize:   int32(dataSize),
		DataPageHeader: &parquet.DataPageHeader{
			NumValues: int32(numRows),
			Encoding:  parquet.Encoding_PLAIN,
		},
	}
	if err := cw.writeHeader(w, ph); err != nil {
		return wrapColumn(err, idx, "write page header")
	}

	cbStart := w.Pos()
	if err := writeTypedValue(w, typ, idx, src); err != nil {
		return wrapColumn(err, idx, "write values")
	}
	written := w.Pos() - cbStart
	if written != int64(dataSize) {
		return wrapColumn(errors.Wrapf(ErrSizeMismatch, "declared %d bytes, wrote %d", dataSize, written), idx, "plain uncompressed")
	}

	chunkBytes := w.Pos() - colStart
	cmd.NumValues = int64(numRows)
	cmd.TotalUncompressedSize = chunkBytes
	cmd.TotalCompressedSize = chunkBytes
	cmd.DataPageOffset = dataOffset
	return nil
}

// writePlainCompressed stages values uncompressed, then Snappy-compresses
// them into a second buffer before writing.
func (cw *columnWriter) writePlainCompressed(w *writePos, idx int, numRows uint32, typ parquet.Type, cmd *parquet.ColumnMetaData, src ColumnSource) error {
	colStart := w.Pos()
	dataSize, err := plainSize(typ, numRows, idx, src)
	if err != nil {
		return err
	}

	cw.bufUnc.Resize(int(dataSize))
	cw.bufUnc.Reset()
	if err := writeTypedValue(cw.bufUnc, typ, idx, src); err != nil {
		return wrapColumn(err, idx, "stage values")
	}
	if uint32(cw.bufUnc.Len()) != dataSize {
		return wrapColumn(errors.Wrapf(ErrSizeMismatch, "declared %d bytes, wrote %d", dataSize, cw.bufUnc.Len()), idx, "plain compressed staging")
	}

	maxLen := snappy.MaxEncodedLen(int(dataSize))
	cw.bufCom.Resize(maxLen)
	compressed := snappy.Encode(cw.bufCom.Raw()[:maxLen], cw.bufUnc.Bytes())
	cw.bufCom.SetLen(len(compressed))

	dataOffset := w.Pos()
	ph := &parquet.PageHeader{
		Type:                 parquet.PageType_DATA_PAGE,
		UncompressedPageSize: int32(dataSize),
		CompressedPageSize:   int32(len(compressed)),
		DataPageHeader: &parquet.DataPageHeader{
			NumValues: int32(numRows),
			Encoding:  parquet.Encoding_PLAIN,
		},
	}
	if err := cw.writeHeader(w, ph); err != nil {
		return wrapColumn(err, idx, "write page header")
	}

	if _, err := w.Write(cw.bufCom.Bytes()); err != nil {
		return wrapColumn(err, idx, "write compressed payload")
	}

	cmd.NumValues = int64(numRows)
	cmd.TotalUncompressedSize = int64(dataSize)
	cmd.TotalCompressedSize = w.Pos() - colStart
	cmd.DataPageOffset = dataOffset
	return nil
}

// writeDictionaryUncompressed writes a DICTIONARY_PAGE followed by a
// DATA_PAGE of RLE/bit-packed indices.
func (cw *columnWriter) writeDictionaryUncompressed(w *writePos, idx int, numRows uint32, typ parquet.Type, cmd *parquet.ColumnMetaData, src ColumnSource) error {
	if typ != parquet.Type_BYTE_ARRAY {
		return wrapColumn(errors.Wrap(ErrUnsupportedPhysicalType, "dictionary encoding is only supported for BYTE_ARRAY columns"), idx, "dictionary dispatch")
	}
	dsrc, ok := src.(DictionarySource)
	if !ok || !dsrc.HasByteArrayDictionary() {
		return wrapColumn(errors.Wrap(ErrUnsupportedPhysicalType, "value provider does not supply a dictionary"), idx, "dictionary dispatch")
	}

	colStart := w.Pos()

	dictionaryPageOffset := w.Pos()
	dictSize := dsrc.SizeByteArrayDictionary(idx)
	numDictValues := dsrc.NumValuesByteArrayDictionary(idx)

	ph0 := &parquet.PageHeader{
		Type:                 parquet.PageType_DICTIONARY_PAGE,
		UncompressedPageSize: int32(dictSize),
		CompressedPageSize:   int32(dictSize),
		DictionaryPageHeader: &parquet.DictionaryPageHeader{
			NumValues: int32(numDictValues),
			Encoding:  parquet.Encoding_PLAIN,
		},
	}
	if err := cw.writeHeader(w, ph0); err != nil {
		return wrapColumn(err, idx, "write dictionary page header")
	}

	cbStart := w.Pos()
	if err := dsrc.WriteByteArrayDictionary(w, idx); err != nil {
		return wrapColumn(err, idx, "write dictionary values")
	}
	if written := w.Pos() - cbStart; written != int64(dictSize) {
		return wrapColumn(errors.Wrapf(ErrSizeMismatch, "declared %d bytes, wrote %d", dictSize, written), idx, "dictionary page")
	}

	dataOffset := w.Pos()
	idxSize := int(numRows) * 4 // indices are staged as 4 bytes/row regardless of final bit width
	cw.bufUnc.Resize(idxSize)
	cw.bufUnc.Reset()
	if err := dsrc.WriteDictionaryIndices(cw.bufUnc, idx); err != nil {
		return wrapColumn(err, idx, "stage dictionary indices")
	}
	if cw.bufUnc.Len() != idxSize {
		return wrapColumn(errors.Wrapf(ErrSizeMismatch, "declared %d bytes, wrote %d", idxSize, cw.bufUnc.Len()), idx, "dictionary index staging")
	}

	indices := make([]int32, numRows)
	raw := cw.bufUnc.Bytes()
	for i := range indices {
		indices[i] = int32(binary.LittleEndian.Uint32(raw[i*4 : i*4+4]))
	}

	bitWidth := rle.BitWidth(numDictValues)
	maxLen := rle.MaxEncodedLen(int(numRows), bitWidth)
	cw.bufCom.Resize(maxLen)
	encodedLen, err := rle.Encode(indices, int(numRows), bitWidth, cw.bufCom.Raw()[:maxLen])
	if err != nil {
		return wrapColumn(err, idx, "RLE encode indices")
	}
	cw.bufCom.SetLen(encodedLen)

	// +1 accounts for the leading bit-width byte.
	ph := &parquet.PageHeader{
		Type:                 parquet.PageType_DATA_PAGE,
		UncompressedPageSize: int32(encodedLen + 1),
		CompressedPageSize:   int32(encodedLen + 1),
		DataPageHeader: &parquet.DataPageHeader{
			NumValues: int32(numRows),
			Encoding:  parquet.Encoding_RLE_DICTIONARY,
		},
	}
	if err := cw.writeHeader(w, ph); err != nil {
		return wrapColumn(err, idx, "write data page header")
	}

	if _, err := w.Write([]byte{bitWidth}); err != nil {
		return wrapColumn(err, idx, "write bit width")
	}
	if _, err := w.Write(cw.bufCom.Bytes()); err != nil {
		return wrapColumn(err, idx, "write RLE payload")
	}

	chunkBytes := w.Pos() - colStart
	cmd.NumValues = int64(numRows)
	cmd.TotalUncompressedSize = chunkBytes
	cmd.TotalCompressedSize = chunkBytes
	cmd.DataPageOffset = dataOffset
	cmd.DictionaryPageOffset = &dictionaryPageOffset
	return nil
}
