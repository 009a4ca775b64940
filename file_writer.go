package miniparquet

import (
	"encoding/binary"
	"io"

	"github.com/nanoparquet/miniparquet/parquet"
)

var magic = []byte("PAR1")

// columnSpec is one schema_add_column call: a column name, its physical
// and converted type, whether it is dictionary-encoded, and the optional
// logical type annotation to emit on the SchemaElement.
type columnSpec struct {
	name        string
	typ         parquet.Type
	convertedTy *parquet.ConvertedType
	logicalTy   *parquet.LogicalType
	dict        bool
}

// FileWriter assembles a single-row-group Parquet file. It is single-use:
// configure it with SetNumRows/AddColumn/AddLogicalColumn/
// AddKeyValueMetadata, call Write once, then discard it. Further calls
// after Write are undefined.
type FileWriter struct {
	w     io.Writer
	src   ColumnSource
	codec parquet.CompressionCodec

	createdBy  string
	numRows    uint32
	numRowsSet bool
	columns    []columnSpec
	kv         []*parquet.KeyValue
}

// FileWriterOption configures a FileWriter at construction time.
type FileWriterOption func(fw *FileWriter)

// CreatedBy overrides the footer's created_by string.
func CreatedBy(createdBy string) FileWriterOption {
	return func(fw *FileWriter) {
		fw.createdBy = createdBy
	}
}

// NewFileWriter creates a writer that will emit one row group to w, reading
// column values from src as it encodes each column.
func NewFileWriter(w io.Writer, codec parquet.CompressionCodec, src ColumnSource, options ...FileWriterOption) *FileWriter {
	fw := &FileWriter{
		w:         w,
		src:       src,
		codec:     codec,
		createdBy: "miniparquet",
	}
	for _, opt := range options {
		opt(fw)
	}
	return fw
}

// SetNumRows fixes the row count for every column in this file. It must be
// called before Write.
func (fw *FileWriter) SetNumRows(n uint32) {
	fw.numRows = n
	fw.numRowsSet = true
}

// AddColumn appends a REQUIRED column with no logical type annotation and
// no dictionary encoding.
func (fw *FileWriter) AddColumn(name string, typ parquet.Type) error {
	fw.columns = append(fw.columns, columnSpec{name: name, typ: typ})
	return nil
}

// AddLogicalColumn appends a REQUIRED column described by a logical type,
// resolving it to a physical/converted type pair. dict requests
// RLE_DICTIONARY encoding; it is only valid for logical types that map to
// BYTE_ARRAY.
func (fw *FileWriter) AddLogicalColumn(name string, lt LogicalType, dict bool) error {
	physical, converted, logical, err := physicalAndConvertedType(lt)
	if err != nil {
		return wrapColumn(err, len(fw.columns), "schema")
	}
	if dict && physical != parquet.Type_BYTE_ARRAY {
		return wrapColumn(ErrUnsupportedPhysicalType, len(fw.columns), "schema")
	}
	fw.columns = append(fw.columns, columnSpec{
		name:        name,
		typ:         physical,
		convertedTy: &converted,
		logicalTy:   logical,
		dict:        dict,
	})
	return nil
}

// AddKeyValueMetadata appends one key/value pair to the footer's
// key_value_metadata list, in call order.
func (fw *FileWriter) AddKeyValueMetadata(key, value string) {
	v := value
	fw.kv = append(fw.kv, &parquet.KeyValue{Key: key, Value: &v})
}

func (fw *FileWriter) schemaElements() []*parquet.SchemaElement {
	numChildren := int32(len(fw.columns))
	root := &parquet.SchemaElement{NumChildren: &numChildren, Name: "schema"}
	elements := make([]*parquet.SchemaElement, 0, len(fw.columns)+1)
	elements = append(elements, root)
	required := parquet.FieldRepetitionType_REQUIRED
	for _, c := range fw.columns {
		typ := c.typ
		elements = append(elements, &parquet.SchemaElement{
			Type:           &typ,
			RepetitionType: &required,
			Name:           c.name,
			ConvertedType:  c.convertedTy,
			LogicalType:    c.logicalTy,
		})
	}
	return elements
}

func encodingsFor(dict bool) []parquet.Encoding {
	if dict {
		return []parquet.Encoding{parquet.Encoding_PLAIN, parquet.Encoding_RLE, parquet.Encoding_RLE_DICTIONARY}
	}
	return []parquet.Encoding{parquet.Encoding_PLAIN}
}

// Write executes the file writer's single-pass sequence: leading magic,
// one data page (and optional dictionary page) per column, the footer,
// footer length, and trailing magic. It is the only operation that
// produces output; call it exactly once.
func (fw *FileWriter) Write() error {
	if !fw.numRowsSet {
		return ErrMissingRowCount
	}

	w := newWritePos(fw.w)
	if _, err := w.Write(magic); err != nil {
		return err
	}

	thrift := newThriftCodec()
	cw := newColumnWriter(fw.codec, thrift)

	columnsStart := w.Pos()
	chunks := make([]*parquet.ColumnChunk, len(fw.columns))
	for i, c := range fw.columns {
		cmd := &parquet.ColumnMetaData{
			Type:         c.typ,
			Encodings:    encodingsFor(c.dict),
			PathInSchema: []string{c.name},
			Codec:        fw.codec,
		}
		if err := cw.writeColumn(w, i, fw.numRows, c.typ, cmd, c.dict, fw.src); err != nil {
			return err
		}
		chunks[i] = &parquet.ColumnChunk{
			FileOffset: cmd.DataPageOffset,
			MetaData:   cmd,
		}
	}
	totalSize := w.Pos() - columnsStart

	meta := &parquet.FileMetaData{
		Version: 1,
		Schema:  fw.schemaElements(),
		NumRows: int64(fw.numRows),
		RowGroups: []*parquet.RowGroup{
			{
				Columns:       chunks,
				TotalByteSize: totalSize,
				NumRows:       int64(fw.numRows),
			},
		},
		KeyValueMetadata: fw.kv,
		CreatedBy:        &fw.createdBy,
	}

	footerStart := w.Pos()
	footer, err := thrift.encode(meta)
	if err != nil {
		return err
	}
	if _, err := w.Write(footer); err != nil {
		return err
	}
	footerLen := uint32(w.Pos() - footerStart)

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], footerLen)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}

	_, err = w.Write(magic)
	return err
}
