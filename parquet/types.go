// Package parquet holds the Thrift Compact Protocol struct definitions used
// by the Apache Parquet file format footer and page headers: SchemaElement,
// PageHeader, ColumnMetaData, RowGroup and friends. The field numbers and
// enum values mirror parquet-format's parquet.thrift; encoding itself is
// delegated to github.com/apache/thrift's TCompactProtocol so this package
// only has to describe field layout, not the wire format.
package parquet

// Type is the physical storage type of a column.
type Type int32

const (
	Type_BOOLEAN              Type = 0
	Type_INT32                Type = 1
	Type_INT64                Type = 2
	Type_INT96                Type = 3
	Type_FLOAT                Type = 4
	Type_DOUBLE               Type = 5
	Type_BYTE_ARRAY            Type = 6
	Type_FIXED_LEN_BYTE_ARRAY Type = 7
)

// ConvertedType is the legacy logical-type annotation carried alongside a
// SchemaElement's physical Type.
type ConvertedType int32

const (
	ConvertedType_UTF8    ConvertedType = 0
	ConvertedType_INT_32 ConvertedType = 17
)

// FieldRepetitionType states whether a schema leaf is required, optional or
// repeated. This core only ever emits REQUIRED.
type FieldRepetitionType int32

const (
	FieldRepetitionType_REQUIRED FieldRepetitionType = 0
	FieldRepetitionType_OPTIONAL FieldRepetitionType = 1
	FieldRepetitionType_REPEATED FieldRepetitionType = 2
)

// Encoding identifies how a page's values are laid out on disk.
type Encoding int32

const (
	Encoding_PLAIN           Encoding = 0
	Encoding_RLE             Encoding = 3
	Encoding_RLE_DICTIONARY Encoding = 8
)

// CompressionCodec identifies the compressor applied to a page's payload.
type CompressionCodec int32

const (
	CompressionCodec_UNCOMPRESSED CompressionCodec = 0
	CompressionCodec_SNAPPY       CompressionCodec = 1
)

// PageType distinguishes dictionary pages from data pages.
type PageType int32

const (
	PageType_DATA_PAGE       PageType = 0
	PageType_DICTIONARY_PAGE PageType = 2
)
