package miniparquet

import (
	"github.com/nanoparquet/miniparquet/parquet"
	"github.com/pkg/errors"
)

// Re-export the physical types this core allows, so callers never need to
// import the parquet package directly for the common case.
const (
	Boolean   = parquet.Type_BOOLEAN
	Int32     = parquet.Type_INT32
	Double    = parquet.Type_DOUBLE
	ByteArray = parquet.Type_BYTE_ARRAY
)

// Compression codecs this core accepts.
const (
	Uncompressed = parquet.CompressionCodec_UNCOMPRESSED
	Snappy       = parquet.CompressionCodec_SNAPPY
)

// IntegerType describes the bitWidth/isSigned pair of an INTEGER logical
// type. Only {32, true} maps to anything; any other combination fails with
// ErrUnsupportedLogicalType.
type IntegerType struct {
	BitWidth int8
	IsSigned bool
}

// LogicalType is the Go-level argument to AddLogicalColumn, mirroring the
// subset of Parquet's LogicalType union this core understands. Exactly one
// of String or Integer should be set; use StringLogicalType or
// IntegerLogicalType to build one.
type LogicalType struct {
	String  bool
	Integer *IntegerType
}

// StringLogicalType returns the STRING logical type (maps to BYTE_ARRAY /
// UTF8).
func StringLogicalType() LogicalType {
	return LogicalType{String: true}
}

// IntegerLogicalType returns an INTEGER logical type with the given bit
// width and signedness. Only bitWidth=32, isSigned=true is supported by
// this core; anything else is rejected at AddLogicalColumn time.
func IntegerLogicalType(bitWidth int8, isSigned bool) LogicalType {
	return LogicalType{Integer: &IntegerType{BitWidth: bitWidth, IsSigned: isSigned}}
}

// physicalAndConvertedType implements the logical-to-physical type mapping
// table: STRING maps to BYTE_ARRAY/UTF8, signed 32-bit INTEGER maps to
// INT32/INT_32, and everything else is rejected.
func physicalAndConvertedType(lt LogicalType) (parquet.Type, parquet.ConvertedType, *parquet.LogicalType, error) {
	switch {
	case lt.String:
		return parquet.Type_BYTE_ARRAY, parquet.ConvertedType_UTF8, &parquet.LogicalType{STRING: &parquet.StringType{}}, nil

	case lt.Integer != nil:
		it := lt.Integer
		if !it.IsSigned {
			return 0, 0, nil, errors.Wrap(ErrUnsupportedLogicalType, "unsigned integers are not implemented")
		}
		if it.BitWidth != 32 {
			return 0, 0, nil, errors.Wrap(ErrUnsupportedLogicalType, "only 32 bit integers are implemented")
		}
		return parquet.Type_INT32, parquet.ConvertedType_INT_32, &parquet.LogicalType{
			INTEGER: &parquet.IntType{BitWidth: it.BitWidth, IsSigned: it.IsSigned},
		}, nil

	default:
		return 0, 0, nil, errors.Wrap(ErrUnsupportedLogicalType, "unimplemented logical type")
	}
}
