package miniparquet

import "github.com/pkg/errors"

// Sentinel errors callers compare against with errors.Is. Errors raised
// while adding or encoding a column are wrapped with column index and stage
// context via errors.Wrapf so callers can log a precise diagnostic;
// ErrMissingRowCount and errors from writing the magic bytes or the footer
// are returned by Write without that context.
var (
	// ErrMissingRowCount is returned by Write when SetNumRows was never
	// called.
	ErrMissingRowCount = errors.New("number of rows must be set before write")

	// ErrUnsupportedLogicalType is returned when a logical type outside
	// {STRING, INTEGER{bitWidth:32, isSigned:true}} is requested.
	ErrUnsupportedLogicalType = errors.New("unsupported logical type")

	// ErrUnsupportedPhysicalType is returned when dictionary encoding is
	// requested for a non-BYTE_ARRAY column, or when a value is dispatched
	// for a physical type this writer does not handle.
	ErrUnsupportedPhysicalType = errors.New("unsupported physical type")

	// ErrUnsupportedCompression is returned for codecs other than
	// UNCOMPRESSED/SNAPPY, and for the dictionary+compressed combination.
	ErrUnsupportedCompression = errors.New("unsupported compression codec")

	// ErrSizeMismatch signals an internal contract violation between the
	// value provider and the writer: a declared size and the number of
	// bytes actually written disagree. Always fatal.
	ErrSizeMismatch = errors.New("declared and written byte counts differ")
)

// wrapColumn adds column index and pipeline stage context to err so a
// diagnostic always identifies which column and which stage failed.
func wrapColumn(err error, idx int, stage string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "column %d: %s", idx, stage)
}
