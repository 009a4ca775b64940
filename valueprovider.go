package miniparquet

import "io"

// ColumnSource is the pull interface the Column Writer calls into for every
// column. It replaces an abstract-base-class value provider with a
// capability-set interface: a handle supplying the four typed writers plus
// the one size query the writer needs ahead of time to pre-size pages and
// declare PageHeader sizes.
//
// Each Write* call must emit exactly the number of bytes its paired size
// rule promises; a mismatch is a fatal internal error (ErrSizeMismatch).
type ColumnSource interface {
	// WriteInt32 writes 4*numRows bytes of little-endian signed int32s for
	// column idx.
	WriteInt32(w io.Writer, idx int) error

	// WriteDouble writes 8*numRows bytes of little-endian IEEE-754 doubles
	// for column idx.
	WriteDouble(w io.Writer, idx int) error

	// WriteByteArray writes numRows records of (len:u32le, bytes[len]) for
	// column idx; the total must equal SizeByteArray(idx).
	WriteByteArray(w io.Writer, idx int) error

	// WriteBoolean writes ceil(numRows/8) bytes of LSB-first packed
	// booleans for column idx.
	WriteBoolean(w io.Writer, idx int) error

	// SizeByteArray returns the total PLAIN BYTE_ARRAY byte length (sum of
	// 4+len over all rows) for column idx.
	SizeByteArray(idx int) uint32
}

// DictionarySource is the optional capability set a ColumnSource may also
// implement to enable RLE_DICTIONARY encoding on BYTE_ARRAY columns. The
// Column Writer type-asserts for it only when a column was added with
// dict=true.
type DictionarySource interface {
	// HasByteArrayDictionary reports whether this source can supply
	// dictionaries at all.
	HasByteArrayDictionary() bool

	// NumValuesByteArrayDictionary returns the dictionary cardinality for
	// column idx.
	NumValuesByteArrayDictionary(idx int) uint32

	// SizeByteArrayDictionary returns the PLAIN BYTE_ARRAY byte length of
	// the dictionary for column idx.
	SizeByteArrayDictionary(idx int) uint32

	// WriteByteArrayDictionary writes exactly SizeByteArrayDictionary(idx)
	// bytes: the distinct values in dictionary index order, PLAIN
	// BYTE_ARRAY encoded.
	WriteByteArrayDictionary(w io.Writer, idx int) error

	// WriteDictionaryIndices writes numRows 32-bit little-endian index
	// values for column idx into the staging buffer; the Column Writer
	// re-encodes them with the hybrid RLE/bit-pack encoder.
	WriteDictionaryIndices(w io.Writer, idx int) error
}
