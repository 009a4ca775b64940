package miniparquet

// byteBuffer is a growable in-memory byte sink used to stage pre-compression
// pages and RLE index payloads. Resize pre-sizes the buffer to its final
// length so Write never reallocates, as long as the caller resizes to the
// exact size it intends to fill.
type byteBuffer struct {
	data   []byte
	length int
}

func newByteBuffer() *byteBuffer {
	return &byteBuffer{}
}

// Resize grows capacity to at least n bytes (never shrinking it) and resets
// the logical length to zero.
func (b *byteBuffer) Resize(n int) {
	if cap(b.data) < n {
		b.data = make([]byte, n)
	}
	b.data = b.data[:cap(b.data)]
	b.length = 0
}

// Reset sets the logical length back to zero without releasing capacity.
func (b *byteBuffer) Reset() {
	b.length = 0
}

// Write appends p, growing the backing array only if capacity is
// insufficient.
func (b *byteBuffer) Write(p []byte) (int, error) {
	need := b.length + len(p)
	if need > cap(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data[:b.length])
		b.data = grown
	} else if need > len(b.data) {
		b.data = b.data[:cap(b.data)]
	}
	copy(b.data[b.length:need], p)
	b.length = need
	return len(p), nil
}

// Len reports the current logical length (tell()).
func (b *byteBuffer) Len() int {
	return b.length
}

// Bytes exports the logical slice [0:Len()).
func (b *byteBuffer) Bytes() []byte {
	return b.data[:b.length]
}

// Raw exports the full pre-sized backing slice, for callers (the RLE
// encoder) that write directly into the buffer's capacity instead of
// through Write and then report how much they used via SetLen.
func (b *byteBuffer) Raw() []byte {
	return b.data
}

// SetLen fixes the logical length after a caller has written directly into
// the slice returned by Raw.
func (b *byteBuffer) SetLen(n int) {
	b.length = n
}
