// Package demo provides a synthetic, deterministic column source good
// enough to exercise every code path the column writer supports end to
// end: PLAIN and RLE_DICTIONARY encodings, UNCOMPRESSED and SNAPPY
// compression, across all four physical types. It stands in for a real
// data source in the CLI and in integration tests.
package demo

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

type byteArrayColumn struct {
	values []string
	dict   bool

	// dictValues and dictIndex are populated lazily by buildDictionary:
	// the distinct values in first-seen order, and each row's index into
	// that list.
	dictValues []string
	dictIndex  []int32
}

// Provider is a column-index-keyed, in-memory ColumnSource/DictionarySource.
// Columns are appended with AddInt32Column/AddDoubleColumn/
// AddByteArrayColumn/AddBooleanColumn, in the same order they are later
// added to a FileWriter's schema; column idx in every interface method
// refers to that append order.
type Provider struct {
	int32Columns  map[int][]int32
	doubleColumns map[int][]float64
	boolColumns   map[int][]bool
	byteColumns   map[int]*byteArrayColumn
}

// NewProvider returns an empty provider. Use the Add*Column methods to
// populate it before handing it to a FileWriter.
func NewProvider() *Provider {
	return &Provider{
		int32Columns:  make(map[int][]int32),
		doubleColumns: make(map[int][]float64),
		boolColumns:   make(map[int][]bool),
		byteColumns:   make(map[int]*byteArrayColumn),
	}
}

// AddInt32Column registers values for column idx.
func (p *Provider) AddInt32Column(idx int, values []int32) {
	p.int32Columns[idx] = values
}

// AddDoubleColumn registers values for column idx.
func (p *Provider) AddDoubleColumn(idx int, values []float64) {
	p.doubleColumns[idx] = values
}

// AddBooleanColumn registers values for column idx.
func (p *Provider) AddBooleanColumn(idx int, values []bool) {
	p.boolColumns[idx] = values
}

// AddByteArrayColumn registers values for column idx. dict is stored with
// the column but not consulted: the dictionary methods serve any byte array
// column, and whether it is dictionary-encoded is decided by the
// FileWriter's schema. The distinct values and per-row indices are computed
// once, the first time any dictionary method is called for idx.
func (p *Provider) AddByteArrayColumn(idx int, values []string, dict bool) {
	p.byteColumns[idx] = &byteArrayColumn{values: values, dict: dict}
}

func (p *Provider) WriteInt32(w io.Writer, idx int) error {
	values, ok := p.int32Columns[idx]
	if !ok {
		return errors.Errorf("demo: no int32 column at index %d", idx)
	}
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	_, err := w.Write(buf)
	return err
}

func (p *Provider) WriteDouble(w io.Writer, idx int) error {
	values, ok := p.doubleColumns[idx]
	if !ok {
		return errors.Errorf("demo: no double column at index %d", idx)
	}
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	_, err := w.Write(buf)
	return err
}

func (p *Provider) WriteByteArray(w io.Writer, idx int) error {
	col, ok := p.byteColumns[idx]
	if !ok {
		return errors.Errorf("demo: no byte array column at index %d", idx)
	}
	return writePlainByteArrays(w, col.values)
}

func (p *Provider) WriteBoolean(w io.Writer, idx int) error {
	values, ok := p.boolColumns[idx]
	if !ok {
		return errors.Errorf("demo: no boolean column at index %d", idx)
	}
	n := len(values) / 8
	if len(values)%8 > 0 {
		n++
	}
	buf := make([]byte, n)
	for i, v := range values {
		if v {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	_, err := w.Write(buf)
	return err
}

func (p *Provider) SizeByteArray(idx int) uint32 {
	col, ok := p.byteColumns[idx]
	if !ok {
		return 0
	}
	return plainByteArraySize(col.values)
}

func writePlainByteArrays(w io.Writer, values []string) error {
	var lenBuf [4]byte
	for _, s := range values {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func plainByteArraySize(values []string) uint32 {
	var size uint32
	for _, s := range values {
		size += 4 + uint32(len(s))
	}
	return size
}

// HasByteArrayDictionary reports that this provider can supply
// dictionaries for any byte array column added with dict=true.
func (p *Provider) HasByteArrayDictionary() bool {
	return true
}

func (p *Provider) buildDictionary(idx int) *byteArrayColumn {
	col := p.byteColumns[idx]
	if col == nil || col.dictValues != nil {
		return col
	}
	seen := make(map[string]int32, len(col.values))
	col.dictIndex = make([]int32, len(col.values))
	for i, v := range col.values {
		if existing, ok := seen[v]; ok {
			col.dictIndex[i] = existing
			continue
		}
		next := int32(len(col.dictValues))
		seen[v] = next
		col.dictValues = append(col.dictValues, v)
		col.dictIndex[i] = next
	}
	return col
}

func (p *Provider) NumValuesByteArrayDictionary(idx int) uint32 {
	col := p.buildDictionary(idx)
	if col == nil {
		return 0
	}
	return uint32(len(col.dictValues))
}

func (p *Provider) SizeByteArrayDictionary(idx int) uint32 {
	col := p.buildDictionary(idx)
	if col == nil {
		return 0
	}
	return plainByteArraySize(col.dictValues)
}

func (p *Provider) WriteByteArrayDictionary(w io.Writer, idx int) error {
	col := p.buildDictionary(idx)
	if col == nil {
		return errors.Errorf("demo: no byte array column at index %d", idx)
	}
	return writePlainByteArrays(w, col.dictValues)
}

func (p *Provider) WriteDictionaryIndices(w io.Writer, idx int) error {
	col := p.buildDictionary(idx)
	if col == nil {
		return errors.Errorf("demo: no byte array column at index %d", idx)
	}
	buf := make([]byte, 4*len(col.dictIndex))
	for i, v := range col.dictIndex {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	_, err := w.Write(buf)
	return err
}
