// This file contains a cursor reader which aids reading typed, padded
// fields from a fixed-layout byte slice.

package xgprim

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader aids reading little-endian scalars and padding from a byte slice
// representing one fixed-layout Delphi packed record.
type Reader struct {
	// b is the byte slice to read from.
	b []byte

	// pos is the index of the next byte to read.
	pos int

	// err is the first error encountered; once set, all further reads are
	// no-ops that preserve err.
	err error
}

// NewReader returns a Reader over b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// ErrTruncated is returned (wrapped) when a read runs past the end of the
// underlying slice.
var ErrTruncated = fmt.Errorf("xgprim: truncated record")

// Err returns the first error encountered by the reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

// require ensures n more bytes are available, setting r.err otherwise.
func (r *Reader) require(n int) bool {
	if r.err != nil {
		return false
	}
	if r.pos+n > len(r.b) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.pos, len(r.b))
		return false
	}
	return true
}

// Skip advances the cursor by n bytes (explicit filler/padding).
func (r *Reader) Skip(n int) {
	if !r.require(n) {
		return
	}
	r.pos += n
}

// Byte reads a single unsigned byte.
func (r *Reader) Byte() byte {
	if !r.require(1) {
		return 0
	}
	v := r.b[r.pos]
	r.pos++
	return v
}

// SByte reads a single signed byte.
func (r *Reader) SByte() int8 {
	return int8(r.Byte())
}

// Bool reads a single byte as a boolean (nonzero == true).
func (r *Reader) Bool() bool {
	return r.Byte() != 0
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() uint16 {
	if !r.require(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v
}

// Int16 reads a little-endian int16.
func (r *Reader) Int16() int16 {
	return int16(r.Uint16())
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() uint32 {
	if !r.require(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v
}

// Int32 reads a little-endian int32.
func (r *Reader) Int32() int32 {
	return int32(r.Uint32())
}

// Uint64 reads a little-endian uint64.
func (r *Reader) Uint64() uint64 {
	if !r.require(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(r.b[r.pos:])
	r.pos += 8
	return v
}

// Int64 reads a little-endian int64.
func (r *Reader) Int64() int64 {
	return int64(r.Uint64())
}

// Float32 reads an IEEE-754 binary32, little-endian.
func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

// Float64 reads an IEEE-754 binary64, little-endian.
func (r *Reader) Float64() float64 {
	return math.Float64frombits(r.Uint64())
}

// Slice returns the next n raw bytes.
func (r *Reader) Slice(n int) []byte {
	if !r.require(n) {
		return nil
	}
	s := make([]byte, n)
	copy(s, r.b[r.pos:r.pos+n])
	r.pos += n
	return s
}

// Uint16Array reads n little-endian uint16 code units.
func (r *Reader) Uint16Array(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = r.Uint16()
	}
	return out
}

// Int32Array reads n little-endian int32 values.
func (r *Reader) Int32Array(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = r.Int32()
	}
	return out
}

// Float32Array reads n little-endian binary32 values.
func (r *Reader) Float32Array(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = r.Float32()
	}
	return out
}

// Float64Array reads n little-endian binary64 values.
func (r *Reader) Float64Array(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}

// SByteArray reads n signed bytes.
func (r *Reader) SByteArray(n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = r.SByte()
	}
	return out
}
