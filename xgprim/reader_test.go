package xgprim

import (
	"errors"
	"testing"
)

func TestReaderScalars(t *testing.T) {
	b := []byte{
		0x01,                   // Byte
		0xFF,                   // SByte (-1)
		0x34, 0x12,             // Uint16 0x1234
		0x78, 0x56, 0x34, 0x12, // Uint32 0x12345678
	}
	r := NewReader(b)

	if got := r.Byte(); got != 1 {
		t.Errorf("Byte() = %v, want 1", got)
	}
	if got := r.SByte(); got != -1 {
		t.Errorf("SByte() = %v, want -1", got)
	}
	if got := r.Uint16(); got != 0x1234 {
		t.Errorf("Uint16() = %#x, want 0x1234", got)
	}
	if got := r.Uint32(); got != 0x12345678 {
		t.Errorf("Uint32() = %#x, want 0x12345678", got)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	r.Uint32() // needs 4 bytes, only 2 available

	if !errors.Is(r.Err(), ErrTruncated) {
		t.Fatalf("Err() = %v, want ErrTruncated", r.Err())
	}

	// Once an error is latched, further reads stay no-ops.
	if got := r.Byte(); got != 0 {
		t.Errorf("Byte() after error = %v, want 0", got)
	}
}

func TestReaderSkipAndSlice(t *testing.T) {
	b := []byte{0, 0, 0, 0xAA, 0xBB}
	r := NewReader(b)
	r.Skip(3)
	got := r.Slice(2)
	if len(got) != 2 || got[0] != 0xAA || got[1] != 0xBB {
		t.Errorf("Slice() = %v, want [0xAA 0xBB]", got)
	}
}

func TestReaderFloats(t *testing.T) {
	b := []byte{
		0, 0, 0x80, 0x3F, // float32 1.0
		0, 0, 0, 0, 0, 0, 0xF0, 0x3F, // float64 1.0
	}
	r := NewReader(b)
	if got := r.Float32(); got != 1.0 {
		t.Errorf("Float32() = %v, want 1.0", got)
	}
	if got := r.Float64(); got != 1.0 {
		t.Errorf("Float64() = %v, want 1.0", got)
	}
}
