package xgprim

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"
)

func TestStreamCRC32MatchesStdlib(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	r := bytes.NewReader(data)

	got, err := StreamCRC32(r, 5, 9) // "uick brow" -> 9 bytes from offset 5
	if err != nil {
		t.Fatalf("StreamCRC32: %v", err)
	}
	want := crc32.ChecksumIEEE(data[5:14])
	if got != want {
		t.Errorf("StreamCRC32() = %#x, want %#x", got, want)
	}
}

func TestStreamCRC32PreservesPosition(t *testing.T) {
	// P10: stream_crc32 leaves the stream position unchanged.
	data := []byte("0123456789")
	r := bytes.NewReader(data)

	if _, err := r.Seek(3, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if _, err := StreamCRC32(r, 0, int64(len(data))); err != nil {
		t.Fatalf("StreamCRC32: %v", err)
	}

	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatal(err)
	}
	if pos != 3 {
		t.Errorf("stream position after StreamCRC32 = %v, want 3", pos)
	}
}

func TestStreamCRC32NegativeLengthReadsToEnd(t *testing.T) {
	data := []byte("abcdefgh")
	r := bytes.NewReader(data)

	got, err := StreamCRC32(r, 2, -1)
	if err != nil {
		t.Fatalf("StreamCRC32: %v", err)
	}
	want := crc32.ChecksumIEEE(data[2:])
	if got != want {
		t.Errorf("StreamCRC32(negative length) = %#x, want %#x", got, want)
	}
}
