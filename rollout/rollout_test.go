package rollout

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestDecoderBasicFields(t *testing.T) {
	frame := make([]byte, FrameSize)
	frame[0] = 1 // Truncated = true
	binary.LittleEndian.PutUint32(frame[4:8], 3) // Truncate

	dec := NewDecoder(bytes.NewReader(frame))
	rc, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !rc.Truncated {
		t.Error("Truncated = false, want true")
	}
	if rc.Truncate != 3 {
		t.Errorf("Truncate = %v, want 3", rc.Truncate)
	}
}

func TestDecoderEOFAtFrameBoundary(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(nil))
	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() err = %v, want io.EOF", err)
	}
}

func TestDecoderTruncated(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(make([]byte, FrameSize-1)))
	if _, err := dec.Next(); !errors.Is(err, ErrTruncated) {
		t.Errorf("Next() err = %v, want ErrTruncated", err)
	}
}

func TestDecoderMultipleFrames(t *testing.T) {
	two := append(make([]byte, FrameSize), make([]byte, FrameSize)...)
	dec := NewDecoder(bytes.NewReader(two))

	for i := 0; i < 2; i++ {
		if _, err := dec.Next(); err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
	}
	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next #3 err = %v, want io.EOF", err)
	}
}
