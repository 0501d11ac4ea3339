package gamefile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

func newFrame() []byte {
	return make([]byte, FrameSize)
}

func TestDecoderCube(t *testing.T) {
	frame := newFrame()
	frame[8] = byte(KindCube)

	// Doubled (EngineStructDoubleAction) starts at offset 64 within the
	// frame; Crawford sits at 64+26+2+4+8+4+4+4 = 116, an int16 on disk.
	binary.LittleEndian.PutUint16(frame[116:118], 5)

	// The fixed Cube tail picks up right after the 132-byte Doubled
	// struct (offset 196) plus 4 bytes of padding: ErrCube at 200,
	// DiceRolled (a 3-byte Pascal shortstring) at 208.
	binary.LittleEndian.PutUint64(frame[200:208], math.Float64bits(2.5))
	frame[208] = 2
	frame[209] = '5'
	frame[210] = '3'

	dec := NewDecoder(bytes.NewReader(frame))
	rec, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	c, ok := rec.(*Cube)
	if !ok {
		t.Fatalf("Next() returned %T, want *Cube", rec)
	}
	if c.Doubled.Crawford != 5 {
		t.Errorf("Doubled.Crawford = %v, want 5", c.Doubled.Crawford)
	}
	if c.ErrCube != 2.5 {
		t.Errorf("ErrCube = %v, want 2.5 (offset shifted by a Doubled width error)", c.ErrCube)
	}
	if c.DiceRolled != "53" {
		t.Errorf("DiceRolled = %q, want %q (offset shifted by a Doubled width error)", c.DiceRolled, "53")
	}
}

func TestDecoderHeaderMatch(t *testing.T) {
	frame := newFrame()
	frame[8] = byte(KindHeaderMatch)
	binary.LittleEndian.PutUint32(frame[92:96], 7)          // MatchLength
	binary.LittleEndian.PutUint32(frame[552:556], 0)        // Version
	binary.LittleEndian.PutUint32(frame[556:560], 0x494C4D44) // Magic "DMLI" (as int32)

	dec := NewDecoder(bytes.NewReader(frame))
	rec, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	hm, ok := rec.(*HeaderMatch)
	if !ok {
		t.Fatalf("Next() returned %T, want *HeaderMatch", rec)
	}
	if hm.MatchLength != 7 {
		t.Errorf("MatchLength = %v, want 7", hm.MatchLength)
	}
	if hm.Magic != 0x494C4D44 {
		t.Errorf("Magic = %#x, want 0x494C4D44", hm.Magic)
	}
	if dec.Version() != 0 {
		t.Errorf("Decoder.Version() = %v, want 0 (latched from HeaderMatch)", dec.Version())
	}
}

func TestDecoderUnimplementedTag(t *testing.T) {
	cases := []byte{7, 8, 200}
	for _, tag := range cases {
		frame := newFrame()
		frame[8] = tag

		dec := NewDecoder(bytes.NewReader(frame))
		rec, err := dec.Next()
		if err != nil {
			t.Fatalf("Next (tag %d): %v", tag, err)
		}
		u, ok := rec.(*Unimplemented)
		if !ok {
			t.Fatalf("Next (tag %d) returned %T, want *Unimplemented", tag, rec)
		}
		if u.Tag != tag {
			t.Errorf("Unimplemented.Tag = %v, want %v", u.Tag, tag)
		}
	}
}

func TestDecoderAdvancesExactlyOneFrame(t *testing.T) {
	// Two back-to-back frames; each Next call must consume exactly
	// FrameSize bytes regardless of how much its parser interpreted.
	f1 := newFrame()
	f1[8] = byte(KindMissing)
	f2 := newFrame()
	f2[8] = byte(KindFooterMatch)

	dec := NewDecoder(bytes.NewReader(append(append([]byte{}, f1...), f2...)))

	r1, err := dec.Next()
	if err != nil {
		t.Fatalf("Next #1: %v", err)
	}
	if r1.Kind() != KindMissing {
		t.Errorf("record #1 kind = %v, want Missing", r1.Kind())
	}

	r2, err := dec.Next()
	if err != nil {
		t.Fatalf("Next #2: %v", err)
	}
	if r2.Kind() != KindFooterMatch {
		t.Errorf("record #2 kind = %v, want FooterMatch", r2.Kind())
	}

	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next #3 err = %v, want io.EOF", err)
	}
}

func TestDecoderTruncatedFrame(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(make([]byte, FrameSize/2)))
	_, err := dec.Next()
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Next() err = %v, want ErrTruncated", err)
	}
}

func TestKindForTag(t *testing.T) {
	for tag := byte(0); tag <= 6; tag++ {
		if got := kindForTag(tag); got != Kind(tag) {
			t.Errorf("kindForTag(%d) = %v, want %v", tag, got, Kind(tag))
		}
	}
	if got := kindForTag(7); got != KindUnimplemented {
		t.Errorf("kindForTag(7) = %v, want KindUnimplemented", got)
	}
}
