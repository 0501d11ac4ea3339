package xgreplay

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"os"
	"testing"
)

func pascalField(s string, width int) []byte {
	b := make([]byte, width)
	b[0] = byte(len(s))
	copy(b[1:], s)
	return b
}

func putFileRecord(w *bytes.Buffer, name string, osize, csize, start int32, crc uint32) {
	w.Write(pascalField(name, 256))
	w.Write(pascalField("", 256))
	binary.Write(w, binary.LittleEndian, osize)
	binary.Write(w, binary.LittleEndian, csize)
	binary.Write(w, binary.LittleEndian, start)
	binary.Write(w, binary.LittleEndian, crc)
	w.WriteByte(1) // not compressed
	w.WriteByte(0)
	w.Write([]byte{0, 0})
}

// buildMatchFile assembles a minimal, well-formed .xg file on disk: a GDF
// header with no thumbnail, followed by a ZLBArchive holding a single
// "temp.xg" gamefile member carrying the "DMLI" magic at the expected
// offset.
func buildMatchFile(t *testing.T) string {
	t.Helper()

	gdf := make([]byte, 8232)
	copy(gdf[0:4], []byte{'R', 'G', 'M', 'H'})
	binary.LittleEndian.PutUint32(gdf[4:8], 1)    // HeaderVersion
	binary.LittleEndian.PutUint32(gdf[8:12], 8232) // HeaderSize
	// ThumbnailOffset/Size left zero: no thumbnail.

	gamefileMember := make([]byte, 600)
	copy(gamefileMember[gamefileMagicOffset:gamefileMagicOffset+4], []byte("DMLI"))

	var registry bytes.Buffer
	memberCRC := crc32.ChecksumIEEE(gamefileMember)
	putFileRecord(&registry, "temp.xg", int32(len(gamefileMember)), int32(len(gamefileMember)), 0, memberCRC)

	payload := append(append([]byte{}, gamefileMember...), registry.Bytes()...)
	archiveCRC := crc32.ChecksumIEEE(payload)

	var trailer bytes.Buffer
	binary.Write(&trailer, binary.LittleEndian, archiveCRC)
	binary.Write(&trailer, binary.LittleEndian, int32(1))
	binary.Write(&trailer, binary.LittleEndian, int32(1))
	binary.Write(&trailer, binary.LittleEndian, int32(registry.Len()))
	binary.Write(&trailer, binary.LittleEndian, int32(len(gamefileMember)))
	binary.Write(&trailer, binary.LittleEndian, int32(0))
	trailer.Write(make([]byte, 12))

	full := append([]byte{}, gdf...)
	full = append(full, payload...)
	full = append(full, trailer.Bytes()...)

	f, err := os.CreateTemp("", "xgreplay-test-*.xg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(full); err != nil {
		t.Fatal(err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(name) })
	return name
}

func TestOpenYieldsSegmentsInOrder(t *testing.T) {
	path := buildMatchFile(t)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	ctx := context.Background()

	var kinds []Kind
	for {
		seg, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		kinds = append(kinds, seg.Kind)

		if seg.Kind == KindGameFile {
			buf := make([]byte, 4)
			if _, err := seg.Handle.ReadAt(buf, gamefileMagicOffset); err != nil {
				t.Fatalf("ReadAt: %v", err)
			}
			if string(buf) != "DMLI" {
				t.Errorf("gamefile magic = %q, want DMLI", buf)
			}
		}

		if err := seg.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}

	want := []Kind{KindGDFHeader, KindGameFile}
	if len(kinds) != len(want) {
		t.Fatalf("segment kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestOpenNotXG(t *testing.T) {
	f, err := os.CreateTemp("", "xgreplay-notxg-*.xg")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.Write(make([]byte, 100))
	f.Close()

	_, err = Open(f.Name())
	if err == nil {
		t.Fatal("Open() err = nil, want ImportError for a non-XG file")
	}
	var importErr *ImportError
	if !errors.As(err, &importErr) {
		t.Errorf("Open() err = %T, want *ImportError", err)
	}
}
