/*

Package xggdf reads the Windows "Game Data Format" outer container that
wraps every XG match file: a fixed 8232-byte header, an optional embedded
JPEG thumbnail, and the archive payload that follows.

*/
package xggdf

import (
	"errors"
	"fmt"
	"io"

	"github.com/mpetch/xgreplay/xgprim"
)

// ErrNotXG is returned when the header's magic number or version do not
// identify an XG match file.
var ErrNotXG = errors.New("xggdf: not an XG file")

// HeaderSize is the fixed byte size of the GameDataFormatHdrRecord region.
const HeaderSize = 8232

// magic is the expected 4-byte header magic, after reversing the bytes as
// read little-endian: the on-disk bytes are 'R','G','M','H'.
var magic = [4]byte{'H', 'M', 'G', 'R'}

// Header models the fixed GDF header.
type Header struct {
	MagicNumber [4]byte

	HeaderVersion int32

	// HeaderSize is the byte offset to the end of the outer header; it
	// may exceed HeaderSize (the constant, 8232) if the on-disk header
	// carries trailing opaque padding.
	HeaderSize int32

	// ThumbnailOffset is a *relative* seek distance, applied from
	// wherever the stream sits after the header is read, not an
	// absolute file offset.
	ThumbnailOffset uint64

	ThumbnailSize int32

	GameGUID string
	GameName string
	SaveName string
	LevelName string
	Comments  string
}

// Valid reports whether the header identifies a well-formed XG file
// (invariant 1).
func (h *Header) Valid() bool {
	return h.MagicNumber == magic && h.HeaderVersion == 1
}

// ReadHeader reads and validates the fixed 8232-byte header from the
// current position of stream (expected to be the start of the file).
func ReadHeader(stream io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(stream, buf); err != nil {
		return nil, fmt.Errorf("xggdf: %w", err)
	}

	r := xgprim.NewReader(buf)

	var h Header
	magicBytes := r.Slice(4)
	copy(h.MagicNumber[:], magicBytes)
	// The on-disk bytes are read as a little-endian 4-byte run and the
	// result reversed, so a valid file's MagicNumber reads "HMGR" and
	// compares equal to the constant above.
	for i, j := 0, 3; i < j; i, j = i+1, j-1 {
		h.MagicNumber[i], h.MagicNumber[j] = h.MagicNumber[j], h.MagicNumber[i]
	}

	h.HeaderVersion = r.Int32()
	h.HeaderSize = r.Int32()
	h.ThumbnailOffset = r.Uint64()
	h.ThumbnailSize = r.Int32()

	guidA := r.Uint32()
	guidB := r.Uint16()
	guidC := r.Uint16()
	guidD := r.Byte()
	guidE := r.Byte()
	var tail [6]byte
	copy(tail[:], r.Slice(6))
	h.GameGUID = xgprim.DelphiGUID(guidA, guidB, guidC, guidD, guidE, tail)

	h.GameName = xgprim.UTF16NullTerminated(r.Uint16Array(1024))
	h.SaveName = xgprim.UTF16NullTerminated(r.Uint16Array(1024))
	h.LevelName = xgprim.UTF16NullTerminated(r.Uint16Array(1024))
	h.Comments = xgprim.UTF16NullTerminated(r.Uint16Array(1024))

	if r.Err() != nil {
		return nil, fmt.Errorf("xggdf: %w", r.Err())
	}
	if !h.Valid() {
		return nil, ErrNotXG
	}
	return &h, nil
}

// HeaderBytes re-reads the first h.HeaderSize bytes of the file from
// offset 0, for materializing the GDF_HEADER segment.
func HeaderBytes(stream io.ReadSeeker, h *Header) ([]byte, error) {
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("xggdf: %w", err)
	}
	buf := make([]byte, h.HeaderSize)
	if _, err := io.ReadFull(stream, buf); err != nil {
		return nil, fmt.Errorf("xggdf: %w", err)
	}
	return buf, nil
}

// ReadThumbnail seeks forward by h.ThumbnailOffset bytes from stream's
// current position and reads h.ThumbnailSize bytes of embedded JPEG data.
// Call only when h.ThumbnailSize > 0.
func ReadThumbnail(stream io.ReadSeeker, h *Header) ([]byte, error) {
	if _, err := stream.Seek(int64(h.ThumbnailOffset), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("xggdf: %w", err)
	}
	buf := make([]byte, h.ThumbnailSize)
	if _, err := io.ReadFull(stream, buf); err != nil {
		return nil, fmt.Errorf("xggdf: %w", err)
	}
	return buf, nil
}
