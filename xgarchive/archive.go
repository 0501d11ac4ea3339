package xgarchive

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"

	"github.com/mpetch/xgreplay/xgprim"
)

// Archive is an opened ZLBArchive: a trailer-first registry of
// independently compressed member files over a seekable byte stream.
type Archive struct {
	stream io.ReadSeeker

	trailer ArchiveRecord

	// startOfData and endOfData bound the archive payload within stream,
	// in absolute byte offsets.
	startOfData, endOfData int64

	members []FileRecord

	blockSize int
}

// Option configures an Archive at Open time.
type Option func(*Archive)

// WithBlockSize overrides the chunk size used to stream decompression,
// default 32768 bytes.
func WithBlockSize(n int) Option {
	return func(a *Archive) { a.blockSize = n }
}

// Open parses the archive trailer at the end of stream, CRC-verifies the
// archive payload, inflates the member registry, and decodes its
// FileRecords. stream must support Seek, since the trailer is located
// relative to end-of-stream, the payload bounds are derived from it, and
// the payload is then read for verification and again per member.
func Open(stream io.ReadSeeker, opts ...Option) (*Archive, error) {
	a := &Archive{stream: stream, blockSize: 32768}
	for _, opt := range opts {
		opt(a)
	}

	fileSize, err := stream.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("xgarchive: %w", err)
	}

	trailerBuf := make([]byte, trailerSize)
	if _, err := stream.Seek(fileSize-trailerSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("xgarchive: %w", err)
	}
	if _, err := io.ReadFull(stream, trailerBuf); err != nil {
		return nil, fmt.Errorf("xgarchive: error extracting archive index: %w", err)
	}
	a.trailer = decodeArchiveRecord(trailerBuf)

	a.endOfData = fileSize - trailerSize
	a.startOfData = a.endOfData - int64(a.trailer.RegistrySize) - int64(a.trailer.ArchiveSize)

	crc, err := xgprim.StreamCRC32(stream, a.startOfData, a.endOfData-a.startOfData)
	if err != nil {
		return nil, fmt.Errorf("xgarchive: error extracting archive index: %w", err)
	}
	if crc != a.trailer.CRC {
		return nil, fmt.Errorf("xgarchive: archive CRC check failed - file corrupt: %w", ErrCorrupt)
	}

	registryStart := a.endOfData - int64(a.trailer.RegistrySize)
	if _, err := stream.Seek(registryStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("xgarchive: %w", err)
	}

	registry, err := a.extractSegment(stream, a.trailer.CompressedRegistry, int64(a.trailer.RegistrySize))
	if err != nil {
		return nil, fmt.Errorf("xgarchive: error extracting archive index: %w: %w", ErrCorrupt, err)
	}

	members := make([]FileRecord, 0, a.trailer.FileCount)
	for i := int32(0); i < a.trailer.FileCount; i++ {
		off := int(i) * fileRecordSize
		if off+fileRecordSize > len(registry) {
			return nil, fmt.Errorf("xgarchive: error extracting archive index: %w", ErrCorrupt)
		}
		members = append(members, decodeFileRecord(registry[off:off+fileRecordSize]))
	}
	a.members = members

	return a, nil
}

// Members returns the archive's file registry, in the order it was
// stored.
func (a *Archive) Members() []FileRecord {
	return a.members
}

// extractSegment reads exactly numBytes of archive payload from the
// current stream position, inflating it if compressed is true. The
// archive stream is fed in fixed-size chunks so that a compressed
// segment is never over-read past its own boundary, since further
// archive data (other members, then the registry and trailer) follows in
// the same underlying stream.
func (a *Archive) extractSegment(r io.Reader, compressed bool, numBytes int64) ([]byte, error) {
	if !compressed {
		buf := make([]byte, numBytes)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	lr := &io.LimitedReader{R: r, N: numBytes}
	zr, err := zlib.NewReader(bufio.NewReaderSize(lr, a.blockSize))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	// The inflater may not have consumed every byte of its chunked input
	// once it finds the deflate stream's end; skip over any bytes it
	// never read so the caller's stream position lands exactly at
	// numBytes, not wherever the zlib reader stopped pulling.
	if lr.N > 0 {
		if _, err := io.CopyN(io.Discard, lr, lr.N); err != nil && err != io.EOF {
			return nil, err
		}
	}
	return out, nil
}

// TempFile is a scoped temporary file backing one extracted archive
// member. Close removes the underlying file; callers must call Close on
// every code path (success, error, or early cancellation).
type TempFile struct {
	*os.File
	path string
}

// Close closes and unlinks the temporary file.
func (t *TempFile) Close() error {
	cerr := t.File.Close()
	rerr := os.Remove(t.path)
	if cerr != nil {
		return cerr
	}
	return rerr
}

// Extract materializes one registry member to a scoped temporary file,
// CRC-verifying its full contents against FileRecord.CRC before
// returning. The caller owns the returned TempFile and must Close it.
func (a *Archive) Extract(m FileRecord) (*TempFile, error) {
	if _, err := a.stream.Seek(int64(m.Start)+a.startOfData, io.SeekStart); err != nil {
		return nil, fmt.Errorf("xgarchive: %w", err)
	}

	size := int64(m.CSize)
	data, err := a.extractSegment(a.stream, m.Compressed, size)
	if err != nil {
		return nil, fmt.Errorf("xgarchive: error extracting archived file %q: %w", m.Name, err)
	}

	f, err := os.CreateTemp("", "xgarchive-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("xgarchive: %w", err)
	}
	tf := &TempFile{File: f, path: f.Name()}

	if _, err := f.Write(data); err != nil {
		tf.Close()
		return nil, fmt.Errorf("xgarchive: %w", err)
	}

	crc := crc32OfBytes(data)
	if crc != m.CRC {
		tf.Close()
		return nil, fmt.Errorf("xgarchive: file CRC check failed - file corrupt: %w", ErrMemberCorrupt)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		tf.Close()
		return nil, fmt.Errorf("xgarchive: %w", err)
	}
	return tf, nil
}

func crc32OfBytes(b []byte) uint32 {
	r, err := xgprim.StreamCRC32(bytes.NewReader(b), 0, int64(len(b)))
	if err != nil {
		// bytes.Reader never errors on Seek/Read within bounds.
		panic(err)
	}
	return r
}
