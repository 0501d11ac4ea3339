/*

Package xgarchive reads the "ZLBArchive" container embedded in XG match
files: a trailer-first registry of named member files, each independently
ZLIB-compressed, CRC-verified both at the archive level and per member.

Information sources:

xgdatatools (Michael Petch), xgzarc.py: the Python reference implementation
this package's layout and extraction discipline is ported from.

*/
package xgarchive

import (
	"errors"
	"fmt"
)

// Error categories returned by this package. Wrap with fmt.Errorf("%w", ...)
// to preserve the sentinel for errors.Is.
var (
	// ErrCorrupt indicates the archive trailer or registry failed CRC
	// verification, or could not be inflated.
	ErrCorrupt = errors.New("xgarchive: archive corrupt")

	// ErrMemberCorrupt indicates an extracted member's CRC did not match
	// its registry entry.
	ErrMemberCorrupt = errors.New("xgarchive: member corrupt")
)

// trailerSize is the fixed, on-disk size of the ArchiveRecord trailer.
const trailerSize = 36

// fileRecordSize is the fixed, on-disk size of one FileRecord registry
// entry.
const fileRecordSize = 532

// ArchiveRecord is the 36-byte trailer located at the last 36 bytes of
// the archive stream.
type ArchiveRecord struct {
	CRC                uint32
	FileCount          int32
	Version            int32
	RegistrySize       int32
	ArchiveSize        int32
	CompressedRegistry bool
}

// FileRecord describes one member file in the archive registry.
type FileRecord struct {
	// Name and Path are Pascal short strings decoded from fixed 256-byte
	// fields.
	Name, Path string

	// OSize and CSize are the uncompressed and compressed sizes in bytes.
	OSize, CSize int32

	// Start is the member's byte offset within the archive payload,
	// relative to the start of the archive payload.
	Start int32

	// CRC is the CRC-32 of the member's uncompressed bytes.
	CRC uint32

	// Compressed reports whether the member is ZLIB-compressed on disk.
	// Note the on-disk inversion: a stored byte of 0 means compressed.
	Compressed bool

	CompressionLevel byte
}

func (e *ArchiveRecord) String() string {
	return fmt.Sprintf("ArchiveRecord{FileCount:%d Version:%d RegistrySize:%d ArchiveSize:%d CompressedRegistry:%t}",
		e.FileCount, e.Version, e.RegistrySize, e.ArchiveSize, e.CompressedRegistry)
}
