package xgarchive

import "github.com/mpetch/xgreplay/xgprim"

// decodeArchiveRecord parses the 36-byte trailer from its raw bytes.
func decodeArchiveRecord(b []byte) ArchiveRecord {
	r := xgprim.NewReader(b)
	rec := ArchiveRecord{
		CRC:          r.Uint32(),
		FileCount:    r.Int32(),
		Version:      r.Int32(),
		RegistrySize: r.Int32(),
		ArchiveSize:  r.Int32(),
	}
	compressedFlag := r.Int32()
	rec.CompressedRegistry = compressedFlag != 0
	r.Skip(12) // reserved
	return rec
}

// decodeFileRecord parses one 532-byte registry entry.
func decodeFileRecord(b []byte) FileRecord {
	r := xgprim.NewReader(b)
	name := xgprim.PascalShortString(r.Slice(256))
	path := xgprim.PascalShortString(r.Slice(256))
	rec := FileRecord{
		Name:  name,
		Path:  path,
		OSize: r.Int32(),
		CSize: r.Int32(),
		Start: r.Int32(),
		CRC:   r.Uint32(),
	}
	compressedByte := r.Byte()
	rec.Compressed = compressedByte == 0 // inverted on-disk semantics
	rec.CompressionLevel = r.Byte()
	r.Skip(2) // pad
	return rec
}
