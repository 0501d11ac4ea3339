/*

Package xgreplay opens an ExtremeGammon match archive file and yields its
constituent segments in file order: the GDF outer header, an optional
thumbnail, then one segment per archive member. Each segment's handle is
a scoped temporary file positioned at byte 0; callers decode it further
with the gamefile or rollout packages, or copy it out verbatim.

Information source: xgdatatools (Michael Petch), xgimport.py.

*/
package xgreplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mpetch/xgreplay/xgarchive"
	"github.com/mpetch/xgreplay/xggdf"
)

// Kind identifies which part of the match archive a Segment carries.
type Kind int

const (
	KindGDFHeader Kind = iota
	KindThumbnail
	KindGameHeader
	KindGameFile
	KindRollouts
	KindComment
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindGDFHeader:
		return "GDFHeader"
	case KindThumbnail:
		return "Thumbnail"
	case KindGameHeader:
		return "GameHeader"
	case KindGameFile:
		return "GameFile"
	case KindRollouts:
		return "Rollouts"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// extension is the suggested output file suffix for each segment kind.
var extension = map[Kind]string{
	KindGDFHeader:  "_gdh.bin",
	KindThumbnail:  ".jpg",
	KindGameHeader: "_gamehdr.bin",
	KindGameFile:   "_gamefile.bin",
	KindRollouts:   "_rollouts.bin",
	KindComment:    "_comments.bin",
}

// gamefileMagicOffset is the byte offset, within the gamefile member,
// where the "DMLI" magic must appear.
const gamefileMagicOffset = 556

// memberKind maps an archive registry entry's on-disk name to the
// segment kind it represents.
var memberKind = map[string]Kind{
	"temp.xgi": KindGameHeader,
	"temp.xgr": KindRollouts,
	"temp.xgc": KindComment,
	"temp.xg":  KindGameFile,
}

// ImportError reports a failure to import one match file, naming the
// file and the underlying cause.
type ImportError struct {
	Filename string
	Err      error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("xgreplay: error processing %q: %v", e.Filename, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// ErrInvalidGamefile is wrapped into an ImportError when the gamefile
// member does not carry the "DMLI" magic at the expected offset.
var ErrInvalidGamefile = errors.New("not a valid XG gamefile")

// Segment is one piece of a match archive: either the outer GDF header,
// its optional thumbnail, or one extracted archive member.
type Segment struct {
	Kind      Kind
	Extension string
	Handle    *os.File

	close func() error
}

// Close releases the segment's backing temporary file. Callers must
// call Close on every Segment they receive, on every code path.
func (s *Segment) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Reader iterates the segments of one opened match archive file.
type Reader struct {
	filename string
	file     *os.File
	gdf      *xggdf.Header
	archive  *xgarchive.Archive

	stage     int
	memberIdx int
}

const (
	stageHeader = iota
	stageThumbnail
	stageMembers
	stageDone
)

// Open opens the match archive file at path and reads its GDF header
// and archive registry. The returned Reader must be closed with Close
// once the caller is done iterating, even if Next has not reached
// io.EOF.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImportError{Filename: path, Err: err}
	}

	hdr, err := xggdf.ReadHeader(f)
	if err != nil {
		f.Close()
		return nil, &ImportError{Filename: path, Err: err}
	}

	arc, err := xgarchive.Open(f)
	if err != nil {
		f.Close()
		return nil, &ImportError{Filename: path, Err: err}
	}

	return &Reader{filename: path, file: f, gdf: hdr, archive: arc, stage: stageHeader}, nil
}

// Close releases the Reader's underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Next returns the next segment in file order, or io.EOF once every
// segment has been produced. The returned Segment's Handle is
// positioned at byte 0; the caller must Close the segment when done
// with it.
func (r *Reader) Next(ctx context.Context) (*Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for {
		switch r.stage {
		case stageHeader:
			r.stage = stageThumbnail
			return r.headerSegment()

		case stageThumbnail:
			r.stage = stageMembers
			if r.gdf.ThumbnailSize > 0 {
				seg, err := r.thumbnailSegment()
				if err != nil {
					return nil, &ImportError{Filename: r.filename, Err: err}
				}
				return seg, nil
			}
			// No thumbnail in this file; fall through to members.

		case stageMembers:
			members := r.archive.Members()
			if r.memberIdx >= len(members) {
				r.stage = stageDone
				continue
			}
			m := members[r.memberIdx]
			r.memberIdx++
			seg, err := r.memberSegment(m)
			if err != nil {
				return nil, &ImportError{Filename: r.filename, Err: err}
			}
			return seg, nil

		default:
			return nil, io.EOF
		}
	}
}

func (r *Reader) headerSegment() (*Segment, error) {
	buf, err := xggdf.HeaderBytes(r.file, r.gdf)
	if err != nil {
		return nil, &ImportError{Filename: r.filename, Err: err}
	}
	return segmentFromBytes(KindGDFHeader, buf)
}

func (r *Reader) thumbnailSegment() (*Segment, error) {
	buf, err := xggdf.ReadThumbnail(r.file, r.gdf)
	if err != nil {
		return nil, err
	}
	return segmentFromBytes(KindThumbnail, buf)
}

func (r *Reader) memberSegment(m xgarchive.FileRecord) (*Segment, error) {
	tf, err := r.archive.Extract(m)
	if err != nil {
		return nil, err
	}

	kind, ok := memberKind[m.Name]
	if !ok {
		kind = KindUnknown
	}

	if kind == KindGameFile {
		if err := checkGamefileMagic(tf.File); err != nil {
			tf.Close()
			return nil, err
		}
	}

	return &Segment{
		Kind:      kind,
		Extension: extension[kind],
		Handle:    tf.File,
		close:     tf.Close,
	}, nil
}

func checkGamefileMagic(f *os.File) error {
	if _, err := f.Seek(gamefileMagicOffset, io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		return err
	}
	if string(buf) != "DMLI" {
		return ErrInvalidGamefile
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return nil
}

// segmentFromBytes materializes an in-memory buffer (the GDF header or
// thumbnail, both already fully read from the input file) as a scoped
// temporary file, matching the extraction discipline used for archive
// members.
func segmentFromBytes(kind Kind, data []byte) (*Segment, error) {
	f, err := os.CreateTemp("", "xgreplay-*.tmp")
	if err != nil {
		return nil, err
	}
	path := f.Name()

	closeFn := func() error {
		cerr := f.Close()
		rerr := os.Remove(path)
		if cerr != nil {
			return cerr
		}
		return rerr
	}

	if _, err := f.Write(data); err != nil {
		closeFn()
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		closeFn()
		return nil, err
	}

	return &Segment{Kind: kind, Extension: extension[kind], Handle: f, close: closeFn}, nil
}
