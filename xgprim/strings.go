// This file contains decoders for legacy Delphi string encodings:
// Pascal short strings and null-terminated fixed UTF-16 arrays.

package xgprim

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// PascalShortString decodes a Delphi Pascal shortstring: byte 0 is the
// length L, bytes [1, 1+L) are the payload, and any bytes beyond that
// within the fixed-size field are unspecified filler. The payload is a
// legacy Windows ANSI (code page 1252) byte string, matching what Delphi
// writes for a Windows application's default locale.
func PascalShortString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	l := int(b[0])
	if l > len(b)-1 {
		l = len(b) - 1
	}
	payload := b[1 : 1+l]

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(payload)
	if err != nil {
		// Fields this malformed are vanishingly rare; fall back to a
		// byte-for-byte cast rather than failing the whole record.
		return string(payload)
	}
	return string(decoded)
}

// UTF16NullTerminated decodes a fixed array of little-endian UTF-16 code
// units, returning the text up to (but excluding) the first zero code
// unit. Surrogate pairs decode to a single rune; an unpaired surrogate
// decodes to U+FFFD.
func UTF16NullTerminated(units []uint16) string {
	n := 0
	for n < len(units) && units[n] != 0 {
		n++
	}
	return string(utf16.Decode(units[:n]))
}
