// This file contains Delphi-specific scalar conversions: TDateTime and
// the four-field GUID encoding.

package xgprim

import (
	"fmt"
	"math"
	"time"
)

// delphiEpoch is the zero point of Delphi's TDateTime: midnight, Dec 30 1899.
var delphiEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DelphiDateTime converts a Delphi TDateTime (days since 1899-12-30, with
// the fractional part representing a fraction of a day) to a calendar
// timestamp. Fractional seconds are discarded, matching the source's
// int-truncating conversion.
func DelphiDateTime(x float64) time.Time {
	days := math.Floor(x)
	secs := math.Floor(86400 * (x - days))
	return delphiEpoch.
		Add(time.Duration(days) * 24 * time.Hour).
		Add(time.Duration(secs) * time.Second)
}

// DelphiGUID composes a GUID string from Delphi's four-field-plus-tail
// encoding: a uint32, two uint16s, two bytes, and a 6-byte tail. The
// fourth group is d, e followed by the first two bytes of tail; the last
// group is the remaining four bytes of tail.
func DelphiGUID(a uint32, b, c uint16, d, e byte, tail [6]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x%02x%02x-%02x%02x%02x%02x",
		a, b, c, d, e, tail[0], tail[1], tail[2], tail[3], tail[4], tail[5])
}
