package xgprim

import "testing"

func TestDelphiDateTimeEpoch(t *testing.T) {
	// P7: delphi_datetime(25569.0) = 1970-01-01T00:00:00Z
	got := DelphiDateTime(25569.0)
	if got.Unix() != 0 {
		t.Errorf("DelphiDateTime(25569.0) = %v, want 1970-01-01T00:00:00Z (unix 0)", got)
	}
}

func TestDelphiDateTimeDayStep(t *testing.T) {
	// P8: adding one full day advances exactly 86400 seconds.
	x := 25569.25
	a := DelphiDateTime(x)
	b := DelphiDateTime(x + 1)
	if got := b.Unix() - a.Unix(); got != 86400 {
		t.Errorf("day step = %v seconds, want 86400", got)
	}
}

func TestDelphiGUIDFormat(t *testing.T) {
	got := DelphiGUID(0x12345678, 0x9ABC, 0xDEF0, 0x11, 0x22, [6]byte{0x33, 0x44, 0x55, 0x66, 0x77, 0x88})
	want := "12345678-9abc-def0-11223344-55667788"
	if got != want {
		t.Errorf("DelphiGUID() = %q, want %q", got, want)
	}
}
