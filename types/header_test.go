package types

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader()
	h.LinkFlags = HasLinkTargetIDList | HasName
	h.FileAttributes = FileAttributeDirectory | FileAttributeReadOnly
	h.FileSize = 1234
	h.IconIndex = -1
	h.ShowCommand = ShowMaximized
	h.HotKey = NewHotKey('C', HotKeyControl|HotKeyShift)

	var buf bytes.Buffer
	if err := h.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != 76 {
		t.Fatalf("encoded header length = %d, want 76", buf.Len())
	}

	var got Header
	if err := got.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(h, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderWrongSize(t *testing.T) {
	h := NewHeader()
	var buf bytes.Buffer
	_ = h.Encode(&buf)
	b := buf.Bytes()
	b[0] = 0x00 // corrupt header_size

	var got Header
	err := got.Decode(bytes.NewReader(b))
	assertReason(t, err, ReasonWrongHeaderSize)
}

func TestHeaderWrongClassID(t *testing.T) {
	h := NewHeader()
	var buf bytes.Buffer
	_ = h.Encode(&buf)
	b := buf.Bytes()
	b[4] ^= 0xFF // corrupt CLSID

	var got Header
	err := got.Decode(bytes.NewReader(b))
	assertReason(t, err, ReasonWrongClassID)
}

func TestHeaderInvalidShowCommandCoercedToNormal(t *testing.T) {
	var buf bytes.Buffer
	h := NewHeader()
	_ = h.Encode(&buf)
	b := buf.Bytes()
	// show_command starts right after header_size(4)+clsid(16)+link_flags(4)+
	// file_attributes(4)+3*filetime(24)+file_size(4)+icon_index(4) = 60.
	b[60] = 0xFF
	b[61] = 0xFF
	b[62] = 0xFF
	b[63] = 0xFF

	var got Header
	if err := got.Decode(bytes.NewReader(b)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ShowCommand != ShowNormal {
		t.Fatalf("ShowCommand = %v, want ShowNormal", got.ShowCommand)
	}
}

func TestFileTimeRoundTrip(t *testing.T) {
	want := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	ft := FileTimeFromTime(want)
	got := ft.Time()
	if !got.Equal(want) {
		t.Fatalf("FileTime round-trip = %v, want %v", got, want)
	}
	if FileTime(0).Time().IsZero() == false {
		t.Fatalf("zero FileTime should convert to zero time.Time")
	}
	if FileTimeFromTime(time.Time{}) != 0 {
		t.Fatalf("zero time.Time should convert to zero FileTime")
	}
}

func TestLinkFlagSetAndList(t *testing.T) {
	var f LinkFlag
	f.Set(HasLinkInfo, true)
	f.Set(HasName, true)
	if !f.Has(HasLinkInfo) || !f.Has(HasName) {
		t.Fatalf("flags not set: %v", f)
	}
	f.Set(HasName, false)
	if f.Has(HasName) {
		t.Fatalf("HasName should be cleared")
	}
	list := f.List()
	if len(list) != 1 || list[0] != "HasLinkInfo" {
		t.Fatalf("List() = %v, want [HasLinkInfo]", list)
	}
}

// assertReason is a small helper shared by the types package's tests.
func assertReason(t *testing.T, err error, want Reason) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with reason %q, got nil", want)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if e.Reason != want {
		t.Fatalf("Reason = %q, want %q", e.Reason, want)
	}
}
