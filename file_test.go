package shelllink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/appsworld/go-shelllink/types"
)

// minimalHeaderBytes returns the 76-byte encoding of an all-zero
// Header plus a 4-byte extra-data terminator (spec.md §8, S1).
func minimalHeaderBytes() []byte {
	var buf bytes.Buffer
	h := types.NewHeader()
	if err := h.Encode(&buf); err != nil {
		panic(err)
	}
	buf.Write([]byte{0, 0, 0, 0})
	return buf.Bytes()
}

func TestLoadWriteMinimal(t *testing.T) {
	input := minimalHeaderBytes()

	sl, err := Load(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sl.IdList != nil || sl.LinkInfo != nil {
		t.Fatalf("expected all optional sections absent, got IdList=%v LinkInfo=%v", sl.IdList, sl.LinkInfo)
	}
	if sl.Header.ShowCommand != types.ShowNormal {
		t.Fatalf("ShowCommand = %v, want ShowNormal", sl.Header.ShowCommand)
	}

	var out bytes.Buffer
	if err := sl.Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if diff := cmp.Diff(input, out.Bytes()); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHotKeyRoundTrip(t *testing.T) {
	sl, err := Load(bytes.NewReader(minimalHeaderBytes()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sl.Header.HotKey = types.NewHotKey(0x43, types.HotKeyControl)
	if sl.Header.HotKey != 0x0243 {
		t.Fatalf("HotKey = %#04x, want 0x0243", uint16(sl.Header.HotKey))
	}

	var out bytes.Buffer
	if err := sl.Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	back, err := Load(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Load (round-trip): %v", err)
	}
	if back.Header.HotKey != 0x0243 {
		t.Fatalf("round-tripped HotKey = %#04x, want 0x0243", uint16(back.Header.HotKey))
	}
}

func TestHotKeyModifierValues(t *testing.T) {
	if types.HotKeyShift != 0x01 {
		t.Fatalf("HotKeyShift = %#x, want 0x01", byte(types.HotKeyShift))
	}
	if types.HotKeyControl != 0x02 {
		t.Fatalf("HotKeyControl = %#x, want 0x02", byte(types.HotKeyControl))
	}
	if types.HotKeyAlt != 0x03 {
		t.Fatalf("HotKeyAlt = %#x, want 0x03", byte(types.HotKeyAlt))
	}
}

func TestIdListSetAddRemove(t *testing.T) {
	sl, err := Load(bytes.NewReader(minimalHeaderBytes()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sl.AppendIdListItem([]byte{0x01, 0x02, 0x03})
	if got, want := sl.IdList.TotalSize(), uint16(9); got != want {
		t.Fatalf("total_size after first append = %d, want %d", got, want)
	}
	sl.AppendIdListItem([]byte{0xAA, 0xBB})
	if got, want := sl.IdList.TotalSize(), uint16(13); got != want {
		t.Fatalf("total_size after second append = %d, want %d", got, want)
	}
	if err := sl.RemoveIdListItem(0); err != nil {
		t.Fatalf("RemoveIdListItem: %v", err)
	}
	if got, want := sl.IdList.TotalSize(), uint16(8); got != want {
		t.Fatalf("total_size after remove = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]byte{0xAA, 0xBB}, sl.IdList.Items[0].Payload); diff != "" {
		t.Fatalf("remaining item payload mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateExtraDataBlockRejected(t *testing.T) {
	var buf bytes.Buffer
	h := types.NewHeader()
	if err := h.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	cfe := func(codePage uint32) []byte {
		var b bytes.Buffer
		_ = types.WriteUint32(&b, 0x0C)
		_ = types.WriteUint32(&b, types.SigConsoleFEData)
		_ = types.WriteUint32(&b, codePage)
		return b.Bytes()
	}
	buf.Write(cfe(437))
	buf.Write(cfe(850))
	buf.Write([]byte{0, 0, 0, 0})

	_, err := Load(bytes.NewReader(buf.Bytes()))
	if err == nil {
		t.Fatal("expected duplicate extra-data error, got nil")
	}
	var se *types.Error
	if !errors.As(err, &se) || se.Reason != types.ReasonDuplicateExtraDataBlock {
		t.Fatalf("error = %v, want ReasonDuplicateExtraDataBlock", err)
	}
}

func TestTrackerDataLengthAndVersionChecks(t *testing.T) {
	build := func(length, version uint32) []byte {
		var buf bytes.Buffer
		h := types.NewHeader()
		_ = h.Encode(&buf)
		_ = types.WriteUint32(&buf, 0x60)
		_ = types.WriteUint32(&buf, types.SigTrackerData)
		_ = types.WriteUint32(&buf, length)
		_ = types.WriteUint32(&buf, version)
		buf.Write(make([]byte, 16+32+32))
		buf.Write([]byte{0, 0, 0, 0})
		return buf.Bytes()
	}

	if _, err := Load(bytes.NewReader(build(0x58, 0))); err != nil {
		t.Fatalf("valid TrackerData should load: %v", err)
	}

	_, err := Load(bytes.NewReader(build(0x57, 0)))
	var se *types.Error
	if !errors.As(err, &se) || se.Reason != types.ReasonExtraDataWrongSize {
		t.Fatalf("bad length error = %v, want ReasonExtraDataWrongSize", err)
	}

	_, err = Load(bytes.NewReader(build(0x58, 1)))
	if !errors.As(err, &se) || se.Reason != types.ReasonTrackerWrongVersion {
		t.Fatalf("bad version error = %v, want ReasonTrackerWrongVersion", err)
	}
}

func TestStringDataWideEncoding(t *testing.T) {
	sl := New()
	sl.SetName([]uint16{'H', 'e', 'l', 'l', 'o'}, 5)

	var buf bytes.Buffer
	if err := sl.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	body := buf.Bytes()[76:] // skip the 76-byte header
	want := []byte{0x05, 0x00, 0x48, 0x00, 0x65, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x6F, 0x00}
	if diff := cmp.Diff(want, body[:len(want)]); diff != "" {
		t.Fatalf("StringData bytes mismatch (-want +got):\n%s", diff)
	}

	back, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]uint16{'H', 'e', 'l', 'l', 'o'}, back.StringData.Name); diff != "" {
		t.Fatalf("Name mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderSizeAndClassIDBoundaryErrors(t *testing.T) {
	good := minimalHeaderBytes()

	badSize := append([]byte(nil), good...)
	badSize[0] = 0x00 // corrupt header_size's low byte
	_, err := Load(bytes.NewReader(badSize))
	var se *types.Error
	if !errors.As(err, &se) || se.Reason != types.ReasonWrongHeaderSize {
		t.Fatalf("bad header_size error = %v, want ReasonWrongHeaderSize", err)
	}

	badClass := append([]byte(nil), good...)
	badClass[4] ^= 0xFF // corrupt the first CLSID byte
	_, err = Load(bytes.NewReader(badClass))
	if !errors.As(err, &se) || se.Reason != types.ReasonWrongClassID {
		t.Fatalf("bad class id error = %v, want ReasonWrongClassID", err)
	}
}

func TestLinkInfoHeaderSizeBoundary(t *testing.T) {
	var buf bytes.Buffer
	h := types.NewHeader()
	h.LinkFlags |= types.HasLinkInfo
	if err := h.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	_ = types.WriteUint32(&buf, 0x1A)  // link_info_size
	_ = types.WriteUint32(&buf, 0x1D) // invalid link_info_header_size
	_ = types.WriteUint32(&buf, 0)
	_ = types.WriteUint32(&buf, 0)
	_ = types.WriteUint32(&buf, 0)
	_ = types.WriteUint32(&buf, 0)
	_ = types.WriteUint32(&buf, 0)

	_, err := Load(bytes.NewReader(buf.Bytes()))
	var se *types.Error
	if !errors.As(err, &se) || se.Reason != types.ReasonInvalidLinkInfoHeaderSize {
		t.Fatalf("error = %v, want ReasonInvalidLinkInfoHeaderSize", err)
	}
}

func TestNilTargetRejected(t *testing.T) {
	var sl *ShellLink
	var se *types.Error

	err := sl.Write(&bytes.Buffer{})
	if !errors.As(err, &se) || se.Reason != types.ReasonNilTarget {
		t.Fatalf("Write on nil *ShellLink = %v, want ReasonNilTarget", err)
	}

	err = Create(t.TempDir()+"/x.lnk", nil)
	if !errors.As(err, &se) || se.Reason != types.ReasonNilTarget {
		t.Fatalf("Create with nil *ShellLink = %v, want ReasonNilTarget", err)
	}
}
