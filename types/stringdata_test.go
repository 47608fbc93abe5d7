package types

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringDataRoundTripWide(t *testing.T) {
	sd := &StringData{
		Name:         []uint16{'H', 'e', 'l', 'l', 'o'},
		WorkingDir:   []uint16{'C', ':', '\\'},
		IconLocation: []uint16{'i', 'c', 'o'},
	}
	flags := sd.Flags()
	if !flags.Has(HasName) || !flags.Has(HasWorkingDir) || !flags.Has(HasIconLocation) || !flags.Has(IsUnicode) {
		t.Fatalf("Flags() = %v, missing expected bits", flags)
	}
	if flags.Has(HasRelativePath) || flags.Has(HasArguments) {
		t.Fatalf("Flags() = %v, unexpected bits set", flags)
	}

	var buf bytes.Buffer
	if err := sd.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeStringData(bytes.NewReader(buf.Bytes()), flags, true)
	if err != nil {
		t.Fatalf("DecodeStringData: %v", err)
	}
	if diff := cmp.Diff(sd, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStringDataDecodeAnsiNormalizesToWide(t *testing.T) {
	var buf bytes.Buffer
	WriteUint16(&buf, 2)
	buf.WriteString("ok")

	flags := HasName
	got, err := DecodeStringData(bytes.NewReader(buf.Bytes()), flags, false)
	if err != nil {
		t.Fatalf("DecodeStringData: %v", err)
	}
	if diff := cmp.Diff([]uint16{'o', 'k'}, got.Name); diff != "" {
		t.Fatalf("Name mismatch (-want +got):\n%s", diff)
	}
}

func TestStringDataSetterCountZeroReleases(t *testing.T) {
	sd := &StringData{}
	sd.SetArguments([]uint16{'a', 'b', 'c'}, 3)
	if diff := cmp.Diff([]uint16{'a', 'b', 'c'}, sd.Arguments); diff != "" {
		t.Fatalf("Arguments mismatch (-want +got):\n%s", diff)
	}
	sd.SetArguments([]uint16{'a', 'b', 'c'}, 0)
	if sd.Arguments != nil {
		t.Fatalf("Arguments = %v, want nil after count-0 release", sd.Arguments)
	}
}
