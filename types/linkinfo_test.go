package types

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinkInfoRoundTripAnsiOnly(t *testing.T) {
	li := &LinkInfo{
		HeaderSize: 0x1C,
		Flags:      VolumeIDAndLocalBasePath | CommonNetworkRelativeLinkAndPathSuffix,
		VolumeID: &VolumeId{
			DriveType:   DriveFixed,
			DriveSerial: 0xDEADBEEF,
			LabelData:   []byte("SYSTEM\x00"),
		},
		LocalBasePath: `C:\Target`,
		CNRL: &CommonNetworkRelativeLink{
			NetworkProviderType: 0x1A0000,
			NetName:             `\\server\share`,
			DeviceName:          `Z:`,
		},
		CommonPathSuffix: "file.txt",
	}

	var buf bytes.Buffer
	if err := li.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeLinkInfo(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLinkInfo: %v", err)
	}
	if diff := cmp.Diff(li, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkInfoRoundTripWithUnicode(t *testing.T) {
	li := &LinkInfo{
		HeaderSize: 0x24,
		Flags:      VolumeIDAndLocalBasePath,
		VolumeID: &VolumeId{
			DriveType: DriveRemovable,
			LabelData: []byte{0},
		},
		LocalBasePath:           `C:\Target`,
		LocalBasePathUnicode:    []uint16{'C', ':', '\\', 'T', 'a', 'r', 'g', 'e', 't'},
		CommonPathSuffix:        "file.txt",
		CommonPathSuffixUnicode: []uint16{'f', 'i', 'l', 'e', '.', 't', 'x', 't'},
	}

	var buf bytes.Buffer
	if err := li.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeLinkInfo(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLinkInfo: %v", err)
	}
	if diff := cmp.Diff(li, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkInfoInvalidHeaderSize(t *testing.T) {
	var buf bytes.Buffer
	WriteUint32(&buf, 8)    // link_info_size: just enough body for the header_size field itself
	WriteUint32(&buf, 0x1D) // invalid link_info_header_size

	_, err := DecodeLinkInfo(bytes.NewReader(buf.Bytes()))
	assertReason(t, err, ReasonInvalidLinkInfoHeaderSize)
}

func TestVolumeIDSizeTooSmall(t *testing.T) {
	var buf bytes.Buffer
	WriteUint32(&buf, 16) // volume_id_size == prefix, must be > prefix
	WriteUint32(&buf, uint32(DriveFixed))
	WriteUint32(&buf, 0)
	WriteUint32(&buf, 0x10) // ansi label offset

	_, err := decodeVolumeId(bytes.NewReader(buf.Bytes()))
	assertReason(t, err, ReasonVolumeIDSizeTooSmall)
}
