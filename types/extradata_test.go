package types

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtraDataChainRoundTrip(t *testing.T) {
	chain := &ExtraDataChain{
		ConsoleFE:     &ConsoleFEDataBlock{CodePage: 437},
		Tracker:       &TrackerDataBlock{},
		SpecialFolder: &SpecialFolderDataBlock{SpecialFolderID: 5, Offset: 0x1C},
	}
	chain.Tracker.MachineID = [16]byte{1, 2, 3}
	chain.Tracker.Droid = [32]byte{4, 5, 6}
	chain.Tracker.DroidBirth = [32]byte{7, 8, 9}

	var buf bytes.Buffer
	if err := chain.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeExtraDataChain(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeExtraDataChain: %v", err)
	}
	if diff := cmp.Diff(chain, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExtraDataChainEmptyIsJustTerminator(t *testing.T) {
	var buf bytes.Buffer
	if err := (ExtraDataChain{}).Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff([]byte{0, 0, 0, 0}, buf.Bytes()); diff != "" {
		t.Fatalf("bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestExtraDataUnknownSignature(t *testing.T) {
	var buf bytes.Buffer
	WriteUint32(&buf, 8)
	WriteUint32(&buf, 0xDEADBEEF)

	_, err := DecodeExtraDataChain(bytes.NewReader(buf.Bytes()))
	assertReason(t, err, ReasonUnknownExtraDataSignature)
}

func TestExtraDataDuplicateSignature(t *testing.T) {
	cfe := func(codePage uint32) []byte {
		var b bytes.Buffer
		WriteUint32(&b, consoleFEDataSize)
		WriteUint32(&b, SigConsoleFEData)
		WriteUint32(&b, codePage)
		return b.Bytes()
	}
	var buf bytes.Buffer
	buf.Write(cfe(437))
	buf.Write(cfe(850))
	WriteUint32(&buf, 0)

	_, err := DecodeExtraDataChain(bytes.NewReader(buf.Bytes()))
	assertReason(t, err, ReasonDuplicateExtraDataBlock)
}

func TestExtraDataWrongSize(t *testing.T) {
	var buf bytes.Buffer
	WriteUint32(&buf, consoleFEDataSize+4) // wrong size for ConsoleFEData
	WriteUint32(&buf, SigConsoleFEData)
	buf.Write(make([]byte, 8))

	_, err := DecodeExtraDataChain(bytes.NewReader(buf.Bytes()))
	assertReason(t, err, ReasonExtraDataWrongSize)
}

func TestVistaAndAboveIDListRoundTrip(t *testing.T) {
	block := &VistaAndAboveIDListDataBlock{}
	block.IdList.AppendItem([]byte{0x01, 0x02})

	var buf bytes.Buffer
	if err := block.encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := decodeVistaAndAboveIDListData(bytes.NewReader(buf.Bytes()[8:]), uint32(buf.Len()))
	if err != nil {
		t.Fatalf("decodeVistaAndAboveIDListData: %v", err)
	}
	if diff := cmp.Diff(block, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExtraDataChainRequiresTerminatorAfterEleventhBlock(t *testing.T) {
	chain := &ExtraDataChain{
		Console:             &ConsoleDataBlock{},
		ConsoleFE:           &ConsoleFEDataBlock{},
		Darwin:              &DarwinDataBlock{},
		EnvironmentVariable: &EnvironmentVariableDataBlock{},
		IconEnvironment:     &IconEnvironmentDataBlock{},
		KnownFolder:         &KnownFolderDataBlock{},
		PropertyStore:       &PropertyStoreDataBlock{Payload: make([]byte, 4)},
		Shim:                &ShimDataBlock{LayerName: make([]uint16, 64)},
		SpecialFolder:       &SpecialFolderDataBlock{},
		Tracker:             &TrackerDataBlock{},
		VistaAndAboveIDList: &VistaAndAboveIDListDataBlock{},
	}

	var buf bytes.Buffer
	if err := chain.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := DecodeExtraDataChain(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("well-formed 11-block chain should decode: %v", err)
	}

	// Corrupt the trailing 4-byte zero sentinel so it is no longer zero.
	malformed := append([]byte(nil), buf.Bytes()...)
	malformed[len(malformed)-4] = 0x01

	_, err := DecodeExtraDataChain(bytes.NewReader(malformed))
	if err == nil {
		t.Fatal("expected an error when the terminator after the 11th block is non-zero, got nil")
	}
}

func TestShimDataSetLayerNameScansToWideNul(t *testing.T) {
	b := &ShimDataBlock{}
	b.SetLayerName([]uint16{'a', 'b', 0, 'c'})
	if diff := cmp.Diff([]uint16{'a', 'b'}, b.LayerName); diff != "" {
		t.Fatalf("LayerName mismatch (-want +got):\n%s", diff)
	}
}
