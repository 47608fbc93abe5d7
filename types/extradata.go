package types

import (
	"fmt"
	"io"
)

// ExtraData block signatures (spec.md §4.6).
const (
	SigConsoleData             uint32 = 0xA0000002
	SigConsoleFEData           uint32 = 0xA0000004
	SigDarwinData              uint32 = 0xA0000006
	SigEnvironmentVariableData uint32 = 0xA0000001
	SigIconEnvironmentData     uint32 = 0xA0000007
	SigKnownFolderData         uint32 = 0xA000000B
	SigPropertyStoreData       uint32 = 0xA0000009
	SigShimData                uint32 = 0xA0000008
	SigSpecialFolderData       uint32 = 0xA0000005
	SigTrackerData             uint32 = 0xA0000003
	SigVistaAndAboveIDListData uint32 = 0xA000000C
)

const extraDataBlockHeader = 8 // size(4) + signature(4)

// ConsoleDataBlock is the ConsoleData extra-data block (spec.md §4.6).
type ConsoleDataBlock struct {
	FillAttributes      uint16
	PopupFillAttributes uint16
	ScreenBufferSizeX   uint16
	ScreenBufferSizeY   uint16
	WindowSizeX         uint16
	WindowSizeY         uint16
	WindowOriginX       uint16
	WindowOriginY       uint16
	FontSize            uint32
	FontFamily          uint32
	FontWeight          uint32
	FaceName            [32]uint16 // 64 bytes
	CursorSize          uint32
	FullScreen          uint32
	QuickEdit           uint32
	InsertMode          uint32
	AutoPosition        uint32
	HistoryBufferSize   uint32
	HistoryBufferCount  uint32
	HistoryNoDup        uint32
	ColorTable          [16]uint32
}

const consoleDataSize = 0xCC

func decodeConsoleData(r io.Reader) (*ConsoleDataBlock, error) {
	b := &ConsoleDataBlock{}
	var err error
	if b.FillAttributes, err = ReadUint16(r); err != nil {
		return nil, err
	}
	if b.PopupFillAttributes, err = ReadUint16(r); err != nil {
		return nil, err
	}
	for _, f := range []*uint16{&b.ScreenBufferSizeX, &b.ScreenBufferSizeY, &b.WindowSizeX, &b.WindowSizeY, &b.WindowOriginX, &b.WindowOriginY} {
		if *f, err = ReadUint16(r); err != nil {
			return nil, err
		}
	}
	if _, err = ReadBytes(r, 8); err != nil { // reserved
		return nil, err
	}
	for _, f := range []*uint32{&b.FontSize, &b.FontFamily, &b.FontWeight} {
		if *f, err = ReadUint32(r); err != nil {
			return nil, err
		}
	}
	face, err := ReadWideString(r, 64)
	if err != nil {
		return nil, err
	}
	copy(b.FaceName[:], face)
	for _, f := range []*uint32{&b.CursorSize, &b.FullScreen, &b.QuickEdit, &b.InsertMode, &b.AutoPosition, &b.HistoryBufferSize, &b.HistoryBufferCount, &b.HistoryNoDup} {
		if *f, err = ReadUint32(r); err != nil {
			return nil, err
		}
	}
	for i := range b.ColorTable {
		if b.ColorTable[i], err = ReadUint32(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b ConsoleDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, consoleDataSize); err != nil {
		return err
	}
	if err := WriteUint32(w, SigConsoleData); err != nil {
		return err
	}
	if err := WriteUint16(w, b.FillAttributes); err != nil {
		return err
	}
	if err := WriteUint16(w, b.PopupFillAttributes); err != nil {
		return err
	}
	for _, v := range []uint16{b.ScreenBufferSizeX, b.ScreenBufferSizeY, b.WindowSizeX, b.WindowSizeY, b.WindowOriginX, b.WindowOriginY} {
		if err := WriteUint16(w, v); err != nil {
			return err
		}
	}
	if _, err := w.Write(make([]byte, 8)); err != nil {
		return WrapIO(err, "write console reserved")
	}
	for _, v := range []uint32{b.FontSize, b.FontFamily, b.FontWeight} {
		if err := WriteUint32(w, v); err != nil {
			return err
		}
	}
	if err := WriteWideString(w, b.FaceName[:]); err != nil {
		return err
	}
	for _, v := range []uint32{b.CursorSize, b.FullScreen, b.QuickEdit, b.InsertMode, b.AutoPosition, b.HistoryBufferSize, b.HistoryBufferCount, b.HistoryNoDup} {
		if err := WriteUint32(w, v); err != nil {
			return err
		}
	}
	for _, v := range b.ColorTable {
		if err := WriteUint32(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleFEDataBlock is the ConsoleFEData extra-data block.
type ConsoleFEDataBlock struct {
	CodePage uint32
}

const consoleFEDataSize = 0x0C

func decodeConsoleFEData(r io.Reader) (*ConsoleFEDataBlock, error) {
	cp, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	return &ConsoleFEDataBlock{CodePage: cp}, nil
}

func (b ConsoleFEDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, consoleFEDataSize); err != nil {
		return err
	}
	if err := WriteUint32(w, SigConsoleFEData); err != nil {
		return err
	}
	return WriteUint32(w, b.CodePage)
}

// dualTargetBlock is the shared 260-byte-ansi + 520-byte-wide payload
// shape of DarwinData, EnvironmentVariableData and IconEnvironmentData.
type dualTargetBlock struct {
	Target     [260]byte
	TargetWide [260]uint16 // 520 bytes
}

const dualTargetDataSize = 0x314

func decodeDualTarget(r io.Reader) (*dualTargetBlock, error) {
	b := &dualTargetBlock{}
	ansi, err := ReadBytes(r, 260)
	if err != nil {
		return nil, err
	}
	copy(b.Target[:], ansi)
	wide, err := ReadWideString(r, 520)
	if err != nil {
		return nil, err
	}
	copy(b.TargetWide[:], wide)
	return b, nil
}

func (b dualTargetBlock) encode(w io.Writer, sig uint32) error {
	if err := WriteUint32(w, dualTargetDataSize); err != nil {
		return err
	}
	if err := WriteUint32(w, sig); err != nil {
		return err
	}
	if _, err := w.Write(b.Target[:]); err != nil {
		return WrapIO(err, "write ansi target")
	}
	return WriteWideString(w, b.TargetWide[:])
}

// padRight right-pads s with zeros to 260 bytes, truncating if longer.
func padRight(s []byte) [260]byte {
	var out [260]byte
	copy(out[:], s)
	return out
}

// padRightWide right-pads units with zero code units to 260 units (520
// bytes), truncating if longer.
func padRightWide(units []uint16) [260]uint16 {
	var out [260]uint16
	copy(out[:], units)
	return out
}

// DarwinDataBlock is the DarwinData extra-data block.
type DarwinDataBlock struct{ dualTargetBlock }

// SetDarwinID sets the 8-bit identifier (right-padded to 260 bytes)
// and the wide identifier (right-padded to 260 code units), per
// spec.md §4.7's fixed-size-payload padding rule.
func (b *DarwinDataBlock) SetDarwinID(ansi []byte, wide []uint16) {
	b.Target = padRight(ansi)
	b.TargetWide = padRightWide(wide)
}

func decodeDarwinData(r io.Reader) (*DarwinDataBlock, error) {
	d, err := decodeDualTarget(r)
	if err != nil {
		return nil, err
	}
	return &DarwinDataBlock{*d}, nil
}

func (b DarwinDataBlock) encode(w io.Writer) error { return b.dualTargetBlock.encode(w, SigDarwinData) }

// EnvironmentVariableDataBlock is the EnvironmentVariableData block.
type EnvironmentVariableDataBlock struct{ dualTargetBlock }

// SetTarget sets the 8-bit and wide target buffers, right-padded to
// their fixed 260-unit width.
func (b *EnvironmentVariableDataBlock) SetTarget(ansi []byte, wide []uint16) {
	b.Target = padRight(ansi)
	b.TargetWide = padRightWide(wide)
}

func decodeEnvironmentVariableData(r io.Reader) (*EnvironmentVariableDataBlock, error) {
	d, err := decodeDualTarget(r)
	if err != nil {
		return nil, err
	}
	return &EnvironmentVariableDataBlock{*d}, nil
}

func (b EnvironmentVariableDataBlock) encode(w io.Writer) error {
	return b.dualTargetBlock.encode(w, SigEnvironmentVariableData)
}

// IconEnvironmentDataBlock is the IconEnvironmentData block.
type IconEnvironmentDataBlock struct{ dualTargetBlock }

// SetTarget sets the 8-bit and wide icon target buffers, right-padded
// to their fixed 260-unit width.
func (b *IconEnvironmentDataBlock) SetTarget(ansi []byte, wide []uint16) {
	b.Target = padRight(ansi)
	b.TargetWide = padRightWide(wide)
}

func decodeIconEnvironmentData(r io.Reader) (*IconEnvironmentDataBlock, error) {
	d, err := decodeDualTarget(r)
	if err != nil {
		return nil, err
	}
	return &IconEnvironmentDataBlock{*d}, nil
}

func (b IconEnvironmentDataBlock) encode(w io.Writer) error {
	return b.dualTargetBlock.encode(w, SigIconEnvironmentData)
}

// KnownFolderDataBlock is the KnownFolderData extra-data block.
type KnownFolderDataBlock struct {
	FolderID GUID
	Offset   uint32
}

const knownFolderDataSize = 0x1C

func decodeKnownFolderData(r io.Reader) (*KnownFolderDataBlock, error) {
	id, err := ReadBytes(r, 16)
	if err != nil {
		return nil, err
	}
	off, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	b := &KnownFolderDataBlock{Offset: off}
	copy(b.FolderID[:], id)
	return b, nil
}

func (b KnownFolderDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, knownFolderDataSize); err != nil {
		return err
	}
	if err := WriteUint32(w, SigKnownFolderData); err != nil {
		return err
	}
	if _, err := w.Write(b.FolderID[:]); err != nil {
		return WrapIO(err, "write known folder id")
	}
	return WriteUint32(w, b.Offset)
}

// PropertyStoreDataBlock is the PropertyStoreData extra-data block: an
// opaque serialized property-store payload this library never
// interprets.
type PropertyStoreDataBlock struct {
	Payload []byte
}

const propertyStoreMinSize = 0x0C

func decodePropertyStoreData(r io.Reader, size uint32) (*PropertyStoreDataBlock, error) {
	if size < propertyStoreMinSize {
		return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("property store size=%d below minimum", size))
	}
	payload, err := ReadBytes(r, int(size)-extraDataBlockHeader)
	if err != nil {
		return nil, err
	}
	return &PropertyStoreDataBlock{Payload: payload}, nil
}

func (b PropertyStoreDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, uint32(extraDataBlockHeader+len(b.Payload))); err != nil {
		return err
	}
	if err := WriteUint32(w, SigPropertyStoreData); err != nil {
		return err
	}
	if _, err := w.Write(b.Payload); err != nil {
		return WrapIO(err, "write property store payload")
	}
	return nil
}

// ShimDataBlock is the ShimData extra-data block: a wide layer-name
// payload.
type ShimDataBlock struct {
	LayerName []uint16
}

const shimDataMinSize = 0x88

func decodeShimData(r io.Reader, size uint32) (*ShimDataBlock, error) {
	if size < shimDataMinSize {
		return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("shim data size=%d below minimum", size))
	}
	n := int(size) - extraDataBlockHeader
	if n%2 != 0 {
		return nil, NewError(ReasonExtraDataWrongSize, "shim data payload is not a whole number of wide code units")
	}
	units, err := ReadWideString(r, n)
	if err != nil {
		return nil, err
	}
	return &ShimDataBlock{LayerName: units}, nil
}

// SetLayerName sets the layer name, measuring the supplied buffer's
// length by scanning to its wide NUL terminator (spec.md §4.7).
func (b *ShimDataBlock) SetLayerName(units []uint16) {
	b.LayerName = append([]uint16(nil), units[:WideLen(units)]...)
}

func (b ShimDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, uint32(extraDataBlockHeader+len(b.LayerName)*2)); err != nil {
		return err
	}
	if err := WriteUint32(w, SigShimData); err != nil {
		return err
	}
	return WriteWideString(w, b.LayerName)
}

// SpecialFolderDataBlock is the SpecialFolderData extra-data block.
type SpecialFolderDataBlock struct {
	SpecialFolderID uint32
	Offset          uint32
}

const specialFolderDataSize = 0x10

func decodeSpecialFolderData(r io.Reader) (*SpecialFolderDataBlock, error) {
	id, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	off, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	return &SpecialFolderDataBlock{SpecialFolderID: id, Offset: off}, nil
}

func (b SpecialFolderDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, specialFolderDataSize); err != nil {
		return err
	}
	if err := WriteUint32(w, SigSpecialFolderData); err != nil {
		return err
	}
	if err := WriteUint32(w, b.SpecialFolderID); err != nil {
		return err
	}
	return WriteUint32(w, b.Offset)
}

// TrackerDataBlock is the TrackerData extra-data block.
type TrackerDataBlock struct {
	MachineID  [16]byte
	Droid      [32]byte
	DroidBirth [32]byte
}

const (
	trackerDataSize    = 0x60
	trackerDataLength  = 0x58
	trackerDataVersion = 0
)

func decodeTrackerData(r io.Reader) (*TrackerDataBlock, error) {
	length, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	if length != trackerDataLength {
		return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("tracker length=%#x want %#x", length, trackerDataLength))
	}
	version, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	if version != trackerDataVersion {
		return nil, NewError(ReasonTrackerWrongVersion, fmt.Sprintf("tracker version=%d want 0", version))
	}
	b := &TrackerDataBlock{}
	machineID, err := ReadBytes(r, 16)
	if err != nil {
		return nil, err
	}
	copy(b.MachineID[:], machineID)
	droid, err := ReadBytes(r, 32)
	if err != nil {
		return nil, err
	}
	copy(b.Droid[:], droid)
	droidBirth, err := ReadBytes(r, 32)
	if err != nil {
		return nil, err
	}
	copy(b.DroidBirth[:], droidBirth)
	return b, nil
}

func (b TrackerDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, trackerDataSize); err != nil {
		return err
	}
	if err := WriteUint32(w, SigTrackerData); err != nil {
		return err
	}
	if err := WriteUint32(w, trackerDataLength); err != nil {
		return err
	}
	if err := WriteUint32(w, trackerDataVersion); err != nil {
		return err
	}
	if _, err := w.Write(b.MachineID[:]); err != nil {
		return WrapIO(err, "write tracker machine id")
	}
	if _, err := w.Write(b.Droid[:]); err != nil {
		return WrapIO(err, "write tracker droid")
	}
	if _, err := w.Write(b.DroidBirth[:]); err != nil {
		return WrapIO(err, "write tracker droid birth")
	}
	return nil
}

// VistaAndAboveIDListDataBlock embeds a full IdList (spec.md §4.6,
// §4.7). Two reserved zero bytes follow the block header, before the
// embedded list's own self-contained total_size/items/terminator
// encoding, which is what makes the block's declared size equal
// 10 + the embedded list's on-disk byte length rather than 8 + that
// length as every other variant uses.
type VistaAndAboveIDListDataBlock struct {
	IdList IdList
}

const vistaAndAboveIDListMinSize = 0x0A

func decodeVistaAndAboveIDListData(r io.Reader, size uint32) (*VistaAndAboveIDListDataBlock, error) {
	if size < vistaAndAboveIDListMinSize {
		return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("vista id list size=%d below minimum", size))
	}
	if _, err := ReadBytes(r, 2); err != nil { // reserved
		return nil, err
	}
	l, err := DecodeIdList(r)
	if err != nil {
		return nil, err
	}
	return &VistaAndAboveIDListDataBlock{IdList: *l}, nil
}

func (b VistaAndAboveIDListDataBlock) encode(w io.Writer) error {
	if err := WriteUint32(w, uint32(10)+uint32(b.IdList.TotalSize())); err != nil {
		return err
	}
	if err := WriteUint32(w, SigVistaAndAboveIDListData); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0, 0}); err != nil {
		return WrapIO(err, "write vista id list reserved")
	}
	return b.IdList.Encode(w)
}

// ExtraDataChain is the ordered, signature-dispatched chain of
// optional typed blocks terminated by a four-byte zero sentinel
// (spec.md §4.6). A nil field means the corresponding block is
// absent.
type ExtraDataChain struct {
	Console             *ConsoleDataBlock
	ConsoleFE           *ConsoleFEDataBlock
	Darwin              *DarwinDataBlock
	EnvironmentVariable *EnvironmentVariableDataBlock
	IconEnvironment     *IconEnvironmentDataBlock
	KnownFolder         *KnownFolderDataBlock
	PropertyStore       *PropertyStoreDataBlock
	Shim                *ShimDataBlock
	SpecialFolder       *SpecialFolderDataBlock
	Tracker             *TrackerDataBlock
	VistaAndAboveIDList *VistaAndAboveIDListDataBlock
}

// DecodeExtraDataChain reads blocks until the zero-size terminator
// (spec.md §4.6). The terminator is always required, even after all
// eleven distinct block variants have been consumed: at most eleven
// signatures are valid, so a twelfth nonzero read can only be a
// duplicate or an unknown signature, both already rejected below.
func DecodeExtraDataChain(r io.Reader) (*ExtraDataChain, error) {
	chain := &ExtraDataChain{}
	seen := map[uint32]bool{}
	for {
		size, err := ReadUint32(r)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return chain, nil
		}
		sig, err := ReadUint32(r)
		if err != nil {
			return nil, err
		}
		if seen[sig] {
			return nil, NewError(ReasonDuplicateExtraDataBlock, fmt.Sprintf("signature %#x repeated", sig))
		}
		seen[sig] = true

		switch sig {
		case SigConsoleData:
			if size != consoleDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("console data size=%#x want %#x", size, consoleDataSize))
			}
			chain.Console, err = decodeConsoleData(r)
		case SigConsoleFEData:
			if size != consoleFEDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("console fe data size=%#x want %#x", size, consoleFEDataSize))
			}
			chain.ConsoleFE, err = decodeConsoleFEData(r)
		case SigDarwinData:
			if size != dualTargetDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("darwin data size=%#x want %#x", size, dualTargetDataSize))
			}
			chain.Darwin, err = decodeDarwinData(r)
		case SigEnvironmentVariableData:
			if size != dualTargetDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("environment variable data size=%#x want %#x", size, dualTargetDataSize))
			}
			chain.EnvironmentVariable, err = decodeEnvironmentVariableData(r)
		case SigIconEnvironmentData:
			if size != dualTargetDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("icon environment data size=%#x want %#x", size, dualTargetDataSize))
			}
			chain.IconEnvironment, err = decodeIconEnvironmentData(r)
		case SigKnownFolderData:
			if size != knownFolderDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("known folder data size=%#x want %#x", size, knownFolderDataSize))
			}
			chain.KnownFolder, err = decodeKnownFolderData(r)
		case SigPropertyStoreData:
			chain.PropertyStore, err = decodePropertyStoreData(r, size)
		case SigShimData:
			chain.Shim, err = decodeShimData(r, size)
		case SigSpecialFolderData:
			if size != specialFolderDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("special folder data size=%#x want %#x", size, specialFolderDataSize))
			}
			chain.SpecialFolder, err = decodeSpecialFolderData(r)
		case SigTrackerData:
			if size != trackerDataSize {
				return nil, NewError(ReasonExtraDataWrongSize, fmt.Sprintf("tracker data size=%#x want %#x", size, trackerDataSize))
			}
			chain.Tracker, err = decodeTrackerData(r)
		case SigVistaAndAboveIDListData:
			chain.VistaAndAboveIDList, err = decodeVistaAndAboveIDListData(r, size)
		default:
			return nil, NewError(ReasonUnknownExtraDataSignature, fmt.Sprintf("signature %#x", sig))
		}
		if err != nil {
			return nil, err
		}
	}
}

// Encode writes every present block in the canonical order of
// spec.md §4.6's table, then the four-byte zero terminator.
func (c ExtraDataChain) Encode(w io.Writer) error {
	if c.Console != nil {
		if err := c.Console.encode(w); err != nil {
			return err
		}
	}
	if c.ConsoleFE != nil {
		if err := c.ConsoleFE.encode(w); err != nil {
			return err
		}
	}
	if c.Darwin != nil {
		if err := c.Darwin.encode(w); err != nil {
			return err
		}
	}
	if c.EnvironmentVariable != nil {
		if err := c.EnvironmentVariable.encode(w); err != nil {
			return err
		}
	}
	if c.IconEnvironment != nil {
		if err := c.IconEnvironment.encode(w); err != nil {
			return err
		}
	}
	if c.KnownFolder != nil {
		if err := c.KnownFolder.encode(w); err != nil {
			return err
		}
	}
	if c.PropertyStore != nil {
		if err := c.PropertyStore.encode(w); err != nil {
			return err
		}
	}
	if c.Shim != nil {
		if err := c.Shim.encode(w); err != nil {
			return err
		}
	}
	if c.SpecialFolder != nil {
		if err := c.SpecialFolder.encode(w); err != nil {
			return err
		}
	}
	if c.Tracker != nil {
		if err := c.Tracker.encode(w); err != nil {
			return err
		}
	}
	if c.VistaAndAboveIDList != nil {
		if err := c.VistaAndAboveIDList.encode(w); err != nil {
			return err
		}
	}
	return WriteUint32(w, 0)
}
