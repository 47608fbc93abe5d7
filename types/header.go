package types

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// HeaderSize is the only valid value of a shell link's header_size
// field (spec.md §3, invariant).
const HeaderSize uint32 = 0x0000004C

// Header is the fixed 76-byte shell link preamble (spec.md §3).
type Header struct {
	HeaderSize      uint32
	CLSID           GUID
	LinkFlags       LinkFlag
	FileAttributes  FileAttributeFlag
	CreationTime    FileTime
	AccessTime      FileTime
	WriteTime       FileTime
	FileSize        uint32
	IconIndex       int32
	ShowCommand     ShowCommand
	HotKey          HotKey
	Reserved1       uint16
	Reserved2       uint32
	Reserved3       uint32
}

// NewHeader returns a Header with the fixed invariant fields set and
// every optional/flag field cleared.
func NewHeader() Header {
	return Header{
		HeaderSize:  HeaderSize,
		CLSID:       ShellLinkClassID,
		ShowCommand: ShowNormal,
	}
}

// Decode reads and validates the 76-byte header. header_size and
// CLSID mismatches are fatal (spec.md §4.2); an out-of-range
// ShowCommand is coerced to ShowNormal on read, per spec.md §3.
func (h *Header) Decode(r io.Reader) error {
	size, err := ReadUint32(r)
	if err != nil {
		return err
	}
	if size != HeaderSize {
		return &Error{Reason: ReasonWrongHeaderSize, Detail: fmt.Sprintf("got 0x%08X", size)}
	}
	h.HeaderSize = size

	clsid, err := ReadBytes(r, 16)
	if err != nil {
		return err
	}
	copy(h.CLSID[:], clsid)
	if h.CLSID != ShellLinkClassID {
		return &Error{Reason: ReasonWrongClassID, Detail: fmt.Sprintf("got %s", h.CLSID)}
	}

	flags, err := ReadUint32(r)
	if err != nil {
		return err
	}
	h.LinkFlags = LinkFlag(flags)

	attrs, err := ReadUint32(r)
	if err != nil {
		return err
	}
	h.FileAttributes = FileAttributeFlag(attrs)

	for _, ft := range []*FileTime{&h.CreationTime, &h.AccessTime, &h.WriteTime} {
		v, err := ReadUint64(r)
		if err != nil {
			return err
		}
		*ft = FileTime(v)
	}

	fileSize, err := ReadUint32(r)
	if err != nil {
		return err
	}
	h.FileSize = fileSize

	iconIndex, err := ReadUint32(r)
	if err != nil {
		return err
	}
	h.IconIndex = int32(iconIndex)

	show, err := ReadUint32(r)
	if err != nil {
		return err
	}
	h.ShowCommand = ShowCommand(show)
	if !h.ShowCommand.Valid() {
		h.ShowCommand = ShowNormal
	}

	hotkey, err := ReadUint16(r)
	if err != nil {
		return err
	}
	h.HotKey = HotKey(hotkey)

	if h.Reserved1, err = ReadUint16(r); err != nil {
		return err
	}
	if h.Reserved2, err = ReadUint32(r); err != nil {
		return err
	}
	if h.Reserved3, err = ReadUint32(r); err != nil {
		return err
	}
	return nil
}

// Encode writes the 76-byte header. Reserved fields are always
// written as zero (spec.md §4.2).
func (h Header) Encode(w io.Writer) error {
	if err := WriteUint32(w, HeaderSize); err != nil {
		return err
	}
	if _, err := w.Write(ShellLinkClassID[:]); err != nil {
		return WrapIO(err, "write class id")
	}
	if err := WriteUint32(w, uint32(h.LinkFlags)); err != nil {
		return err
	}
	if err := WriteUint32(w, uint32(h.FileAttributes)); err != nil {
		return err
	}
	for _, ft := range []FileTime{h.CreationTime, h.AccessTime, h.WriteTime} {
		if err := WriteUint64(w, uint64(ft)); err != nil {
			return err
		}
	}
	if err := WriteUint32(w, h.FileSize); err != nil {
		return err
	}
	if err := WriteUint32(w, uint32(h.IconIndex)); err != nil {
		return err
	}
	show := h.ShowCommand
	if !show.Valid() {
		show = ShowNormal
	}
	if err := WriteUint32(w, uint32(show)); err != nil {
		return err
	}
	if err := WriteUint16(w, uint16(h.HotKey)); err != nil {
		return err
	}
	if err := WriteUint16(w, 0); err != nil {
		return err
	}
	if err := WriteUint32(w, 0); err != nil {
		return err
	}
	return WriteUint32(w, 0)
}

// FileTime is a 64-bit Windows FILETIME: 100-ns ticks since
// 1601-01-01 UTC. Zero means "unset" (spec.md §3).
type FileTime uint64

const filetimeEpochDelta = 116444736000000000 // 1601-01-01 -> 1970-01-01, in 100ns ticks

// Time converts ft to a time.Time. The zero value (unset) converts to
// the zero time.Time.
func (ft FileTime) Time() time.Time {
	if ft == 0 {
		return time.Time{}
	}
	ticks := int64(ft) - filetimeEpochDelta
	return time.Unix(0, ticks*100).UTC()
}

// FileTimeFromTime converts t to a FileTime. The zero time.Time
// converts to the unset (zero) FileTime.
func FileTimeFromTime(t time.Time) FileTime {
	if t.IsZero() {
		return 0
	}
	ticks := t.UTC().UnixNano()/100 + filetimeEpochDelta
	return FileTime(ticks)
}

// LinkFlag is the 32-bit link_flags bitfield (spec.md §6).
type LinkFlag uint32

const (
	HasLinkTargetIDList        LinkFlag = 1 << 0
	HasLinkInfo                LinkFlag = 1 << 1
	HasName                    LinkFlag = 1 << 2
	HasRelativePath            LinkFlag = 1 << 3
	HasWorkingDir              LinkFlag = 1 << 4
	HasArguments               LinkFlag = 1 << 5
	HasIconLocation            LinkFlag = 1 << 6
	IsUnicode                  LinkFlag = 1 << 7
	ForceNoLinkInfo            LinkFlag = 1 << 8
	HasExpString               LinkFlag = 1 << 9
	RunInSeparateProcess       LinkFlag = 1 << 10
	HasDarwinID                LinkFlag = 1 << 12
	RunAsUser                  LinkFlag = 1 << 13
	HasExpIcon                 LinkFlag = 1 << 14
	NoPidlAlias                LinkFlag = 1 << 15
	RunWithShimLayer           LinkFlag = 1 << 17
	ForceNoLinkTrack           LinkFlag = 1 << 18
	EnableTargetMetadata       LinkFlag = 1 << 19
	DisableLinkPathTracking    LinkFlag = 1 << 20
	DisableKnownFolderTracking LinkFlag = 1 << 21
	DisableKnownFolderAlias    LinkFlag = 1 << 22
	AllowLinkToLink            LinkFlag = 1 << 23
	UnaliasOnSave              LinkFlag = 1 << 24
	PreferEnvironmentPath      LinkFlag = 1 << 25
	KeepLocalIDListForUNCTarget LinkFlag = 1 << 26
)

var linkFlagNames = []struct {
	bit  LinkFlag
	name string
}{
	{HasLinkTargetIDList, "HasLinkTargetIDList"},
	{HasLinkInfo, "HasLinkInfo"},
	{HasName, "HasName"},
	{HasRelativePath, "HasRelativePath"},
	{HasWorkingDir, "HasWorkingDir"},
	{HasArguments, "HasArguments"},
	{HasIconLocation, "HasIconLocation"},
	{IsUnicode, "IsUnicode"},
	{ForceNoLinkInfo, "ForceNoLinkInfo"},
	{HasExpString, "HasExpString"},
	{RunInSeparateProcess, "RunInSeparateProcess"},
	{HasDarwinID, "HasDarwinID"},
	{RunAsUser, "RunAsUser"},
	{HasExpIcon, "HasExpIcon"},
	{NoPidlAlias, "NoPidlAlias"},
	{RunWithShimLayer, "RunWithShimLayer"},
	{ForceNoLinkTrack, "ForceNoLinkTrack"},
	{EnableTargetMetadata, "EnableTargetMetadata"},
	{DisableLinkPathTracking, "DisableLinkPathTracking"},
	{DisableKnownFolderTracking, "DisableKnownFolderTracking"},
	{DisableKnownFolderAlias, "DisableKnownFolderAlias"},
	{AllowLinkToLink, "AllowLinkToLink"},
	{UnaliasOnSave, "UnaliasOnSave"},
	{PreferEnvironmentPath, "PreferEnvironmentPath"},
	{KeepLocalIDListForUNCTarget, "KeepLocalIDListForUNCTarget"},
}

// Has reports whether every bit in flag is set.
func (f LinkFlag) Has(flag LinkFlag) bool { return f&flag == flag }

// Set adds or clears flag in f.
func (f *LinkFlag) Set(flag LinkFlag, on bool) {
	if on {
		*f |= flag
	} else {
		*f &^= flag
	}
}

// List returns the set bits' names.
func (f LinkFlag) List() []string {
	var out []string
	for _, n := range linkFlagNames {
		if f.Has(n.bit) {
			out = append(out, n.name)
		}
	}
	return out
}

func (f LinkFlag) String() string { return strings.Join(f.List(), "|") }

// FileAttributeFlag is the 32-bit file_attributes bitfield (spec.md §6).
type FileAttributeFlag uint32

const (
	FileAttributeReadOnly          FileAttributeFlag = 1 << 0
	FileAttributeHidden            FileAttributeFlag = 1 << 1
	FileAttributeSystem            FileAttributeFlag = 1 << 2
	FileAttributeDirectory         FileAttributeFlag = 1 << 4
	FileAttributeArchive           FileAttributeFlag = 1 << 5
	FileAttributeNormal            FileAttributeFlag = 1 << 7
	FileAttributeTemporary         FileAttributeFlag = 1 << 8
	FileAttributeSparseFile        FileAttributeFlag = 1 << 9
	FileAttributeReparsePoint      FileAttributeFlag = 1 << 10
	FileAttributeCompressed        FileAttributeFlag = 1 << 11
	FileAttributeOffline           FileAttributeFlag = 1 << 12
	FileAttributeNotContentIndexed FileAttributeFlag = 1 << 13
	FileAttributeEncrypted         FileAttributeFlag = 1 << 14
)

func (f FileAttributeFlag) Has(flag FileAttributeFlag) bool { return f&flag == flag }

// LinkInfoFlag is the 32-bit link_info_flags bitfield (spec.md §4.4, §6).
type LinkInfoFlag uint32

const (
	VolumeIDAndLocalBasePath                LinkInfoFlag = 1 << 0
	CommonNetworkRelativeLinkAndPathSuffix LinkInfoFlag = 1 << 1
)

func (f LinkInfoFlag) Has(flag LinkInfoFlag) bool { return f&flag == flag }

// ShowCommand is the window-state hint for the target process
// (spec.md §3, §6).
type ShowCommand uint32

const (
	ShowNormal         ShowCommand = 1
	ShowMaximized      ShowCommand = 3
	ShowMinNoActive    ShowCommand = 7
)

// Valid reports whether c is one of the three defined values.
func (c ShowCommand) Valid() bool {
	return c == ShowNormal || c == ShowMaximized || c == ShowMinNoActive
}

var showCommandNames = []IntName{
	{uint32(ShowNormal), "Normal"},
	{uint32(ShowMaximized), "Maximized"},
	{uint32(ShowMinNoActive), "MinNoActive"},
}

func (c ShowCommand) String() string { return StringName(uint32(c), showCommandNames) }

// HotKeyModifier is the high byte of a HotKey (spec.md §6).
type HotKeyModifier uint8

const (
	HotKeyShift   HotKeyModifier = 0x01
	HotKeyControl HotKeyModifier = 0x02
	HotKeyAlt     HotKeyModifier = 0x03
)

// HotKey packs a virtual key code (low byte) and a modifier mask
// (high byte) into 16 bits (spec.md §3, §6).
type HotKey uint16

func NewHotKey(key byte, mods HotKeyModifier) HotKey {
	return HotKey(uint16(key) | uint16(mods)<<8)
}

func (h HotKey) Key() byte { return byte(h) }

func (h HotKey) Modifiers() HotKeyModifier { return HotKeyModifier(h >> 8) }

// DriveType is the Volume-ID drive_type enum (spec.md §6).
type DriveType uint32

const (
	DriveUnknown     DriveType = 0
	DriveNoRootDir   DriveType = 1
	DriveRemovable   DriveType = 2
	DriveFixed       DriveType = 3
	DriveRemote      DriveType = 4
	DriveCDRom       DriveType = 5
	DriveRamDisk     DriveType = 6
)

var driveTypeNames = []IntName{
	{uint32(DriveUnknown), "Unknown"},
	{uint32(DriveNoRootDir), "NoRootDir"},
	{uint32(DriveRemovable), "Removable"},
	{uint32(DriveFixed), "Fixed"},
	{uint32(DriveRemote), "Remote"},
	{uint32(DriveCDRom), "CDRom"},
	{uint32(DriveRamDisk), "RamDisk"},
}

func (d DriveType) String() string { return StringName(uint32(d), driveTypeNames) }

// NetworkProviderType is an opaque 32-bit enum; any value round-trips
// unmodified (spec.md §6).
type NetworkProviderType uint32
