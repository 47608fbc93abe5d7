package shelllink

import "github.com/appsworld/go-shelllink/types"

// ensureLinkInfo returns sl.LinkInfo, creating an empty one with the
// default 0x1C header size first if absent.
func (sl *ShellLink) ensureLinkInfo() *types.LinkInfo {
	if sl.LinkInfo == nil {
		sl.LinkInfo = &types.LinkInfo{HeaderSize: 0x1C}
	}
	return sl.LinkInfo
}

// EnableVolumeID initialises the LinkInfo's Volume-ID sub-structure
// with placeholder defaults (size 17, drive type 0, ansi label offset
// 0x10, one zero byte of label data) and an empty local base path
// (spec.md §4.7).
func (sl *ShellLink) EnableVolumeID() {
	li := sl.ensureLinkInfo()
	li.VolumeID = &types.VolumeId{DriveType: types.DriveUnknown, LabelData: []byte{0}}
	li.LocalBasePath = ""
}

// DisableVolumeID clears the Volume-ID/LocalBasePath sub-structures
// and their wide counterpart (spec.md §4.7).
func (sl *ShellLink) DisableVolumeID() {
	if sl.LinkInfo == nil {
		return
	}
	sl.LinkInfo.VolumeID = nil
	sl.LinkInfo.LocalBasePath = ""
	sl.LinkInfo.LocalBasePathUnicode = nil
}

// SetVolumeIDData replaces the Volume-ID label, either as 8-bit
// code-page bytes (unicode=false) or as wide code units packed into
// raw bytes (unicode=true) (spec.md §4.7). The Volume-ID must already
// be enabled via EnableVolumeID.
func (sl *ShellLink) SetVolumeIDData(unicode bool, label []byte) error {
	if sl.LinkInfo == nil || sl.LinkInfo.VolumeID == nil {
		return types.NewError(types.ReasonMissingVolumeIDData, "Volume-ID is not enabled")
	}
	sl.LinkInfo.VolumeID.LabelUnicode = unicode
	sl.LinkInfo.VolumeID.LabelData = append([]byte(nil), label...)
	return nil
}

// SetLocalBasePath sets the 8-bit local base path.
func (sl *ShellLink) SetLocalBasePath(path string) error {
	if sl.LinkInfo == nil || sl.LinkInfo.VolumeID == nil {
		return types.NewError(types.ReasonMissingLocalBasePath, "Volume-ID is not enabled")
	}
	sl.LinkInfo.LocalBasePath = path
	return nil
}

// SetLocalBasePathUnicode sets the wide local base path, which
// promotes the LinkInfo header to the >= 0x24 wide variant on write
// (spec.md §4.7).
func (sl *ShellLink) SetLocalBasePathUnicode(units []uint16) error {
	if sl.LinkInfo == nil || sl.LinkInfo.VolumeID == nil {
		return types.NewError(types.ReasonMissingLocalBasePathUnicode, "Volume-ID is not enabled")
	}
	sl.LinkInfo.LocalBasePathUnicode = units
	sl.LinkInfo.HeaderSize = 0x24
	return nil
}

// EnableCommonNetworkRelativeLink initialises an empty
// CommonNetworkRelativeLink sub-structure (spec.md §4.7).
func (sl *ShellLink) EnableCommonNetworkRelativeLink() {
	li := sl.ensureLinkInfo()
	li.CNRL = &types.CommonNetworkRelativeLink{}
}

// DisableCommonNetworkRelativeLink clears the
// CommonNetworkRelativeLink sub-structure.
func (sl *ShellLink) DisableCommonNetworkRelativeLink() {
	if sl.LinkInfo == nil {
		return
	}
	sl.LinkInfo.CNRL = nil
}

// SetNetName sets the 8-bit network share name.
func (sl *ShellLink) SetNetName(name string) error {
	if sl.LinkInfo == nil || sl.LinkInfo.CNRL == nil {
		return types.NewError(types.ReasonMissingNetName, "CommonNetworkRelativeLink is not enabled")
	}
	sl.LinkInfo.CNRL.NetName = name
	return nil
}

// SetDeviceName sets the 8-bit device name.
func (sl *ShellLink) SetDeviceName(name string) error {
	if sl.LinkInfo == nil || sl.LinkInfo.CNRL == nil {
		return types.NewError(types.ReasonMissingDeviceName, "CommonNetworkRelativeLink is not enabled")
	}
	sl.LinkInfo.CNRL.DeviceName = name
	return nil
}

// SetNetNameUnicode sets the wide network share name, enabling the
// CNRL's unicode variant.
func (sl *ShellLink) SetNetNameUnicode(units []uint16) error {
	if sl.LinkInfo == nil || sl.LinkInfo.CNRL == nil {
		return types.NewError(types.ReasonMissingNetNameUnicode, "CommonNetworkRelativeLink is not enabled")
	}
	sl.LinkInfo.CNRL.NetNameUnicode = units
	sl.LinkInfo.CNRL.HasUnicodeNames = true
	return nil
}

// SetDeviceNameUnicode sets the wide device name, enabling the CNRL's
// unicode variant.
func (sl *ShellLink) SetDeviceNameUnicode(units []uint16) error {
	if sl.LinkInfo == nil || sl.LinkInfo.CNRL == nil {
		return types.NewError(types.ReasonMissingDeviceNameUnicode, "CommonNetworkRelativeLink is not enabled")
	}
	sl.LinkInfo.CNRL.DeviceNameUnicode = units
	sl.LinkInfo.CNRL.HasUnicodeNames = true
	return nil
}

// SetCommonPathSuffix sets the 8-bit common path suffix, creating an
// empty LinkInfo first if one is not already present.
func (sl *ShellLink) SetCommonPathSuffix(suffix string) {
	li := sl.ensureLinkInfo()
	li.CommonPathSuffix = suffix
}

// SetCommonPathSuffixUnicode sets the wide common path suffix,
// promoting the LinkInfo header to the >= 0x24 wide variant on write.
func (sl *ShellLink) SetCommonPathSuffixUnicode(units []uint16) {
	li := sl.ensureLinkInfo()
	li.CommonPathSuffixUnicode = units
	li.HeaderSize = 0x24
}
