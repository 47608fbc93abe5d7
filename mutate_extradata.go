package shelllink

import "github.com/appsworld/go-shelllink/types"

// ensureExtraData returns sl.ExtraData, creating an empty chain if
// absent.
func (sl *ShellLink) ensureExtraData() *types.ExtraDataChain {
	if sl.ExtraData == nil {
		sl.ExtraData = &types.ExtraDataChain{}
	}
	return sl.ExtraData
}

// EnableConsoleData establishes an empty ConsoleData block.
func (sl *ShellLink) EnableConsoleData() {
	sl.ensureExtraData().Console = &types.ConsoleDataBlock{}
}

// DisableConsoleData releases the ConsoleData block.
func (sl *ShellLink) DisableConsoleData() {
	if sl.ExtraData != nil {
		sl.ExtraData.Console = nil
	}
}

// EnableConsoleFEData establishes an empty ConsoleFEData block.
func (sl *ShellLink) EnableConsoleFEData() {
	sl.ensureExtraData().ConsoleFE = &types.ConsoleFEDataBlock{}
}

// DisableConsoleFEData releases the ConsoleFEData block.
func (sl *ShellLink) DisableConsoleFEData() {
	if sl.ExtraData != nil {
		sl.ExtraData.ConsoleFE = nil
	}
}

// EnableDarwinData establishes an empty DarwinData block.
func (sl *ShellLink) EnableDarwinData() {
	sl.ensureExtraData().Darwin = &types.DarwinDataBlock{}
}

// DisableDarwinData releases the DarwinData block.
func (sl *ShellLink) DisableDarwinData() {
	if sl.ExtraData != nil {
		sl.ExtraData.Darwin = nil
	}
}

// SetDarwinID sets the DarwinData identifier, right-padding both the
// 8-bit and wide forms to their fixed 260-unit width (spec.md §4.7).
// The block must already be enabled via EnableDarwinData.
func (sl *ShellLink) SetDarwinID(ansi []byte, wide []uint16) error {
	if sl.ExtraData == nil || sl.ExtraData.Darwin == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "DarwinData is not enabled")
	}
	sl.ExtraData.Darwin.SetDarwinID(ansi, wide)
	return nil
}

// EnableEnvironmentVariableData establishes an empty
// EnvironmentVariableData block.
func (sl *ShellLink) EnableEnvironmentVariableData() {
	sl.ensureExtraData().EnvironmentVariable = &types.EnvironmentVariableDataBlock{}
}

// DisableEnvironmentVariableData releases the EnvironmentVariableData
// block.
func (sl *ShellLink) DisableEnvironmentVariableData() {
	if sl.ExtraData != nil {
		sl.ExtraData.EnvironmentVariable = nil
	}
}

// SetEnvironmentVariableTarget sets the EnvironmentVariableData
// target, right-padding both forms to their fixed 260-unit width. The
// block must already be enabled via EnableEnvironmentVariableData.
func (sl *ShellLink) SetEnvironmentVariableTarget(ansi []byte, wide []uint16) error {
	if sl.ExtraData == nil || sl.ExtraData.EnvironmentVariable == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "EnvironmentVariableData is not enabled")
	}
	sl.ExtraData.EnvironmentVariable.SetTarget(ansi, wide)
	return nil
}

// EnableIconEnvironmentData establishes an empty IconEnvironmentData
// block.
func (sl *ShellLink) EnableIconEnvironmentData() {
	sl.ensureExtraData().IconEnvironment = &types.IconEnvironmentDataBlock{}
}

// DisableIconEnvironmentData releases the IconEnvironmentData block.
func (sl *ShellLink) DisableIconEnvironmentData() {
	if sl.ExtraData != nil {
		sl.ExtraData.IconEnvironment = nil
	}
}

// SetIconEnvironmentTarget sets the IconEnvironmentData target,
// right-padding both forms to their fixed 260-unit width. The block
// must already be enabled via EnableIconEnvironmentData.
func (sl *ShellLink) SetIconEnvironmentTarget(ansi []byte, wide []uint16) error {
	if sl.ExtraData == nil || sl.ExtraData.IconEnvironment == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "IconEnvironmentData is not enabled")
	}
	sl.ExtraData.IconEnvironment.SetTarget(ansi, wide)
	return nil
}

// EnableKnownFolderData establishes an empty KnownFolderData block.
func (sl *ShellLink) EnableKnownFolderData() {
	sl.ensureExtraData().KnownFolder = &types.KnownFolderDataBlock{}
}

// DisableKnownFolderData releases the KnownFolderData block.
func (sl *ShellLink) DisableKnownFolderData() {
	if sl.ExtraData != nil {
		sl.ExtraData.KnownFolder = nil
	}
}

// SetKnownFolderData sets the KnownFolderData folder identifier and
// offset. The block must already be enabled via EnableKnownFolderData.
func (sl *ShellLink) SetKnownFolderData(id types.GUID, offset uint32) error {
	if sl.ExtraData == nil || sl.ExtraData.KnownFolder == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "KnownFolderData is not enabled")
	}
	sl.ExtraData.KnownFolder.FolderID = id
	sl.ExtraData.KnownFolder.Offset = offset
	return nil
}

// EnablePropertyStoreData establishes an empty PropertyStoreData block.
func (sl *ShellLink) EnablePropertyStoreData() {
	sl.ensureExtraData().PropertyStore = &types.PropertyStoreDataBlock{}
}

// DisablePropertyStoreData releases the PropertyStoreData block.
func (sl *ShellLink) DisablePropertyStoreData() {
	if sl.ExtraData != nil {
		sl.ExtraData.PropertyStore = nil
	}
}

// SetPropertyStorePayload replaces the opaque PropertyStoreData
// payload verbatim. The block must already be enabled via
// EnablePropertyStoreData.
func (sl *ShellLink) SetPropertyStorePayload(payload []byte) error {
	if sl.ExtraData == nil || sl.ExtraData.PropertyStore == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "PropertyStoreData is not enabled")
	}
	sl.ExtraData.PropertyStore.Payload = append([]byte(nil), payload...)
	return nil
}

// EnableShimData establishes an empty ShimData block.
func (sl *ShellLink) EnableShimData() {
	sl.ensureExtraData().Shim = &types.ShimDataBlock{}
}

// DisableShimData releases the ShimData block.
func (sl *ShellLink) DisableShimData() {
	if sl.ExtraData != nil {
		sl.ExtraData.Shim = nil
	}
}

// SetShimLayerName sets the ShimData layer name, measuring the
// supplied buffer's length by scanning to its wide NUL terminator
// (spec.md §4.7). The block must already be enabled via
// EnableShimData.
func (sl *ShellLink) SetShimLayerName(units []uint16) error {
	if sl.ExtraData == nil || sl.ExtraData.Shim == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "ShimData is not enabled")
	}
	sl.ExtraData.Shim.SetLayerName(units)
	return nil
}

// EnableSpecialFolderData establishes an empty SpecialFolderData
// block.
func (sl *ShellLink) EnableSpecialFolderData() {
	sl.ensureExtraData().SpecialFolder = &types.SpecialFolderDataBlock{}
}

// DisableSpecialFolderData releases the SpecialFolderData block.
func (sl *ShellLink) DisableSpecialFolderData() {
	if sl.ExtraData != nil {
		sl.ExtraData.SpecialFolder = nil
	}
}

// SetSpecialFolderData sets the SpecialFolderData folder id and
// offset. The block must already be enabled via
// EnableSpecialFolderData.
func (sl *ShellLink) SetSpecialFolderData(folderID, offset uint32) error {
	if sl.ExtraData == nil || sl.ExtraData.SpecialFolder == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "SpecialFolderData is not enabled")
	}
	sl.ExtraData.SpecialFolder.SpecialFolderID = folderID
	sl.ExtraData.SpecialFolder.Offset = offset
	return nil
}

// EnableTrackerData establishes an empty TrackerData block.
func (sl *ShellLink) EnableTrackerData() {
	sl.ensureExtraData().Tracker = &types.TrackerDataBlock{}
}

// DisableTrackerData releases the TrackerData block.
func (sl *ShellLink) DisableTrackerData() {
	if sl.ExtraData != nil {
		sl.ExtraData.Tracker = nil
	}
}

// SetTrackerData sets the TrackerData machine id, droid and
// droid-birth fields (each truncated/zero-padded to its fixed width).
// The block must already be enabled via EnableTrackerData.
func (sl *ShellLink) SetTrackerData(machineID, droid, droidBirth []byte) error {
	if sl.ExtraData == nil || sl.ExtraData.Tracker == nil {
		return types.NewError(types.ReasonMissingExtraDataPayload, "TrackerData is not enabled")
	}
	t := sl.ExtraData.Tracker
	t.MachineID = [16]byte{}
	copy(t.MachineID[:], machineID)
	t.Droid = [32]byte{}
	copy(t.Droid[:], droid)
	t.DroidBirth = [32]byte{}
	copy(t.DroidBirth[:], droidBirth)
	return nil
}

// EnableVistaAndAboveIDListData establishes an empty
// VistaAndAboveIDListData block.
func (sl *ShellLink) EnableVistaAndAboveIDListData() {
	sl.ensureExtraData().VistaAndAboveIDList = &types.VistaAndAboveIDListDataBlock{}
}

// DisableVistaAndAboveIDListData releases the VistaAndAboveIDListData
// block.
func (sl *ShellLink) DisableVistaAndAboveIDListData() {
	if sl.ExtraData != nil {
		sl.ExtraData.VistaAndAboveIDList = nil
	}
}
