package shelllink

import "github.com/appsworld/go-shelllink/types"

// SetIdListItem replaces the payload of item i in the top-level
// IdList (spec.md §4.7).
func (sl *ShellLink) SetIdListItem(i int, payload []byte) error {
	if sl.IdList == nil {
		return types.NewError(types.ReasonMissingIdList, "top-level IdList is absent")
	}
	return sl.IdList.SetItem(i, payload)
}

// AppendIdListItem appends a new item to the top-level IdList,
// creating an empty IdList first if one is not already present
// (spec.md §4.7).
func (sl *ShellLink) AppendIdListItem(payload []byte) {
	if sl.IdList == nil {
		sl.IdList = &types.IdList{}
	}
	sl.IdList.AppendItem(payload)
}

// RemoveIdListItem removes item i from the top-level IdList
// (spec.md §4.7).
func (sl *ShellLink) RemoveIdListItem(i int) error {
	if sl.IdList == nil {
		return types.NewError(types.ReasonMissingIdList, "top-level IdList is absent")
	}
	return sl.IdList.RemoveItem(i)
}

// DisableIdList removes the top-level IdList entirely, clearing
// HasLinkTargetIDList on write.
func (sl *ShellLink) DisableIdList() {
	sl.IdList = nil
}

// vistaIdList returns the IdList embedded in the VistaAndAboveIDList
// extra-data block, or nil if that block is absent.
func (sl *ShellLink) vistaIdList() *types.IdList {
	if sl.ExtraData == nil || sl.ExtraData.VistaAndAboveIDList == nil {
		return nil
	}
	return &sl.ExtraData.VistaAndAboveIDList.IdList
}

// SetVistaIdListItem replaces the payload of item i in the IdList
// embedded in the VistaAndAboveIDList extra-data block (spec.md §4.7,
// "identical operations exist for the IdList embedded in the
// VistaAndAboveIDList block").
func (sl *ShellLink) SetVistaIdListItem(i int, payload []byte) error {
	l := sl.vistaIdList()
	if l == nil {
		return types.NewError(types.ReasonMissingIdList, "VistaAndAboveIDList block is absent")
	}
	return l.SetItem(i, payload)
}

// AppendVistaIdListItem appends an item to the IdList embedded in the
// VistaAndAboveIDList extra-data block, creating the block (and its
// empty IdList) first if one is not already present.
func (sl *ShellLink) AppendVistaIdListItem(payload []byte) {
	if sl.ExtraData == nil {
		sl.ExtraData = &types.ExtraDataChain{}
	}
	if sl.ExtraData.VistaAndAboveIDList == nil {
		sl.ExtraData.VistaAndAboveIDList = &types.VistaAndAboveIDListDataBlock{}
	}
	sl.ExtraData.VistaAndAboveIDList.IdList.AppendItem(payload)
}

// RemoveVistaIdListItem removes item i from the IdList embedded in the
// VistaAndAboveIDList extra-data block.
func (sl *ShellLink) RemoveVistaIdListItem(i int) error {
	l := sl.vistaIdList()
	if l == nil {
		return types.NewError(types.ReasonMissingIdList, "VistaAndAboveIDList block is absent")
	}
	return l.RemoveItem(i)
}
