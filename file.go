package shelllink

import (
	"io"

	"github.com/appsworld/go-shelllink/types"
)

// ShellLink is the top-level aggregate of the Shell Link Binary File
// Format: a fixed Header plus four independently-optional sections
// (spec.md §3). The structure owns every buffer reachable from it;
// there is no shared state between separate ShellLink values.
type ShellLink struct {
	Header types.Header

	IdList     *types.IdList
	LinkInfo   *types.LinkInfo
	StringData *types.StringData
	ExtraData  *types.ExtraDataChain
}

// New returns an empty ShellLink with no optional sections present,
// matching the "constructed empty" lifecycle state (spec.md §3.6).
func New() *ShellLink {
	return &ShellLink{Header: types.NewHeader()}
}

// Load reads a complete ShellLink from r, driving Header → IdList →
// LinkInfo → StringData → ExtraData → terminator in that fixed order
// (spec.md §4.8). On error the in-memory model is indeterminate and
// must be discarded by the caller.
func Load(r io.Reader) (*ShellLink, error) {
	sl := &ShellLink{}
	if err := sl.Header.Decode(r); err != nil {
		return nil, err
	}
	if sl.Header.LinkFlags.Has(types.HasLinkTargetIDList) {
		idList, err := types.DecodeIdList(r)
		if err != nil {
			return nil, err
		}
		sl.IdList = idList
	}
	if sl.Header.LinkFlags.Has(types.HasLinkInfo) {
		li, err := types.DecodeLinkInfo(r)
		if err != nil {
			return nil, err
		}
		sl.LinkInfo = li
	}
	sd, err := types.DecodeStringData(r, sl.Header.LinkFlags, sl.Header.LinkFlags.Has(types.IsUnicode))
	if err != nil {
		return nil, err
	}
	sl.StringData = sd

	ed, err := types.DecodeExtraDataChain(r)
	if err != nil {
		return nil, err
	}
	sl.ExtraData = ed

	return sl, nil
}

// Write serialises sl in the fixed Header → IdList → LinkInfo →
// StringData → ExtraData → terminator order (spec.md §4.8), deriving
// every size and offset field from the current in-memory state.
func (sl *ShellLink) Write(w io.Writer) error {
	if sl == nil {
		return types.NewError(types.ReasonNilTarget, "Write called on a nil *ShellLink")
	}
	const stringDataFlags = types.HasName | types.HasRelativePath | types.HasWorkingDir |
		types.HasArguments | types.HasIconLocation | types.IsUnicode

	flags := sl.Header.LinkFlags
	flags.Set(types.HasLinkTargetIDList, sl.IdList != nil)
	flags.Set(types.HasLinkInfo, sl.LinkInfo != nil)
	flags &^= stringDataFlags
	if sl.StringData != nil {
		flags |= sl.StringData.Flags()
	}
	sl.Header.LinkFlags = flags

	if err := sl.Header.Encode(w); err != nil {
		return err
	}
	if sl.IdList != nil {
		if err := sl.IdList.Encode(w); err != nil {
			return err
		}
	}
	if sl.LinkInfo != nil {
		if err := sl.LinkInfo.Encode(w); err != nil {
			return err
		}
	}
	if sl.StringData != nil {
		if err := sl.StringData.Encode(w); err != nil {
			return err
		}
	} else {
		if err := (types.StringData{}).Encode(w); err != nil {
			return err
		}
	}
	if sl.ExtraData != nil {
		return sl.ExtraData.Encode(w)
	}
	return (types.ExtraDataChain{}).Encode(w)
}
