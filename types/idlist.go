package types

import (
	"io"
)

// IdItem is one opaque, namespace-defined entry in an IdList
// (spec.md §3). Size includes the two size bytes themselves.
type IdItem struct {
	Payload []byte
}

// Size is the on-disk size of the item, including its own 2-byte
// size field (spec.md §3).
func (i IdItem) Size() uint16 {
	return uint16(len(i.Payload) + 2)
}

// IdList is a variable-length, terminated sequence of IdItems
// (spec.md §3, §4.3). The same type backs both the top-level IdList
// and the IdList embedded in a VistaAndAboveIDListData extra-data
// block (spec.md §4.7).
type IdList struct {
	Items []IdItem
}

// TotalSize is the on-disk total_size field: itself (2 bytes) plus
// every item plus the 2-byte terminator (spec.md §3, testable
// property 6).
func (l IdList) TotalSize() uint16 {
	n := uint16(4)
	for _, it := range l.Items {
		n += it.Size()
	}
	return n
}

// DecodeIdList reads a total_size-prefixed, zero-terminated IdList
// (spec.md §4.3).
func DecodeIdList(r io.Reader) (*IdList, error) {
	totalSize, err := ReadUint16(r)
	if err != nil {
		return nil, err
	}
	remaining := int(totalSize) - 4 // item bytes: total_size minus itself and the terminator
	if remaining < 0 {
		return nil, NewError(ReasonIdListSizeMismatch, "total_size smaller than its own field plus the terminator")
	}
	l := &IdList{}
	for remaining > 0 {
		size, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		if size < 2 {
			return nil, NewError(ReasonIdListSizeMismatch, "item size smaller than its own size field")
		}
		if int(size) > remaining {
			return nil, NewError(ReasonIdListSizeMismatch, "item size exceeds remaining bytes")
		}
		payload, err := ReadBytes(r, int(size)-2)
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, IdItem{Payload: payload})
		remaining -= int(size)
	}
	if remaining != 0 {
		return nil, NewError(ReasonIdListSizeMismatch, "remaining count did not reach exactly zero")
	}
	terminator, err := ReadUint16(r)
	if err != nil {
		return nil, err
	}
	if terminator != 0 {
		return nil, NewError(ReasonIdListSizeMismatch, "missing zero terminator")
	}
	return l, nil
}

// Encode writes total_size, each item, then the 2-byte terminator
// (spec.md §4.3).
func (l IdList) Encode(w io.Writer) error {
	if err := WriteUint16(w, l.TotalSize()); err != nil {
		return err
	}
	for _, it := range l.Items {
		if err := WriteUint16(w, it.Size()); err != nil {
			return err
		}
		if _, err := w.Write(it.Payload); err != nil {
			return WrapIO(err, "write idlist item payload")
		}
	}
	return WriteUint16(w, 0)
}

// SetItem replaces the payload of item i.
func (l *IdList) SetItem(i int, payload []byte) error {
	if i < 0 || i >= len(l.Items) {
		return NewError(ReasonMissingIdListItem, "index out of range")
	}
	l.Items[i].Payload = append([]byte(nil), payload...)
	return nil
}

// AppendItem adds a new item with the given payload.
func (l *IdList) AppendItem(payload []byte) {
	l.Items = append(l.Items, IdItem{Payload: append([]byte(nil), payload...)})
}

// RemoveItem deletes item i, shifting successors down.
func (l *IdList) RemoveItem(i int) error {
	if i < 0 || i >= len(l.Items) {
		return NewError(ReasonMissingIdListItem, "index out of range")
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return nil
}
