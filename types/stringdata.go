package types

import "io"

// StringData holds the five optional, independently-present
// length-prefixed string fields (spec.md §3/§4.5). The in-memory form
// always stores wide code units regardless of the on-disk encoding a
// decoded file used (spec.md §9's standardize-on-wide resolution); a
// nil slice means the field's header flag is clear.
type StringData struct {
	Name         []uint16
	RelativePath []uint16
	WorkingDir   []uint16
	Arguments    []uint16
	IconLocation []uint16
}

// DecodeStringData reads the fields present per flags, in spec.md
// §4.5's fixed order. unicode selects the on-disk unit width; the
// result is always normalized to wide code units.
func DecodeStringData(r io.Reader, flags LinkFlag, unicode bool) (*StringData, error) {
	sd := &StringData{}
	read := func(present bool) ([]uint16, error) {
		if !present {
			return nil, nil
		}
		count, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		if unicode {
			return ReadWideString(r, int(count)*2)
		}
		ansi, err := ReadAnsiString(r, int(count))
		if err != nil {
			return nil, err
		}
		units := make([]uint16, len(ansi))
		for i := 0; i < len(ansi); i++ {
			units[i] = uint16(ansi[i])
		}
		return units, nil
	}

	var err error
	if sd.Name, err = read(flags.Has(HasName)); err != nil {
		return nil, err
	}
	if sd.RelativePath, err = read(flags.Has(HasRelativePath)); err != nil {
		return nil, err
	}
	if sd.WorkingDir, err = read(flags.Has(HasWorkingDir)); err != nil {
		return nil, err
	}
	if sd.Arguments, err = read(flags.Has(HasArguments)); err != nil {
		return nil, err
	}
	if sd.IconLocation, err = read(flags.Has(HasIconLocation)); err != nil {
		return nil, err
	}
	return sd, nil
}

// Encode writes every non-nil field as a wide {count, units} pair, in
// spec.md §4.5's fixed order. This repo never re-emits the 8-bit
// on-disk form (spec.md §9).
func (sd StringData) Encode(w io.Writer) error {
	write := func(units []uint16) error {
		if units == nil {
			return nil
		}
		if err := WriteUint16(w, uint16(len(units))); err != nil {
			return err
		}
		return WriteWideString(w, units)
	}
	if err := write(sd.Name); err != nil {
		return err
	}
	if err := write(sd.RelativePath); err != nil {
		return err
	}
	if err := write(sd.WorkingDir); err != nil {
		return err
	}
	if err := write(sd.Arguments); err != nil {
		return err
	}
	return write(sd.IconLocation)
}

// Flags returns the header LinkFlag bits this StringData's populated
// fields require (HasName, HasRelativePath, ... , plus IsUnicode since
// this repo always writes wide).
func (sd StringData) Flags() LinkFlag {
	var f LinkFlag
	if sd.Name != nil {
		f |= HasName
	}
	if sd.RelativePath != nil {
		f |= HasRelativePath
	}
	if sd.WorkingDir != nil {
		f |= HasWorkingDir
	}
	if sd.Arguments != nil {
		f |= HasArguments
	}
	if sd.IconLocation != nil {
		f |= HasIconLocation
	}
	if f != 0 {
		f |= IsUnicode
	}
	return f
}

// setField implements the "set each of the five fields from a wide
// buffer plus a code-unit count; count 0 releases the buffer and
// zeroes count" setter behavior common to all five fields (spec.md
// §4.7).
func setField(units []uint16, count int) []uint16 {
	if count <= 0 {
		return nil
	}
	if count > len(units) {
		count = len(units)
	}
	out := make([]uint16, count)
	copy(out, units)
	return out
}

// SetName sets or clears Name per setField's count-0-releases rule.
func (sd *StringData) SetName(units []uint16, count int) { sd.Name = setField(units, count) }

// SetRelativePath sets or clears RelativePath per setField's rule.
func (sd *StringData) SetRelativePath(units []uint16, count int) {
	sd.RelativePath = setField(units, count)
}

// SetWorkingDir sets or clears WorkingDir per setField's rule.
func (sd *StringData) SetWorkingDir(units []uint16, count int) {
	sd.WorkingDir = setField(units, count)
}

// SetArguments sets or clears Arguments per setField's rule.
func (sd *StringData) SetArguments(units []uint16, count int) {
	sd.Arguments = setField(units, count)
}

// SetIconLocation sets or clears IconLocation per setField's rule.
func (sd *StringData) SetIconLocation(units []uint16, count int) {
	sd.IconLocation = setField(units, count)
}
