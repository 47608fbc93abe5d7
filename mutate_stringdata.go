package shelllink

import "github.com/appsworld/go-shelllink/types"

// ensureStringData returns sl.StringData, creating an empty one if
// absent.
func (sl *ShellLink) ensureStringData() *types.StringData {
	if sl.StringData == nil {
		sl.StringData = &types.StringData{}
	}
	return sl.StringData
}

// SetName sets or clears the Name field from a wide buffer plus a
// code-unit count; count 0 releases the buffer (spec.md §4.7).
func (sl *ShellLink) SetName(units []uint16, count int) {
	sl.ensureStringData().SetName(units, count)
}

// SetRelativePath sets or clears the RelativePath field.
func (sl *ShellLink) SetRelativePath(units []uint16, count int) {
	sl.ensureStringData().SetRelativePath(units, count)
}

// SetWorkingDir sets or clears the WorkingDir field.
func (sl *ShellLink) SetWorkingDir(units []uint16, count int) {
	sl.ensureStringData().SetWorkingDir(units, count)
}

// SetArguments sets or clears the Arguments field.
func (sl *ShellLink) SetArguments(units []uint16, count int) {
	sl.ensureStringData().SetArguments(units, count)
}

// SetIconLocation sets or clears the IconLocation field.
func (sl *ShellLink) SetIconLocation(units []uint16, count int) {
	sl.ensureStringData().SetIconLocation(units, count)
}
