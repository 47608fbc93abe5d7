package types

import "strconv"

// IntName pairs an integer constant with its display name, the way
// the teacher's types package resolves enum values to strings.
type IntName struct {
	I uint32
	S string
}

// StringName looks up i in names, falling back to a hex literal.
func StringName(i uint32, names []IntName) string {
	for _, n := range names {
		if n.I == i {
			return n.S
		}
	}
	return "0x" + strconv.FormatUint(uint64(i), 16)
}
