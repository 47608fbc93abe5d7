// Package shelllink implements a bidirectional codec for the Shell
// Link Binary File Format: a compound, offset-based container that
// stores a pointer to a target resource together with metadata,
// a hierarchical item-id list, volume/network location data,
// user-visible strings, and a terminated chain of typed extra-data
// blocks.
//
// Load reads a ShellLink from any io.Reader; (*ShellLink).Write
// serialises one back out. Open and Create are thin conveniences over
// the os package for the common case of working with a .lnk file
// directly.
package shelllink

import (
	"os"

	"github.com/appsworld/go-shelllink/types"
)

// Open reads and decodes the named file as a ShellLink.
func Open(name string) (*ShellLink, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Create truncates (or creates) the named file and writes sl to it.
func Create(name string, sl *ShellLink) error {
	if sl == nil {
		return types.NewError(types.ReasonNilTarget, "Create called with a nil *ShellLink")
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return sl.Write(f)
}
