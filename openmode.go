package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"os"

	"github.com/pkg/errors"
)

// OpenMode selects how a Stream can be used.
type OpenMode uint8

// Bits of OpenMode.
const (
	Read OpenMode = 1 << iota
	Write
	Binary // Has no effect on byte streams, and is only valid alongside Read or Write.

	// DefaultMode is used in place of the zero value.
	DefaultMode = Read | Write
)

// validate panics on combinations that indicate a programming error.
func (m OpenMode) validate() OpenMode {
	if m == 0 {
		return DefaultMode
	}
	if m&^(Read|Write|Binary) != 0 || m&(Read|Write) == 0 {
		panic(errors.Wrapf(ErrInvalidOpenMode, "%#02x", uint8(m)))
	}
	return m
}

// flag translates m for os.OpenFile.
func (m OpenMode) flag() int {
	switch m.validate() & (Read | Write) {
	case Read:
		return os.O_RDONLY
	case Write:
		return os.O_WRONLY
	default:
		return os.O_RDWR
	}
}

// String returns the stdio mode that corresponds to m, like "w+b".
//
// The file is always created anew, hence Read|Write is "w+".
func (m OpenMode) String() string {
	var s string
	switch m.validate() & (Read | Write) {
	case Read:
		s = "r"
	case Write:
		s = "w"
	default:
		s = "w+"
	}
	if m&Binary != 0 {
		s += "b"
	}
	return s
}
