package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

// Primitive is the set of OS calls this package and its users rely on.
//
// Flags are those of os.OpenFile; only the access mode
// (os.O_RDONLY, os.O_WRONLY, os.O_RDWR) is honoured.
type Primitive interface {
	// CreateExclusive atomically creates path, failing if it exists.
	CreateExclusive(path string, flag int) (Handle, error)

	// Close releases h.
	Close(h Handle) error

	// Remove deletes the file at path.
	Remove(path string) error

	// Dup returns a new handle to the same open file as h.
	Dup(h Handle) (Handle, error)

	// IsExist reports whether err, as returned by CreateExclusive,
	// means that the name is already taken.
	IsExist(err error) bool
}

// OS is the Primitive of the platform this has been compiled for.
var OS Primitive = osPrimitive{}
