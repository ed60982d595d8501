package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"os"

	"blitznote.com/src/tmpfile/mkstemp"
)

// Handle is the raw OS handle of a file: a descriptor on unix,
// a HANDLE on Windows.
type Handle = mkstemp.Handle

// InvalidHandle is the Handle of an empty File.
const InvalidHandle = mkstemp.InvalidHandle

var handleKind = &kind[Handle]{
	invalid: InvalidHandle,
	close:   func(prim mkstemp.Primitive, h Handle) error { return prim.Close(h) },
}

// File is a temporary file represented by its raw OS handle.
//
// Values that share the file are obtained by Clone. The file is closed and
// removed once every value has been closed, or on Reset, unless it has
// been detached; then it is only closed.
type File struct {
	handle[Handle]
}

// Empty returns a File without a file. Use Construct to create one.
func Empty() *File {
	f := new(File)
	return track(f, &f.handle, newState(handleKind))
}

// New creates a temporary file, opened for reading and writing.
//
// The returned File is never nil. On failure it is not valid,
// but its Path tells which path creation has failed for.
func New(o Options) (*File, error) {
	f := Empty()
	return f, f.Construct(o)
}

// Construct creates the file, unless f is valid already.
// A closed File cannot be constructed again: that returns fs.ErrClosed.
//
// Construct panics on an invalid o.Mode, although it has no effect here.
func (f *File) Construct(o Options) error {
	return f.construct(&o, os.O_RDWR, func(h Handle, _ string) Handle { return h })
}

// Handle returns the raw handle, or InvalidHandle.
// It stays owned by f.
func (f *File) Handle() Handle {
	return f.native()
}

// Clone returns another value sharing the file with f.
// The clone of a closed File is empty.
func (f *File) Clone() *File {
	c := new(File)
	return track(c, &c.handle, f.share())
}
