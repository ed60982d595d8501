package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"os"

	"blitznote.com/src/tmpfile/mkstemp"
)

var descriptorKind = &kind[*os.File]{
	close: func(_ mkstemp.Primitive, f *os.File) error { return f.Close() },
}

// Descriptor is a temporary file represented by an *os.File.
//
// It shares the lifecycle rules of File.
type Descriptor struct {
	handle[*os.File]
}

// EmptyDescriptor returns a Descriptor without a file.
func EmptyDescriptor() *Descriptor {
	d := new(Descriptor)
	return track(d, &d.handle, newState(descriptorKind))
}

// NewDescriptor creates a temporary file, opened for reading and writing.
// See New.
func NewDescriptor(o Options) (*Descriptor, error) {
	d := EmptyDescriptor()
	return d, d.Construct(o)
}

// Construct creates the file, unless d is valid already.
// See File.Construct.
func (d *Descriptor) Construct(o Options) error {
	return d.construct(&o, os.O_RDWR, func(h Handle, path string) *os.File {
		return os.NewFile(h.Fd(), path)
	})
}

// File returns the *os.File, or nil. It stays owned by d;
// release it through d.
func (d *Descriptor) File() *os.File {
	return d.native()
}

// Clone returns another value sharing the file with d.
func (d *Descriptor) Clone() *Descriptor {
	c := new(Descriptor)
	return track(c, &c.handle, d.share())
}
