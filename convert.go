package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"os"

	"github.com/pkg/errors"

	"blitznote.com/src/tmpfile/mkstemp"
)

// transfer moves the file from src to dst, a new and empty state.
//
// src gets detached first, so that its release won't remove the file whatever happens next.
// If src is not valid, dst stays empty. If derive fails, dst carries the path
// flagged as fatal, and src keeps its resource. Else derive has taken over
// src's resource, and src is emptied without a trace in the log:
// the file lives on in dst.
func transfer[S, T comparable](src *resourceState[S], dst *resourceState[T], derive func(prim mkstemp.Primitive, path string, n S) (T, error)) error {
	src.mu.Lock()
	defer src.mu.Unlock()

	src.detached = true
	if !src.isValidLocked() {
		return nil
	}

	dst.mu.Lock()
	defer dst.mu.Unlock()
	dst.path = src.path
	dst.logCreateClose = src.logCreateClose
	dst.prim = src.prim
	dst.logger = src.logger

	n, err := derive(src.prim, src.path, src.native)
	if err != nil {
		dst.fatalPath = true
		return errors.WithStack(&conversionError{path: src.path, err: err})
	}
	dst.native = n

	src.forgetLocked()
	return nil
}

func fileFromHandle(_ mkstemp.Primitive, path string, h Handle) (*os.File, error) {
	f := os.NewFile(h.Fd(), path)
	if f == nil {
		return nil, os.ErrInvalid
	}
	return f, nil
}

// handleFromFile duplicates f's handle and closes f,
// as an *os.File cannot be made to let go of its handle.
func handleFromFile(prim mkstemp.Primitive, _ string, f *os.File) (Handle, error) {
	h, err := prim.Dup(Handle(f.Fd()))
	if err != nil {
		return InvalidHandle, err
	}
	_ = f.Close()
	return h, nil
}

func fileFromBuffered(_ mkstemp.Primitive, _ string, b *Buffered) (*os.File, error) {
	return b.release()
}

func handleFromBuffered(prim mkstemp.Primitive, path string, b *Buffered) (Handle, error) {
	if err := b.Flush(); err != nil {
		return InvalidHandle, errors.Wrap(err, "flushing stream")
	}
	h, err := prim.Dup(Handle(b.file.Fd()))
	if err != nil {
		return InvalidHandle, err
	}
	f, err := b.release()
	if err != nil {
		_ = prim.Close(h)
		return InvalidHandle, err
	}
	_ = f.Close()
	return h, nil
}

func bufferedWith(mode OpenMode) func(mkstemp.Primitive, string, *os.File) (*Buffered, error) {
	return func(_ mkstemp.Primitive, _ string, f *os.File) (*Buffered, error) {
		return newBuffered(f, mode), nil
	}
}

// ToDescriptor moves the file into a new Descriptor, and empties f.
//
// On failure the Descriptor is not valid, but carries the path, which
// will not be removed by either of them.
func (f *File) ToDescriptor() (*Descriptor, error) {
	d := EmptyDescriptor()
	if f.ref.dropped.Load() {
		return d, nil
	}
	return d, transfer(f.state(), d.state(), fileFromHandle)
}

// ToStream moves the file into a new Stream, and empties f.
// See ToDescriptor.
//
// ToStream panics if mode has Binary, but neither Read nor Write.
func (f *File) ToStream(mode OpenMode) (*Stream, error) {
	mode = mode.validate()
	s := EmptyStream()
	if f.ref.dropped.Load() {
		return s, nil
	}
	return s, transfer(f.state(), s.state(), func(prim mkstemp.Primitive, path string, h Handle) (*Buffered, error) {
		file, err := fileFromHandle(prim, path, h)
		if err != nil {
			return nil, err
		}
		return newBuffered(file, mode), nil
	})
}

// ToHandle moves the file into a new File, and empties d.
// See File.ToDescriptor.
func (d *Descriptor) ToHandle() (*File, error) {
	f := Empty()
	if d.ref.dropped.Load() {
		return f, nil
	}
	return f, transfer(d.state(), f.state(), handleFromFile)
}

// ToStream moves the file into a new Stream, and empties d.
// See File.ToDescriptor.
//
// ToStream panics if mode has Binary, but neither Read nor Write.
func (d *Descriptor) ToStream(mode OpenMode) (*Stream, error) {
	mode = mode.validate()
	s := EmptyStream()
	if d.ref.dropped.Load() {
		return s, nil
	}
	return s, transfer(d.state(), s.state(), bufferedWith(mode))
}

// ToHandle moves the file into a new File, and empties s.
// Buffered writes are flushed, and unread buffered data is dropped.
// See File.ToDescriptor.
func (s *Stream) ToHandle() (*File, error) {
	f := Empty()
	if s.ref.dropped.Load() {
		return f, nil
	}
	return f, transfer(s.state(), f.state(), handleFromBuffered)
}

// ToDescriptor moves the file into a new Descriptor, and empties s.
// The offset of the Descriptor is where reading or writing through s has stopped.
// See File.ToDescriptor.
func (s *Stream) ToDescriptor() (*Descriptor, error) {
	d := EmptyDescriptor()
	if s.ref.dropped.Load() {
		return d, nil
	}
	return d, transfer(s.state(), d.state(), fileFromBuffered)
}
