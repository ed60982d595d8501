package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"os"

	"blitznote.com/src/tmpfile/mkstemp"
)

var streamKind = &kind[*Buffered]{
	close: func(_ mkstemp.Primitive, b *Buffered) error { return b.Close() },
}

// Stream is a temporary file represented by a buffered reader and/or writer.
//
// It shares the lifecycle rules of File. Buffered data is flushed
// before the file is closed.
type Stream struct {
	handle[*Buffered]
}

// EmptyStream returns a Stream without a file.
func EmptyStream() *Stream {
	s := new(Stream)
	return track(s, &s.handle, newState(streamKind))
}

// NewStream creates a temporary file, opened as told by o.Mode.
// See New.
//
// NewStream panics if o.Mode has Binary, but neither Read nor Write.
func NewStream(o Options) (*Stream, error) {
	s := EmptyStream()
	return s, s.Construct(o)
}

// Construct creates the file, unless s is valid already.
// See File.Construct.
//
// Construct panics if o.Mode has Binary, but neither Read nor Write.
func (s *Stream) Construct(o Options) error {
	mode := o.Mode.validate()
	return s.construct(&o, mode.flag(), func(h Handle, path string) *Buffered {
		return newBuffered(os.NewFile(h.Fd(), path), mode)
	})
}

// Buffered returns the stream, or nil. It stays owned by s.
func (s *Stream) Buffered() *Buffered {
	return s.native()
}

// Clone returns another value sharing the file with s.
func (s *Stream) Clone() *Stream {
	c := new(Stream)
	return track(c, &c.handle, s.share())
}
