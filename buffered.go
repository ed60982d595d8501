package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Buffered is the native resource of a Stream:
// an *os.File behind a read buffer, a write buffer, or both.
//
// Switching between reading and writing flushes or discards
// the other buffer, so that both agree on the file's offset.
type Buffered struct {
	file *os.File
	r    *bufio.Reader // nil unless opened with Read
	w    *bufio.Writer // nil unless opened with Write
	mode OpenMode
}

func newBuffered(f *os.File, mode OpenMode) *Buffered {
	mode = mode.validate()
	b := &Buffered{file: f, mode: mode}
	if mode&Read != 0 {
		b.r = bufio.NewReader(f)
	}
	if mode&Write != 0 {
		b.w = bufio.NewWriter(f)
	}
	return b
}

// Name returns the name of the underlying file.
func (b *Buffered) Name() string { return b.file.Name() }

// Mode returns the mode b has been opened with.
func (b *Buffered) Mode() OpenMode { return b.mode }

// Read implements io.Reader.
func (b *Buffered) Read(p []byte) (int, error) {
	if b.r == nil {
		return 0, ErrNotReadable
	}
	if b.w != nil && b.w.Buffered() > 0 {
		if err := b.w.Flush(); err != nil {
			return 0, err
		}
	}
	return b.r.Read(p)
}

// Write implements io.Writer.
func (b *Buffered) Write(p []byte) (int, error) {
	if b.w == nil {
		return 0, ErrNotWritable
	}
	if err := b.unread(); err != nil {
		return 0, err
	}
	return b.w.Write(p)
}

// WriteString implements io.StringWriter.
func (b *Buffered) WriteString(s string) (int, error) {
	if b.w == nil {
		return 0, ErrNotWritable
	}
	if err := b.unread(); err != nil {
		return 0, err
	}
	return b.w.WriteString(s)
}

// Seek implements io.Seeker. Buffered writes are flushed first.
func (b *Buffered) Seek(offset int64, whence int) (int64, error) {
	if err := b.Flush(); err != nil {
		return 0, err
	}
	if whence == io.SeekCurrent && b.r != nil {
		offset -= int64(b.r.Buffered())
	}
	if b.r != nil {
		b.r.Reset(b.file)
	}
	return b.file.Seek(offset, whence)
}

// Flush writes any buffered data to the file.
func (b *Buffered) Flush() error {
	if b.w == nil {
		return nil
	}
	return b.w.Flush()
}

// Close flushes, then closes the file.
func (b *Buffered) Close() error {
	err := b.Flush()
	if cerr := b.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// unread moves the file's offset back to what has been consumed,
// and discards the read-ahead.
func (b *Buffered) unread() error {
	if b.r == nil || b.r.Buffered() == 0 {
		return nil
	}
	if _, err := b.file.Seek(-int64(b.r.Buffered()), io.SeekCurrent); err != nil {
		return err
	}
	b.r.Reset(b.file)
	return nil
}

// release hands the file over, leaving b unusable.
func (b *Buffered) release() (*os.File, error) {
	if err := b.Flush(); err != nil {
		return nil, errors.Wrap(err, "flushing stream")
	}
	if err := b.unread(); err != nil {
		return nil, errors.Wrap(err, "rewinding stream")
	}
	f := b.file
	b.file, b.r, b.w = nil, nil, nil
	return f, nil
}
