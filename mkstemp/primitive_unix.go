// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Handle is a file descriptor.
type Handle int

// InvalidHandle is never returned for an open file.
const InvalidHandle Handle = -1

// Fd returns h in the form os.NewFile expects.
func (h Handle) Fd() uintptr { return uintptr(h) }

// Files are created with these permissions, before umask.
const permBitsFile = 0o600

type osPrimitive struct{}

func (osPrimitive) CreateExclusive(path string, flag int) (Handle, error) {
	flag &= os.O_RDONLY | os.O_WRONLY | os.O_RDWR
	for {
		fd, err := unix.Open(path, flag|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, permBitsFile)
		switch err {
		case nil:
			return Handle(fd), nil
		case unix.EINTR:
			continue
		default:
			return InvalidHandle, &fs.PathError{Op: "open", Path: path, Err: err}
		}
	}
}

func (osPrimitive) Close(h Handle) error {
	if h < 0 {
		return fs.ErrClosed
	}
	return unix.Close(int(h))
}

func (osPrimitive) Remove(path string) error {
	err := unix.Unlink(path)
	if err != nil {
		return &fs.PathError{Op: "unlink", Path: path, Err: err}
	}
	return nil
}

func (osPrimitive) Dup(h Handle) (Handle, error) {
	fd, err := unix.Dup(int(h))
	if err != nil {
		return InvalidHandle, os.NewSyscallError("dup", err)
	}
	unix.CloseOnExec(fd)
	return Handle(fd), nil
}

func (osPrimitive) IsExist(err error) bool {
	return errors.Is(err, unix.EEXIST)
}
