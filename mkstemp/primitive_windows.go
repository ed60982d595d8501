// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/windows"
)

// Handle is a Windows file handle.
type Handle windows.Handle

// InvalidHandle is never returned for an open file.
const InvalidHandle = Handle(windows.InvalidHandle)

// Fd returns h in the form os.NewFile expects.
func (h Handle) Fd() uintptr { return uintptr(h) }

type osPrimitive struct{}

func (osPrimitive) CreateExclusive(path string, flag int) (Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return InvalidHandle, &fs.PathError{Op: "CreateFile", Path: path, Err: err}
	}

	var access uint32
	switch flag & (os.O_RDONLY | os.O_WRONLY | os.O_RDWR) {
	case os.O_RDONLY:
		access = windows.GENERIC_READ
	case os.O_WRONLY:
		access = windows.GENERIC_WRITE
	default:
		access = windows.GENERIC_READ | windows.GENERIC_WRITE
	}

	// CREATE_NEW, unlike OPEN_ALWAYS, fails if the file is there.
	h, err := windows.CreateFile(p, access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.CREATE_NEW, windows.FILE_ATTRIBUTE_TEMPORARY, 0)
	if err != nil {
		return InvalidHandle, &fs.PathError{Op: "CreateFile", Path: path, Err: err}
	}
	return Handle(h), nil
}

func (osPrimitive) Close(h Handle) error {
	if h == InvalidHandle {
		return fs.ErrClosed
	}
	return windows.CloseHandle(windows.Handle(h))
}

func (osPrimitive) Remove(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err == nil {
		err = windows.DeleteFile(p)
	}
	if err != nil {
		return &fs.PathError{Op: "DeleteFile", Path: path, Err: err}
	}
	return nil
}

func (osPrimitive) Dup(h Handle) (Handle, error) {
	self := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(self, windows.Handle(h), self, &dup, 0, false, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return InvalidHandle, os.NewSyscallError("DuplicateHandle", err)
	}
	return Handle(dup), nil
}

func (osPrimitive) IsExist(err error) bool {
	return errors.Is(err, windows.ERROR_FILE_EXISTS) ||
		errors.Is(err, windows.ERROR_ALREADY_EXISTS)
}
