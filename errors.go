// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"blitznote.com/src/tmpfile/mkstemp"
)

// Errors returned, or in the case of ErrInvalidOpenMode raised, by this package.
const (
	ErrConversion      tmpfileError = "tmpfile: cannot convert to another representation"
	ErrInvalidOpenMode tmpfileError = "tmpfile: open mode lacks Read and Write"
	ErrInvalidTemplate tmpfileError = "tmpfile: prefix or suffix is not an acceptable filename"
	ErrNotReadable     tmpfileError = "tmpfile: stream has not been opened for reading"
	ErrNotWritable     tmpfileError = "tmpfile: stream has not been opened for writing"

	// ErrAttemptsExhausted is returned if every candidate name has been taken.
	// It satisfies errors.Is(err, fs.ErrExist).
	ErrAttemptsExhausted = mkstemp.ErrAttemptsExhausted
)

type tmpfileError string

func (e tmpfileError) Error() string { return string(e) }

// conversionError is ErrConversion with its cause.
type conversionError struct {
	path string
	err  error
}

func (e *conversionError) Error() string {
	return string(ErrConversion) + ": " + e.path + ": " + e.err.Error()
}

func (e *conversionError) Is(target error) bool { return target == ErrConversion }

func (e *conversionError) Unwrap() error { return e.err }
