//go:build unix

package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

import (
	"os"
)

// ISO/IEC 9945 (POSIX) names these, in this order.
var tempDirEnv = []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"}

// TempDir returns the directory for temporary files.
//
// The first of TMPDIR, TMP, TEMP, and TEMPDIR that is set and not empty wins.
// Else it is "/tmp", or "/data/local/tmp" on Android.
func TempDir() string {
	for _, key := range tempDirEnv {
		if dir, present := os.LookupEnv(key); present && dir != "" {
			return dir
		}
	}
	return fallbackTempDir
}
