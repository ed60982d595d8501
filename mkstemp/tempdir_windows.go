package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

import (
	"golang.org/x/sys/windows"
)

// TempDir returns the directory for temporary files as told by GetTempPath,
// or an empty string if that fails.
func TempDir() string {
	buf := make([]uint16, windows.MAX_PATH+1)
	for {
		n, err := windows.GetTempPath(uint32(len(buf)), &buf[0])
		if err != nil || n == 0 {
			return ""
		}
		if int(n) < len(buf) {
			return windows.UTF16ToString(buf[:n])
		}
		buf = make([]uint16, n+1)
	}
}
