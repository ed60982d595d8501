//go:build unix && !android

package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

const fallbackTempDir = "/tmp"
