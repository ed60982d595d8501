package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

// Android has no world-writable /tmp.
const fallbackTempDir = "/data/local/tmp"
