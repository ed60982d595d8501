package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"blitznote.com/src/tmpfile/mkstemp"
	"blitznote.com/src/tmpfile/randname"
)

// Options configure the construction of a temporary file.
//
// The zero value results in a file with a bare random name
// in the directory returned by TempDir.
type Options struct {
	// Directory to create the file in. Defaults to TempDir().
	Dir string

	// The name will be Prefix, six random symbols, and Suffix.
	Prefix string
	Suffix string

	// How a Stream is opened. Defaults to DefaultMode.
	// File and Descriptor are always opened for reading and writing,
	// but panic on an invalid Mode all the same.
	Mode OpenMode

	// Log creation, and deletion or detachment.
	LogCreateClose bool

	// Receives the messages enabled by LogCreateClose, and errors during cleanup.
	// Defaults to a logger writing to stderr if LogCreateClose is set.
	Logger *zap.Logger

	// Source of random spans. Defaults to randname.Default().
	Names *randname.Generator

	// Defaults to mkstemp.OS.
	Primitive mkstemp.Primitive

	// Maximum number of candidate names to try. Defaults to mkstemp.DefaultAttempts.
	Attempts int

	// If set, Prefix and Suffix must satisfy IsAcceptableFilename (in NFC)
	// with AcceptableRunes, and not contain a path separator.
	Strict          bool
	AcceptableRunes []*unicode.RangeTable
}

// TempDir returns the directory temporary files go to if Options.Dir is empty.
func TempDir() string {
	return mkstemp.TempDir()
}

func (o *Options) logger() *zap.Logger {
	switch {
	case o.Logger != nil:
		return o.Logger
	case o.LogCreateClose:
		return stderrLogger()
	default:
		return zap.NewNop()
	}
}

func (o *Options) primitive() mkstemp.Primitive {
	if o.Primitive == nil {
		return mkstemp.OS
	}
	return o.Primitive
}

func (o *Options) creator() *mkstemp.Creator {
	return &mkstemp.Creator{
		Primitive: o.primitive(),
		Names:     o.Names,
		Attempts:  o.Attempts,
	}
}

func (o *Options) template() mkstemp.Template {
	return mkstemp.Template{Dir: o.Dir, Prefix: o.Prefix, Suffix: o.Suffix}
}

// checkTemplate is a no-op unless o.Strict is set.
func (o *Options) checkTemplate() error {
	if !o.Strict {
		return nil
	}
	nfc := norm.NFC
	for _, s := range [...]string{o.Prefix, o.Suffix} {
		if containsPathSeparator(s) || !IsAcceptableFilename(s, o.AcceptableRunes, &nfc) {
			return ErrInvalidTemplate
		}
	}
	return nil
}
