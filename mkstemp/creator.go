package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

import (
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"blitznote.com/src/tmpfile/randname"
)

const (
	// Placeholder is the width of the random span in a name.
	Placeholder = 6

	// DefaultAttempts is the historical TMP_MAX, 62³.
	DefaultAttempts = 238328
)

// Errors returned by Create.
const (
	ErrAttemptsExhausted creatorError = "mkstemp: every candidate name was taken"
	ErrNoTempDir         creatorError = "mkstemp: no directory for temporary files"
)

type creatorError string

func (e creatorError) Error() string { return string(e) }

// Is lets ErrAttemptsExhausted be handled like any other "file exists" error.
func (e creatorError) Is(target error) bool {
	return e == ErrAttemptsExhausted && target == fs.ErrExist
}

// Template describes the names to try.
type Template struct {
	Dir    string // If empty, TempDir is used.
	Prefix string
	Suffix string
}

// Candidate joins the parts of t around the random span.
func (t Template) Candidate(random string) string {
	var b strings.Builder
	b.Grow(len(t.Dir) + 1 + len(t.Prefix) + len(random) + len(t.Suffix))
	b.WriteString(t.Dir)
	if t.Dir != "" && !os.IsPathSeparator(t.Dir[len(t.Dir)-1]) {
		b.WriteByte(os.PathSeparator)
	}
	b.WriteString(t.Prefix)
	b.WriteString(random)
	b.WriteString(t.Suffix)
	return b.String()
}

// Result of Create. On failure Path is the last candidate,
// which is not to be removed by the caller.
type Result struct {
	Path     string
	Handle   Handle
	Attempts int
}

// Creator tries candidate names until one can be created.
//
// The zero value is ready for use.
type Creator struct {
	Primitive Primitive           // Defaults to OS.
	Names     *randname.Generator // Defaults to randname.Default().
	Attempts  int                 // Defaults to DefaultAttempts.
}

// Concurrent create loops of one process would only race each other.
var createMu sync.Mutex

// Create makes a new file following template t.
//
// If the name is taken, another random span is tried,
// up to c.Attempts times in total. Any other error ends the attempts.
func (c *Creator) Create(t Template, flag int) (Result, error) {
	prim := c.Primitive
	if prim == nil {
		prim = OS
	}
	names := c.Names
	if names == nil {
		names = randname.Default()
	}
	attempts := c.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if t.Dir == "" {
		t.Dir = TempDir()
		if t.Dir == "" {
			return Result{Handle: InvalidHandle}, ErrNoTempDir
		}
	}

	name := []byte(t.Candidate(strings.Repeat("X", Placeholder)))
	span := name[len(name)-len(t.Suffix)-Placeholder : len(name)-len(t.Suffix)]

	createMu.Lock()
	defer createMu.Unlock()

	for i := 1; i <= attempts; i++ {
		names.Read(span)
		path := string(name)

		h, err := prim.CreateExclusive(path, flag)
		switch {
		case err == nil:
			return Result{Path: path, Handle: h, Attempts: i}, nil
		case prim.IsExist(err):
			// Someone else has that name; guess again.
		default:
			return Result{Path: path, Handle: InvalidHandle, Attempts: i}, err
		}
	}

	return Result{Path: string(name), Handle: InvalidHandle, Attempts: attempts},
		errors.Wrapf(ErrAttemptsExhausted, "%d attempts for %s", attempts, t.Candidate(strings.Repeat("?", Placeholder)))
}
