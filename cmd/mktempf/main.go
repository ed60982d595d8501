// Command mktempf creates a file with a unique name and prints that name.
//
// Unlike the file's contents, its name is random:
//
//	mktempf [-p DIR] [--suffix SUFFIX] [PREFIX]
//
// The file is left in place for the caller. With --dry-run it is removed
// right away, so only the name gets reserved for a moment.
package main

import (
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"blitznote.com/src/tmpfile"
)

type options struct {
	dir         string
	prefix      string
	suffix      string
	dryRun      bool
	verbose     bool
	strict      bool
	acceptRunes string
	attempts    int
}

func newApp(o *options) *kingpin.Application {
	app := kingpin.New("mktempf", "Create a file with a unique name, and print that name.")
	app.Flag("tmpdir", "Directory to create the file in. Defaults to $TMPDIR, $TMP, $TEMP, $TEMPDIR, or /tmp.").
		Short('p').PlaceHolder("DIR").StringVar(&o.dir)
	app.Flag("suffix", "Append this to the name.").StringVar(&o.suffix)
	app.Flag("dry-run", "Remove the file again, and only print its name.").Short('u').BoolVar(&o.dryRun)
	app.Flag("verbose", "Log creation and removal to stderr.").Short('v').BoolVar(&o.verbose)
	app.Flag("strict", "Reject prefixes and suffixes that are no acceptable filenames.").BoolVar(&o.strict)
	app.Flag("accept-runes", "With --strict, only accept runes in these ranges, like: x0061-x007A x0030-x0039").
		PlaceHolder("RANGES").StringVar(&o.acceptRunes)
	app.Flag("attempts", "Give up after this many names have been found taken.").Default("238328").IntVar(&o.attempts)
	app.Arg("prefix", "The name starts with this.").Default("tmp.").StringVar(&o.prefix)
	return app
}

// run creates the file. If 'lockdown' is set, the process loses access
// to everything but the target directory first, where the OS supports that.
func run(o options, stdout io.Writer, lockdown bool) error {
	cfg := tmpfile.Options{
		Dir:            o.dir,
		Prefix:         o.prefix,
		Suffix:         o.suffix,
		LogCreateClose: o.verbose,
		Attempts:       o.attempts,
		Strict:         o.strict || o.acceptRunes != "",
	}
	if o.acceptRunes != "" {
		table, err := tmpfile.ParseUnicodeBlockList(o.acceptRunes)
		if err != nil {
			return errors.Wrap(err, "--accept-runes")
		}
		cfg.AcceptableRunes = []*unicode.RangeTable{table}
	}

	if lockdown {
		dir := cfg.Dir
		if dir == "" {
			dir = tmpfile.TempDir()
		}
		if err := unveil(dir, "rwc"); err != nil {
			return err
		}
		if err := unveilBlock(); err != nil {
			return err
		}
	}

	f, err := tmpfile.New(cfg)
	defer f.Close()
	if err != nil {
		return err
	}
	if !o.dryRun {
		f.Detach()
	}

	_, err = fmt.Fprintln(stdout, f.Path())
	return err
}

func main() {
	var o options
	kingpin.MustParse(newApp(&o).Parse(os.Args[1:]))

	if err := run(o, os.Stdout, true); err != nil {
		fmt.Fprintln(os.Stderr, "mktempf:", err)
		os.Exit(1)
	}
}
