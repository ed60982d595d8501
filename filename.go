package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

const (
	// AlwaysRejectRunes contains runes that are not safe to use with network shares.
	AlwaysRejectRunes = `"*:<>?|\`

	runeSpatium = '\u2009'

	errStrUnexpectedRange = "unexpected Unicode range at "
)

// Happen when parsing ranges.
const (
	errOutOfBounds tmpfileError = "tmpfile: value out of bounds"
)

// Not all runes in unicode.PrintRanges are suitable for filenames.
var excludedRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2028, Hi: 0x202f, Stride: 1}, // new line, paragraph etc.
		{Lo: 0xfff0, Hi: 0xffff, Stride: 1}, // specials, and invalid
	},
	LatinOffset: 0,
}

// IsAcceptableFilename reports whether s can be part of a file's name
// without causing grief on other systems, or with people.
//
// Setting 'reduceAcceptableRunesTo' reduces the supremum unicode.PrintRanges.
// With 'enforceForm', s must be normalized under that form.
//
// Of the runes representing space only U+0020 (space) and U+2009 (spatium)
// are acceptable.
func IsAcceptableFilename(s string, reduceAcceptableRunesTo []*unicode.RangeTable,
	enforceForm *norm.Form) bool {
	if enforceForm != nil && !enforceForm.IsNormalString(s) {
		return false
	}

	for _, r := range s {
		if reduceAcceptableRunesTo != nil && !unicode.In(r, reduceAcceptableRunesTo...) {
			return false
		}
		if r <= unicode.MaxLatin1 && strings.ContainsRune(AlwaysRejectRunes, r) {
			return false
		}
		if r == runeSpatium {
			continue
		}
		if unicode.Is(excludedRunes, r) ||
			!unicode.IsPrint(r) { // this takes care of the "spaces" as well
			return false
		}
	}

	return true
}

func containsPathSeparator(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})
}

// ParseUnicodeBlockList translates a string with space-delimited Unicode ranges to a unicode.RangeTable,
// for use with Options.AcceptableRunes.
//
// All elements must fit into uint32.
// A range must begin with its lower bound, and ranges must not overlap (this is not checked).
//
// The format of one range is as follows, with 'stride' being set to '1' if left empty.
//
//	<low>-<high>[:<stride>]
func ParseUnicodeBlockList(str string) (*unicode.RangeTable, error) {
	haveRanges := make([][3]uint64, 0, strings.Count(str, " ")+1)

	var s scanner.Scanner
	s.Init(strings.NewReader(str))
	unexpected := func() error {
		return errors.New(errStrUnexpectedRange + s.Pos().String())
	}
	bound := func() (uint64, error) {
		if s.Scan() != scanner.Ident {
			return 0, unexpected()
		}
		v, err := strconv.ParseUint(strings.TrimLeft(s.TokenText(), "uU+x"), 16, 32)
		if err != nil {
			return 0, unexpected()
		}
		return v, nil
	}

	for s.Peek() != scanner.EOF {
		low, err := bound()
		if err != nil {
			if s.TokenText() == "" { // trailing whitespace or comment
				break
			}
			return nil, err
		}
		if tok := s.Scan(); !(tok == '-' || tok == '–') {
			return nil, unexpected()
		}
		high, err := bound()
		if err != nil {
			return nil, err
		}

		stride := uint64(1)
		if s.Peek() == ':' {
			s.Scan()
			if s.Scan() != scanner.Int {
				return nil, unexpected()
			}
			if stride, err = strconv.ParseUint(s.TokenText(), 10, 32); err != nil {
				return nil, unexpected()
			}
		}

		haveRanges = append(haveRanges, [3]uint64{low, high, stride})
	}

	slices.SortFunc(haveRanges, func(a, b [3]uint64) int {
		return slices.Compare(a[:], b[:])
	})

	rt := unicode.RangeTable{}
	for _, rng := range haveRanges {
		switch {
		case rng[1] <= unicode.MaxLatin1:
			rt.LatinOffset++
			fallthrough
		case rng[1] <= math.MaxUint16:
			rt.R16 = append(rt.R16, unicode.Range16{
				Lo: uint16(rng[0]), Hi: uint16(rng[1]), Stride: uint16(rng[2]),
			})
		case rng[1] <= math.MaxUint32:
			rt.R32 = append(rt.R32, unicode.Range32{
				Lo: uint32(rng[0]), Hi: uint32(rng[1]), Stride: uint32(rng[2]),
			})
		default:
			return nil, errOutOfBounds
		}
	}

	return &rt, nil
}
