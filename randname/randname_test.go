package randname // import "blitznote.com/src/tmpfile/randname"

import (
	"strings"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerator(t *testing.T) {
	Convey("Generator", t, func() {
		Convey("draws only from the alphabet", func() {
			s := New([4]uint64{1, 2, 3, 4}).String(4096)
			So(len(s), ShouldEqual, 4096)
			for _, r := range s {
				So(strings.ContainsRune(Alphabet, r), ShouldBeTrue)
			}
		})

		Convey("is reproducible given the same seed", func() {
			a := New([4]uint64{7, 7, 7, 7}).String(32)
			b := New([4]uint64{7, 7, 7, 7}).String(32)
			c := New([4]uint64{7, 7, 7, 8}).String(32)
			So(a, ShouldEqual, b)
			So(a, ShouldNotEqual, c)
		})

		Convey("advances with every call", func() {
			g := New([4]uint64{1, 1, 1, 1})
			So(g.String(16), ShouldNotEqual, g.String(16))
		})

		Convey("covers every symbol", func() {
			g := New([4]uint64{9, 8, 7, 6})
			seen := make(map[byte]int, len(Alphabet))
			buf := make([]byte, len(Alphabet)*200)
			g.Read(buf)
			for _, b := range buf {
				seen[b]++
			}
			So(len(seen), ShouldEqual, len(Alphabet))
			for _, n := range seen {
				So(n, ShouldBeGreaterThan, 100)
				So(n, ShouldBeLessThan, 300)
			}
		})

		Convey("returns nothing for non-positive lengths", func() {
			So(New([4]uint64{}).String(0), ShouldEqual, "")
			So(New([4]uint64{}).String(-1), ShouldEqual, "")
		})

		Convey("can be shared between goroutines", func() {
			g := Default()
			var wg sync.WaitGroup
			names := make([]string, 64)
			for i := range names {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					names[i] = g.String(12)
				}(i)
			}
			wg.Wait()

			unique := make(map[string]struct{}, len(names))
			for _, n := range names {
				unique[n] = struct{}{}
			}
			So(len(unique), ShouldEqual, len(names))
		})
	})
}

func TestSeed(t *testing.T) {
	Convey("Seed", t, func() {
		Convey("differs between calls", func() {
			So(Seed(), ShouldNotResemble, Seed())
		})

		Convey("is never all-zero", func() {
			So(Seed(), ShouldNotResemble, [4]uint64{})
		})

		Convey("mutation spreads a change of any single word", func() {
			var words [9]uint64
			reference := mutate(words, 1)
			for i := range words {
				changed := words
				changed[i] = 1
				So(mutate(changed, 1), ShouldNotResemble, reference)
			}
		})

		Convey("Default is seeded once", func() {
			So(Default(), ShouldEqual, Default())
		})
	})
}
