package randname // import "blitznote.com/src/tmpfile/randname"

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"os"
	"reflect"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"
	"unsafe"

	"github.com/zeebo/blake3"
)

// Seed combines entropy sources of which none is trusted on its own:
// the OS random source, the wall clock, a hash of build identifiers,
// the process id, a stack address, and a function address.
//
// The sources are spread over nine words which then get mutated once
// by a PRNG, so that correlations between them don't survive into the seed.
func Seed() [4]uint64 {
	r := osRandom()
	clock := nonZero(uint64(time.Now().UnixNano()))
	base := r * r * clock
	build := hashOf(buildIdentifiers())

	words := [9]uint64{
		base,
		clock,
		build + base,
		hashOf(runtime.Version()) + build + base,
		hashOf(strconv.Itoa(os.Getpid())) + build + base,
		nonZero(uint64(reflect.ValueOf(Seed).Pointer())) + base,
		stackAddress() + base,
		clock * base,
		clock * clock,
	}
	return mutate(words, 1)
}

// mutate feeds words through a PCG rounds times.
// Every output word depends on every input word.
func mutate(words [9]uint64, rounds int) [4]uint64 {
	cur := words[:]
	for ; rounds > 0; rounds-- {
		pcg := mrand.NewPCG(cur[0], cur[1])
		for _, w := range cur[2:] {
			pcg.Seed(pcg.Uint64()^w, pcg.Uint64())
		}
		next := make([]uint64, len(words))
		for i := range next {
			next[i] = pcg.Uint64()
		}
		cur = next
	}

	var seed [4]uint64
	copy(seed[:], cur)
	return seed
}

// osRandom reads one word from the OS.
// Some platforms have been observed to return zeroes, hence the fallback.
func osRandom() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	if v := binary.LittleEndian.Uint64(b[:]); v != 0 {
		return v
	}
	_, _ = rand.Read(b[:1])
	return nonZero(uint64(b[0]))
}

func buildIdentifiers() string {
	s := runtime.GOOS + "/" + runtime.GOARCH
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	s += " " + info.Main.Path + "@" + info.Main.Version
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision", "vcs.time":
			s += " " + setting.Value
		}
	}
	return s
}

func hashOf(s string) uint64 {
	sum := blake3.Sum256([]byte(s))
	return nonZero(binary.LittleEndian.Uint64(sum[:8]))
}

//go:noinline
func stackAddress() uint64 {
	var v int
	return nonZero(uint64(uintptr(unsafe.Pointer(&v))))
}

// A zero would annihilate the products it takes part in.
func nonZero(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	return v
}
