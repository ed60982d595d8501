// Package randname generates the random span of temporary file names.
//
// Names are drawn from a 62-symbol alphabet that is safe on every filesystem
// this module targets. Generators are safe for concurrent use; every draw
// holds the generator's lock.
package randname // import "blitznote.com/src/tmpfile/randname"

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Alphabet contains the symbols random spans are made of.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator yields a stream of symbols from Alphabet.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator that is fully determined by seed.
//
// Use this in tests, or when names must be reproducible.
func New(seed [4]uint64) *Generator {
	var key [32]byte
	for i, w := range seed {
		binary.LittleEndian.PutUint64(key[i*8:], w)
	}
	return &Generator{rng: rand.New(rand.NewChaCha8(key))}
}

// NewSeeded returns a Generator seeded from several weak entropy sources.
// See Seed.
func NewSeeded() *Generator {
	return New(Seed())
}

var shared = sync.OnceValue(NewSeeded)

// Default returns the process-wide Generator.
//
// It is seeded on first use.
func Default() *Generator {
	return shared()
}

// Read overwrites every byte of p with a symbol from Alphabet.
func (g *Generator) Read(p []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range p {
		p[i] = Alphabet[g.rng.IntN(len(Alphabet))]
	}
}

// String returns k symbols.
func (g *Generator) String(k int) string {
	if k <= 0 {
		return ""
	}
	b := make([]byte, k)
	g.Read(b)
	return string(b)
}
