package isaac

import "golang.org/x/crypto/blake2b"

// Blake2Source is a deterministic seed expander based on Blake2b-512. It
// turns a byte seed of any length into an unbounded word stream by
// repeatedly hashing a 64-byte chained state, and is the package's stock
// SeedSource for seeding an engine from non-word material such as a
// passphrase or a key file.
//
// Blake2Source is deterministic: two sources built from the same seed
// produce the same stream.
type Blake2Source struct {
	data [64]byte // current Blake2b-512 output
	pos  int      // consumed bytes of data
}

// NewBlake2Source creates a seed source from a byte seed. The seed is
// hashed once to form the initial chained state.
func NewBlake2Source(seed []byte) *Blake2Source {
	g := &Blake2Source{pos: 64}
	g.data = blake2b.Sum512(seed)
	return g
}

// next replaces the chained state with its own hash.
func (g *Blake2Source) next() {
	g.data = blake2b.Sum512(g.data[:])
	g.pos = 0
}

func (g *Blake2Source) nextByte() byte {
	if g.pos >= len(g.data) {
		g.next()
	}
	b := g.data[g.pos]
	g.pos++
	return b
}

// Uint64 returns the next 8 stream bytes as a little-endian word.
func (g *Blake2Source) Uint64() uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(g.nextByte()) << (8 * i)
	}
	return v
}
