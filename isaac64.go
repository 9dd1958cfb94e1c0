package isaac

import "math/rand"

// isaac64 is the 64-bit word variant.
type isaac64 struct{}

func (isaac64) golden() uint64 { return 0x9e3779b97f4a7c13 }

// mix is the 64-bit 8-register mixing network, reproduced literally from
// the reference. It is a different instruction sequence from the 32-bit
// network, not a widened copy of it.
func (isaac64) mix(r *[8]uint64) {
	a, b, c, d, e, f, g, h := r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]

	a -= e
	f ^= h >> 9
	h += a

	b -= f
	g ^= a << 9
	a += b

	c -= g
	h ^= b >> 23
	b += c

	d -= h
	a ^= c << 15
	c += d

	e -= a
	b ^= d >> 14
	d += e

	f -= b
	c ^= e << 20
	e += f

	g -= c
	d ^= f >> 17
	f += g

	h -= d
	e ^= g << 14
	g += h

	r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7] = a, b, c, d, e, f, g, h
}

// generate runs one full 64-bit generation pass. It mirrors the 32-bit
// walk but with the 64-bit accumulator transforms (a NOT-combined first
// sub-step, then three XOR-based ones: a<<21, a>>5, a<<12, a>>33) and
// indirect indexing scaled for 8-byte words.
func (isaac64) generate(s *state[uint64]) {
	mm, r := s.mem, s.res
	half := len(mm) / 2
	mask := uint64(len(mm) - 1)
	alpha := s.alpha

	s.c++
	a, b := s.a, s.b+s.c

	i, j := 0, half
	step := func(t uint64) {
		x := mm[i]
		a = t + mm[j]
		j++
		y := mm[(x>>3)&mask] + a + b
		mm[i] = y
		b = mm[(y>>alpha>>3)&mask] + x
		r[i] = b
		i++
	}
	for pass := 0; pass < 2; pass++ {
		for end := i + half; i < end; {
			step(^(a ^ a<<21))
			step(a ^ a>>5)
			step(a ^ a<<12)
			step(a ^ a>>33)
		}
		j = 0
	}

	s.a, s.b = a, b
}

// Engine64 is a 64-bit ISAAC engine. It must be created with New64; the
// zero value has no state and cannot generate.
type Engine64 struct {
	engine[uint64, isaac64]
}

// New64 creates a 64-bit engine, seeded with config.Seed (zero reproduces
// the reference default seed).
func New64(config Config) (*Engine64, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine64{}
	e.state = newState[uint64](config.alpha())
	e.Seed(config.Seed)
	return e, nil
}

// Equal reports whether both engines hold exactly the same state and will
// therefore produce identical streams.
func (e *Engine64) Equal(other *Engine64) bool {
	return e.state.equal(&other.state)
}

// Clone returns an independent copy of the engine.
func (e *Engine64) Clone() *Engine64 {
	c := &Engine64{}
	c.state = e.state.clone()
	return c
}

// Source adapts the engine to math/rand.Source64. The adapter shares the
// engine's state; it is also usable as a SeedSource for another engine,
// which is how the reference's self-seeding strategy is expressed here.
func (e *Engine64) Source() rand.Source64 {
	return engineSource64{e}
}

type engineSource64 struct {
	e *Engine64
}

func (s engineSource64) Uint64() uint64 {
	return s.e.Uint()
}

func (s engineSource64) Int63() int64 {
	return int64(s.e.Uint() >> 1)
}

func (s engineSource64) Seed(seed int64) {
	s.e.Seed(uint64(seed))
}
