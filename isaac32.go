package isaac

import "math/rand"

// isaac32 is the 32-bit word variant.
type isaac32 struct{}

func (isaac32) golden() uint32 { return 0x9e3779b9 }

// mix is the 32-bit 8-register mixing network. The operation sequence is
// part of the algorithm's identity and is reproduced literally from the
// reference.
func (isaac32) mix(r *[8]uint32) {
	a, b, c, d, e, f, g, h := r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]

	a ^= b << 11
	d += a
	b += c

	b ^= c >> 2
	e += b
	c += d

	c ^= d << 8
	f += c
	d += e

	d ^= e >> 16
	g += d
	e += f

	e ^= f << 10
	h += e
	f += g

	f ^= g >> 4
	a += f
	g += h

	g ^= h << 8
	b += g
	h += a

	h ^= a >> 9
	c += h
	a += b

	r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7] = a, b, c, d, e, f, g, h
}

// generate runs one full generation pass: it advances the counter, walks
// the two halves of the memory array, and refills the output buffer with
// state-size fresh words.
//
// Each word goes through one of four sub-steps distinguished only by the
// transform applied to the accumulator (a<<13, a>>6, a<<2, a>>16, each
// XOR-combined into a). ISAAC's diffusion comes from the double indirection
// through mm: one load keyed by the low bits of the word just read, one by
// the bits above Alpha of the value just written. The indexed bit ranges
// are part of the algorithm's identity.
func (isaac32) generate(s *state[uint32]) {
	mm, r := s.mem, s.res
	half := len(mm) / 2
	mask := uint32(len(mm) - 1)
	alpha := s.alpha

	s.c++
	a, b := s.a, s.b+s.c

	i, j := 0, half
	step := func(t uint32) {
		x := mm[i]
		a = t + mm[j]
		j++
		y := mm[(x>>2)&mask] + a + b
		mm[i] = y
		b = mm[(y>>alpha>>2)&mask] + x
		r[i] = b
		i++
	}
	for pass := 0; pass < 2; pass++ {
		for end := i + half; i < end; {
			step(a ^ a<<13)
			step(a ^ a>>6)
			step(a ^ a<<2)
			step(a ^ a>>16)
		}
		j = 0
	}

	s.a, s.b = a, b
}

// Engine is a 32-bit ISAAC engine. It must be created with New; the zero
// value has no state and cannot generate.
type Engine struct {
	engine[uint32, isaac32]
}

// New creates a 32-bit engine, seeded with config.Seed (truncated to 32
// bits; zero reproduces the reference default seed).
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{}
	e.state = newState[uint32](config.alpha())
	e.Seed(uint32(config.Seed))
	return e, nil
}

// Equal reports whether both engines hold exactly the same state and will
// therefore produce identical streams.
func (e *Engine) Equal(other *Engine) bool {
	return e.state.equal(&other.state)
}

// Clone returns an independent copy of the engine. Advancing either engine
// does not affect the other.
func (e *Engine) Clone() *Engine {
	c := &Engine{}
	c.state = e.state.clone()
	return c
}

// Source adapts the engine to math/rand.Source64 so it can drive a
// *rand.Rand for distributions. The adapter composes each 64-bit value
// from two consecutive engine words, high word first. It shares the
// engine's state; it is also usable as a SeedSource for another engine.
func (e *Engine) Source() rand.Source64 {
	return engineSource32{e}
}

type engineSource32 struct {
	e *Engine
}

func (s engineSource32) Uint64() uint64 {
	hi := uint64(s.e.Uint())
	return hi<<32 | uint64(s.e.Uint())
}

func (s engineSource32) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s engineSource32) Seed(seed int64) {
	s.e.Seed(uint32(seed))
}
