package isaac

// SeedSource is an entropy-expanding stream of seed words. It is satisfied
// by *math/rand.Rand, by the engine adapters returned from Source, and by
// Blake2Source. SeedFrom draws exactly one value per state word and
// truncates each to the engine's word width.
type SeedSource interface {
	Uint64() uint64
}

// variant supplies the word-width-specific pieces of the algorithm: the
// golden-ratio warm-up constant, the 8-register mixing network, and the
// bulk generation step. One zero-size implementation exists per word width
// and is bound as a type parameter, so calls resolve at compile time.
type variant[W Word] interface {
	golden() W
	mix(r *[8]W)
	generate(s *state[W])
}

// state is the complete engine state: the output buffer res with its
// cursor cnt, the memory array mem, and the accumulators a, b, c.
// res and mem always have the same length, a power of two.
type state[W Word] struct {
	alpha uint
	res   []W
	mem   []W
	a     W
	b     W
	c     W
	cnt   int
}

func newState[W Word](alpha uint) state[W] {
	n := 1 << alpha
	return state[W]{
		alpha: alpha,
		res:   make([]W, n),
		mem:   make([]W, n),
	}
}

// equal reports exact element-wise state equality. States with different
// sizes are never equal.
func (s *state[W]) equal(o *state[W]) bool {
	if s.a != o.a || s.b != o.b || s.c != o.c || s.cnt != o.cnt {
		return false
	}
	if len(s.res) != len(o.res) {
		return false
	}
	for i := range s.res {
		if s.res[i] != o.res[i] || s.mem[i] != o.mem[i] {
			return false
		}
	}
	return true
}

// clone returns an independent deep copy.
func (s *state[W]) clone() state[W] {
	c := *s
	c.res = append([]W(nil), s.res...)
	c.mem = append([]W(nil), s.mem...)
	return c
}

// engine is the scaffold shared by both word widths. It owns the state and
// orchestrates seeding and consumption, delegating the constant, the mixing
// network and the generation step to the variant V.
type engine[W Word, V variant[W]] struct {
	state[W]
}

// Seed reseeds the engine from a single word, discarding all prior state.
// Seed(0) reproduces the state of a freshly constructed engine.
func (e *engine[W, V]) Seed(s W) {
	for i := range e.res {
		e.res[i] = s
	}
	e.initialize()
}

// SeedFrom reseeds the engine from a seed source, drawing exactly one value
// per state word. Each drawn value is truncated to the engine's word width.
// The draw completes before any state is touched, so a source backed by
// this same engine (self-seeding) reads a clean stream.
func (e *engine[W, V]) SeedFrom(src SeedSource) {
	buf := make([]W, len(e.res))
	for i := range buf {
		buf[i] = W(src.Uint64())
	}
	copy(e.res, buf)
	e.initialize()
}

// SeedWords reseeds the engine from a slice of words. If the slice is
// shorter than the state size it is re-read cyclically from its start until
// the state is full. An empty slice is rejected with ErrEmptySeed and
// leaves the engine unchanged.
func (e *engine[W, V]) SeedWords(words []W) error {
	if len(words) == 0 {
		return ErrEmptySeed
	}
	for i := range e.res {
		e.res[i] = words[i%len(words)]
	}
	e.initialize()
	return nil
}

// initialize diffuses the seed material sitting in the output buffer into
// the memory array and produces the first output batch.
//
// Eight working registers are warmed up from the golden-ratio constant with
// four seed-independent scrambles. Two absorption passes then walk the
// memory array in 8-word chunks, adding the chunk into the registers,
// scrambling once, and writing the registers back. The first pass absorbs
// the seed from the output buffer; the second re-absorbs the freshly
// written memory so every seed word influences every memory word.
func (e *engine[W, V]) initialize() {
	var v V

	var r [8]W
	g := v.golden()
	for i := range r {
		r[i] = g
	}
	e.a, e.b, e.c = 0, 0, 0

	for i := 0; i < 4; i++ {
		v.mix(&r)
	}

	for _, src := range [2][]W{e.res, e.mem} {
		for i := 0; i < len(e.mem); i += 8 {
			for k, w := range src[i : i+8] {
				r[k] += w
			}
			v.mix(&r)
			copy(e.mem[i:i+8], r[:])
		}
	}

	v.generate(&e.state)
	e.cnt = len(e.res)
}

// Uint returns the next word of the stream. The output buffer is consumed
// from its top slot downward; when it is exhausted a full generation pass
// refills it before the next word is served.
func (e *engine[W, V]) Uint() W {
	if e.cnt == 0 {
		var v V
		v.generate(&e.state)
		e.cnt = len(e.res)
	}
	e.cnt--
	return e.res[e.cnt]
}

// Discard advances the stream by n words, discarding the results. There is
// no jump-ahead shortcut; the cost is always n single-word advances.
func (e *engine[W, V]) Discard(n uint64) {
	for ; n > 0; n-- {
		e.Uint()
	}
}

// Min returns the smallest value Uint can produce.
func (e *engine[W, V]) Min() W { return 0 }

// Max returns the largest value Uint can produce.
func (e *engine[W, V]) Max() W { return ^W(0) }

// StateSize returns the number of words in the internal state, 2^Alpha.
func (e *engine[W, V]) StateSize() int { return len(e.res) }
