// Package isaac provides a pure-Go implementation of the ISAAC family of
// pseudorandom number generators designed by Bob Jenkins, in both the
// 32-bit (ISAAC) and 64-bit (ISAAC-64) word variants.
//
// ISAAC produces uniformly distributed unsigned words from a deterministic
// internal state: a memory array of 2^Alpha words advanced in bulk passes,
// with data-dependent indirect addressing providing diffusion. Engines are
// reproducible: two engines given the same seed emit identical streams, and
// a running engine can be checkpointed and restored through its textual
// state encoding.
//
// Example usage:
//
//	gen, err := isaac.New(isaac.Config{Seed: 1234})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	word := gen.Uint()
//
// Engines hold no internal synchronization. Callers that generate from
// multiple goroutines must own one engine per goroutine.
package isaac

import (
	"errors"
	"fmt"
)

const (
	// DefaultAlpha is the state-size exponent used when Config.Alpha is zero.
	// It matches the reference algorithm's recommended setting; the internal
	// state then holds 256 words.
	DefaultAlpha = 8

	// MinAlpha is the smallest accepted state-size exponent. Seeding absorbs
	// the seed material in 8-word chunks and the generation pass walks the
	// state in unrolled quarters, so the state must hold at least 8 words.
	MinAlpha = 3

	// MaxAlpha is the largest accepted state-size exponent (a 16M-word state).
	MaxAlpha = 24
)

// ErrEmptySeed is returned by SeedWords when the seed slice is empty.
// An empty slice has no well-defined cyclic repetition, so it is rejected
// rather than silently treated as a default seed.
var ErrEmptySeed = errors.New("isaac: empty seed slice")

// Config specifies the construction parameters of an engine. The zero value
// selects DefaultAlpha and the reference default seed of zero, reproducing
// the reference algorithm's default-constructed state.
type Config struct {
	// Alpha fixes the internal state size at 2^Alpha words. Zero selects
	// DefaultAlpha. Engines built with different Alpha values have different
	// state shapes and never compare equal.
	Alpha uint

	// Seed is the initial single-word seed, truncated to the engine's word
	// width. The engine is fully seeded on construction; any of the Seed*
	// methods may be used afterwards to reseed from richer material.
	Seed uint64
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Alpha != 0 && (c.Alpha < MinAlpha || c.Alpha > MaxAlpha) {
		return fmt.Errorf("isaac: alpha %d out of range [%d, %d]", c.Alpha, MinAlpha, MaxAlpha)
	}
	return nil
}

// alpha returns the effective state-size exponent.
func (c *Config) alpha() uint {
	if c.Alpha == 0 {
		return DefaultAlpha
	}
	return c.Alpha
}

// Word is the set of word widths the engine variants operate on.
type Word interface {
	~uint32 | ~uint64
}

// wordBits reports the width of W in bits.
func wordBits[W Word]() int {
	bits := 0
	for v := ^W(0); v != 0; v >>= 8 {
		bits += 8
	}
	return bits
}
