package mwc

import "github.com/quantmesh/randgen/seed"

// Marsaglia multiply-with-carry update constants. Each word keeps its low 16
// bits as the multiplicand and its high 16 bits as the carry, giving both
// word updates full period.
const (
	multA = 36969
	multB = 18000
)

// openScale maps a combined 32-bit word into the open interval (0,1):
// (x+1)*openScale is strictly positive for x = 0 and strictly below 1 for
// x = 2^32-1. The constant is just under 1/2^32.
const openScale = 2.328306435454494e-10

// Source is the core uniform generator. It owns its seed pair exclusively;
// every draw mutates the pair in place.
type Source struct {
	a uint32
	b uint32
}

// NewSource creates a Source seeded with p.
//
// A zero word is a fixed point of the carry update, so zero words are
// normalized to the corresponding default word.
func NewSource(p seed.Pair) *Source {
	s := &Source{}
	s.Seed(p)
	return s
}

// Seed replaces the generator state wholesale.
// Zero words are normalized as in NewSource.
func (s *Source) Seed(p seed.Pair) {
	s.a = p.A
	s.b = p.B
	if s.a == 0 {
		s.a = seed.DefaultPair.A
	}
	if s.b == 0 {
		s.b = seed.DefaultPair.B
	}
}

// State returns the current seed pair.
func (s *Source) State() seed.Pair {
	return seed.Pair{A: s.a, B: s.b}
}

// Uint32 advances both words by one carry step and returns their combination.
// The shift-and-add combination wraps modulo 2^32.
func (s *Source) Uint32() uint32 {
	s.a = multA*(s.a&0xffff) + s.a>>16
	s.b = multB*(s.b&0xffff) + s.b>>16
	return s.a<<16 + s.b
}

// Float64 returns the next value in the open interval (0,1).
// It never returns exactly 0 or 1.
func (s *Source) Float64() float64 {
	return (float64(s.Uint32()) + 1.0) * openScale
}
