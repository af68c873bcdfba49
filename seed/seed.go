package seed

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Pair is the two-word seed state of the core generator. Arithmetic on the
// words wraps modulo 2^32.
type Pair struct {
	A uint32
	B uint32
}

// DefaultPair is used when no seed material is supplied. The values are the
// classic Marsaglia multiply-with-carry starting words.
var DefaultPair = Pair{A: 362436069, B: 521288629}

var (
	// ErrNegativeSeed is returned when a supplied seed value is negative.
	ErrNegativeSeed = errors.New("seed value must be non-negative")
)

// ErrSeedOverflow indicates a seed value that does not fit in 32 bits.
type ErrSeedOverflow struct {
	Value int64
}

func (e *ErrSeedOverflow) Error() string {
	return fmt.Sprintf("seed value %d exceeds 32 bits", e.Value)
}

// Spec describes how to derive a seed pair from the current one.
// The set of implementations is closed; construct values with FromClock,
// FromInt, FromInts or FromTime.
type Spec interface {
	resolve(prev Pair) (Pair, error)
}

// Resolve derives a new seed pair from spec, given the current pair.
// A nil spec behaves like FromClock.
func Resolve(prev Pair, spec Spec) (Pair, error) {
	if spec == nil {
		spec = FromClock()
	}
	return spec.resolve(prev)
}

// word validates a caller-supplied seed value and narrows it to 32 bits.
func word(v int64) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSeed, v)
	}
	if v > math.MaxUint32 {
		return 0, &ErrSeedOverflow{Value: v}
	}
	return uint32(v), nil
}

type clockSpec struct{}

// FromClock derives both words from the current wall-clock time, using the
// same decomposition as FromTime.
func FromClock() Spec { return clockSpec{} }

func (clockSpec) resolve(prev Pair) (Pair, error) {
	return timeSpec{t: time.Now()}.resolve(prev)
}

type intSpec struct {
	n int64
}

// FromInt replaces only the second seed word, leaving the first word at its
// prior value. Negative values fail with ErrNegativeSeed.
func FromInt(n int64) Spec { return intSpec{n: n} }

func (s intSpec) resolve(prev Pair) (Pair, error) {
	b, err := word(s.n)
	if err != nil {
		return Pair{}, err
	}
	return Pair{A: prev.A, B: b}, nil
}

type pairSpec struct {
	a, b int64
}

// FromInts replaces both seed words. Negative values fail with
// ErrNegativeSeed.
func FromInts(a, b int64) Spec { return pairSpec{a: a, b: b} }

func (s pairSpec) resolve(Pair) (Pair, error) {
	a, err := word(s.a)
	if err != nil {
		return Pair{}, err
	}
	b, err := word(s.b)
	if err != nil {
		return Pair{}, err
	}
	return Pair{A: a, B: b}, nil
}

type timeSpec struct {
	t time.Time
}

// FromTime decomposes a timestamp into a seed pair: the first word is the
// epoch second (mod 2^32), the second word is the microsecond within that
// second. The same timestamp always yields the same pair.
func FromTime(t time.Time) Spec { return timeSpec{t: t} }

func (s timeSpec) resolve(Pair) (Pair, error) {
	return Pair{
		A: uint32(s.t.Unix()),
		B: uint32(s.t.Nanosecond() / 1000),
	}, nil
}
