package randgen

import (
	"errors"
	"fmt"

	"github.com/quantmesh/randgen/dist"
	"github.com/quantmesh/randgen/seed"
)

var (
	// ErrInvalidSeed is returned when supplied seed material is negative or
	// does not fit in 32 bits.
	ErrInvalidSeed = errors.New("invalid seed")
)

// ErrInvalidParameter indicates a distribution parameter outside its domain.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidParameter struct {
	Name  string
	Value float64
	cause error
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.Name, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() error { return e.cause }

// ErrInvalidBounds indicates triangular bounds that do not satisfy
// lower <= mode <= upper.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidBounds struct {
	Lower float64
	Mode  float64
	Upper float64
	cause error
}

func (e *ErrInvalidBounds) Error() string {
	return fmt.Sprintf("invalid bounds: lower=%v mode=%v upper=%v", e.Lower, e.Mode, e.Upper)
}

func (e *ErrInvalidBounds) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Seed validation unification.
	if errors.Is(err, seed.ErrNegativeSeed) {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	var overflow *seed.ErrSeedOverflow
	if errors.As(err, &overflow) {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	// Distribution parameter normalization.
	var nonPositive *dist.ErrNonPositiveParameter
	if errors.As(err, &nonPositive) {
		return &ErrInvalidParameter{Name: nonPositive.Name, Value: nonPositive.Value, cause: err}
	}
	var bounds *dist.ErrInvalidBounds
	if errors.As(err, &bounds) {
		return &ErrInvalidBounds{Lower: bounds.Lower, Mode: bounds.Mode, Upper: bounds.Upper, cause: err}
	}

	return err
}
