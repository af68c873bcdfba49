package dist

import (
	"fmt"
	"math"
)

// Source produces uniform draws in the open interval (0,1).
type Source interface {
	Float64() float64
}

// ErrNonPositiveParameter indicates a shape/scale/rate/df parameter that must
// be strictly positive.
type ErrNonPositiveParameter struct {
	Name  string
	Value float64
}

func (e *ErrNonPositiveParameter) Error() string {
	return fmt.Sprintf("%s must be positive, got %v", e.Name, e.Value)
}

// ErrInvalidBounds indicates triangular bounds that do not satisfy
// lower <= mode <= upper.
type ErrInvalidBounds struct {
	Lower float64
	Mode  float64
	Upper float64
}

func (e *ErrInvalidBounds) Error() string {
	return fmt.Sprintf("bounds must satisfy lower <= mode <= upper, got lower=%v mode=%v upper=%v",
		e.Lower, e.Mode, e.Upper)
}

// Sampler transforms uniform draws from a Source into samples from named
// distributions. It is stateful only through the Source it advances and the
// cached spare normal deviate; it must not be shared between goroutines.
type Sampler struct {
	src      Source
	spare    float64
	hasSpare bool
}

// NewSampler creates a Sampler drawing from src.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Reset discards the cached spare normal deviate. Call it after reseeding the
// underlying source so the next draw depends only on the new seed words.
func (s *Sampler) Reset() {
	s.hasSpare = false
	s.spare = 0
}

// positive validates that value is strictly positive (rejecting NaN).
func positive(name string, value float64) error {
	if !(value > 0) {
		return &ErrNonPositiveParameter{Name: name, Value: value}
	}
	return nil
}

// Normal returns a sample from the standard normal distribution (mean 0,
// variance 1) using the Marsaglia polar method. The method produces deviates
// in pairs; the second is cached and returned by the next call.
func (s *Sampler) Normal() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}
	for {
		u := 2*s.src.Float64() - 1
		v := 2*s.src.Float64() - 1
		q := u*u + v*v
		if q <= 0 || q >= 1 {
			continue
		}
		f := math.Sqrt(-2 * math.Log(q) / q)
		s.spare = v * f
		s.hasSpare = true
		return u * f
	}
}

// Exponential returns a sample from the exponential distribution with rate 1,
// via the inverse CDF -ln(U).
func (s *Sampler) Exponential() float64 {
	return -math.Log(s.src.Float64())
}

// Triangular returns a sample from the triangular distribution on
// [lower, upper] with the given mode. The result always lies in
// [lower, upper]. Degenerate bounds (lower == upper) yield lower without
// consuming a draw.
func (s *Sampler) Triangular(lower, mode, upper float64) (float64, error) {
	if !(lower <= mode && mode <= upper) {
		return 0, &ErrInvalidBounds{Lower: lower, Mode: mode, Upper: upper}
	}
	if lower == upper {
		return lower, nil
	}

	u := s.src.Float64()
	if u < (mode-lower)/(upper-lower) {
		return lower + math.Sqrt(u*(upper-lower)*(mode-lower)), nil
	}
	return upper - math.Sqrt((1-u)*(upper-lower)*(upper-mode)), nil
}

// Gamma returns a sample from the gamma distribution with the given shape and
// scale. Shapes >= 1 use the Marsaglia-Tsang squeeze method; shapes in (0,1)
// boost a gamma(shape+1) draw by U^(1/shape).
func (s *Sampler) Gamma(shape, scale float64) (float64, error) {
	if err := positive("shape", shape); err != nil {
		return 0, err
	}
	if err := positive("scale", scale); err != nil {
		return 0, err
	}
	return s.gamma(shape, scale), nil
}

// gamma samples without validating; callers validate first.
func (s *Sampler) gamma(shape, scale float64) float64 {
	if shape < 1 {
		return s.gamma(shape+1, scale) * math.Pow(s.src.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := s.Normal()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := s.src.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// InverseGamma returns a sample from the inverse-gamma distribution, computed
// as the reciprocal of a gamma draw with inverted scale.
func (s *Sampler) InverseGamma(shape, scale float64) (float64, error) {
	if err := positive("shape", shape); err != nil {
		return 0, err
	}
	if err := positive("scale", scale); err != nil {
		return 0, err
	}
	return 1 / s.gamma(shape, 1/scale), nil
}

// Beta returns a sample from the beta distribution via the ratio of two
// independent gamma draws.
func (s *Sampler) Beta(a, b float64) (float64, error) {
	if err := positive("a", a); err != nil {
		return 0, err
	}
	if err := positive("b", b); err != nil {
		return 0, err
	}
	x := s.gamma(a, 1)
	y := s.gamma(b, 1)
	return x / (x + y), nil
}

// ChiSquare returns a sample from the chi-square distribution with df degrees
// of freedom, which equals gamma(df/2, 2).
func (s *Sampler) ChiSquare(df float64) (float64, error) {
	if err := positive("df", df); err != nil {
		return 0, err
	}
	return s.gamma(df/2, 2), nil
}

// Weibull returns a sample from the Weibull distribution via the inverse CDF
// scale * (-ln U)^(1/shape).
func (s *Sampler) Weibull(shape, scale float64) (float64, error) {
	if err := positive("shape", shape); err != nil {
		return 0, err
	}
	if err := positive("scale", scale); err != nil {
		return 0, err
	}
	return scale * math.Pow(-math.Log(s.src.Float64()), 1/shape), nil
}

// Dirichlet returns a sample from the Dirichlet distribution with the given
// concentration parameters: one gamma(alpha_i, 1) draw per parameter,
// normalized by their sum. The result has one component per parameter, each
// in [0,1], summing to 1.
func (s *Sampler) Dirichlet(alphas ...float64) ([]float64, error) {
	if len(alphas) == 0 {
		return nil, &ErrNonPositiveParameter{Name: "len(alphas)", Value: 0}
	}
	for _, a := range alphas {
		if err := positive("alpha", a); err != nil {
			return nil, err
		}
	}

	out := make([]float64, len(alphas))
	sum := 0.0
	for i, a := range alphas {
		out[i] = s.gamma(a, 1)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out, nil
}

// Laplace returns a sample from the Laplace distribution, symmetric around
// mean, via the inverse-CDF sign/magnitude transform.
func (s *Sampler) Laplace(mean, scale float64) (float64, error) {
	if err := positive("scale", scale); err != nil {
		return 0, err
	}

	u := s.src.Float64() - 0.5
	if u < 0 {
		return mean + scale*math.Log1p(2*u), nil
	}
	return mean - scale*math.Log1p(-2*u), nil
}
