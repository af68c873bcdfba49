package randgen

import (
	"github.com/quantmesh/randgen/core"
	"github.com/quantmesh/randgen/dist"
	"github.com/quantmesh/randgen/mwc"
	"github.com/quantmesh/randgen/seed"
	"github.com/quantmesh/randgen/trace"
)

// Generator is a deterministic, seedable pseudo-random engine with
// distribution samplers. It owns its seed state exclusively and must only be
// driven by one goroutine at a time; see ThreadLocal for concurrent use.
type Generator struct {
	src      *mwc.Source
	sampler  *dist.Sampler
	logger   *Logger
	metrics  MetricsCollector
	recorder *trace.Recorder
}

// New creates a Generator. Without seed options it starts from the documented
// default seed pair, so two generators constructed with the same options
// always produce identical sequences.
func New(optFns ...Option) (*Generator, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	pair := seed.DefaultPair
	if opts.spec != nil {
		p, err := seed.Resolve(seed.DefaultPair, opts.spec)
		if err != nil {
			return nil, translateError(err)
		}
		pair = p
	}

	return newGenerator(pair, opts), nil
}

func newGenerator(pair seed.Pair, opts options) *Generator {
	src := mwc.NewSource(pair)
	return &Generator{
		src:      src,
		sampler:  dist.NewSampler(src),
		logger:   opts.logger,
		metrics:  opts.metrics,
		recorder: opts.recorder,
	}
}

// Seeds returns the current live seed pair.
func (g *Generator) Seeds() seed.Pair {
	return g.src.State()
}

// SetSeeds replaces the seed state according to spec. A nil spec derives the
// seeds from the current wall-clock time. Replacing seeds also discards the
// sampler's cached spare deviate, so the next draw depends only on the new
// seed words.
//
// Validation happens here, never at first draw: invalid material fails with
// ErrInvalidSeed and leaves the generator untouched.
func (g *Generator) SetSeeds(spec seed.Spec) error {
	pair, err := seed.Resolve(g.src.State(), spec)
	if err != nil {
		g.metrics.RecordReseed(err)
		g.logger.LogReseed(seed.Pair{}, err)
		return translateError(err)
	}

	g.src.Seed(pair)
	g.sampler.Reset()
	g.metrics.RecordReseed(nil)
	g.logger.LogReseed(g.src.State(), nil)
	return nil
}

// observe reports an accepted draw to the metrics collector and the optional
// trace recorder.
func (g *Generator) observe(kind core.Kind, value float64) {
	g.metrics.RecordSample(kind, nil)
	if g.recorder != nil {
		if err := g.recorder.Record(kind, value); err != nil {
			g.logger.LogTraceError(kind, err)
		}
	}
}

// reject reports a refused sampling call. The seed state has not advanced.
func (g *Generator) reject(kind core.Kind, err error) error {
	g.metrics.RecordSample(kind, err)
	return translateError(err)
}

// Uniform returns the next value in the open interval (0,1).
// It never returns exactly 0 or 1.
func (g *Generator) Uniform() float64 {
	v := g.src.Float64()
	g.observe(core.KindUniform, v)
	return v
}

// UniformRange returns min + Uniform()*(max-min). The bounds are the caller's
// responsibility: min > max simply mirrors the interval.
func (g *Generator) UniformRange(min, max float64) float64 {
	v := min + g.src.Float64()*(max-min)
	g.observe(core.KindUniform, v)
	return v
}

// Normal returns a standard normal sample (mean 0, variance 1).
func (g *Generator) Normal() float64 {
	v := g.sampler.Normal()
	g.observe(core.KindNormal, v)
	return v
}

// Exponential returns an exponential sample with rate 1.
func (g *Generator) Exponential() float64 {
	v := g.sampler.Exponential()
	g.observe(core.KindExponential, v)
	return v
}

// Triangular returns a sample from the triangular distribution on
// [lower, upper] with the given mode. It fails with ErrInvalidBounds when
// lower <= mode <= upper does not hold; a failed call does not advance the
// seed state.
func (g *Generator) Triangular(lower, mode, upper float64) (float64, error) {
	v, err := g.sampler.Triangular(lower, mode, upper)
	if err != nil {
		return 0, g.reject(core.KindTriangular, err)
	}
	g.observe(core.KindTriangular, v)
	return v, nil
}

// Gamma returns a gamma sample with the given shape and scale. Both must be
// strictly positive.
func (g *Generator) Gamma(shape, scale float64) (float64, error) {
	v, err := g.sampler.Gamma(shape, scale)
	if err != nil {
		return 0, g.reject(core.KindGamma, err)
	}
	g.observe(core.KindGamma, v)
	return v, nil
}

// InverseGamma returns an inverse-gamma sample with the given shape and
// scale. Both must be strictly positive.
func (g *Generator) InverseGamma(shape, scale float64) (float64, error) {
	v, err := g.sampler.InverseGamma(shape, scale)
	if err != nil {
		return 0, g.reject(core.KindInverseGamma, err)
	}
	g.observe(core.KindInverseGamma, v)
	return v, nil
}

// Beta returns a beta sample. Both parameters must be strictly positive.
func (g *Generator) Beta(a, b float64) (float64, error) {
	v, err := g.sampler.Beta(a, b)
	if err != nil {
		return 0, g.reject(core.KindBeta, err)
	}
	g.observe(core.KindBeta, v)
	return v, nil
}

// ChiSquare returns a chi-square sample with df degrees of freedom.
// df must be strictly positive.
func (g *Generator) ChiSquare(df float64) (float64, error) {
	v, err := g.sampler.ChiSquare(df)
	if err != nil {
		return 0, g.reject(core.KindChiSquare, err)
	}
	g.observe(core.KindChiSquare, v)
	return v, nil
}

// Weibull returns a Weibull sample with the given shape and scale. Both must
// be strictly positive.
func (g *Generator) Weibull(shape, scale float64) (float64, error) {
	v, err := g.sampler.Weibull(shape, scale)
	if err != nil {
		return 0, g.reject(core.KindWeibull, err)
	}
	g.observe(core.KindWeibull, v)
	return v, nil
}

// Dirichlet returns a Dirichlet sample: one component per concentration
// parameter, each in [0,1], summing to 1. Every parameter must be strictly
// positive.
func (g *Generator) Dirichlet(alphas ...float64) ([]float64, error) {
	v, err := g.sampler.Dirichlet(alphas...)
	if err != nil {
		return nil, g.reject(core.KindDirichlet, err)
	}
	g.metrics.RecordSample(core.KindDirichlet, nil)
	if g.recorder != nil {
		for _, c := range v {
			if err := g.recorder.Record(core.KindDirichlet, c); err != nil {
				g.logger.LogTraceError(core.KindDirichlet, err)
				break
			}
		}
	}
	return v, nil
}

// Laplace returns a Laplace sample symmetric around mean. scale must be
// strictly positive.
func (g *Generator) Laplace(mean, scale float64) (float64, error) {
	v, err := g.sampler.Laplace(mean, scale)
	if err != nil {
		return 0, g.reject(core.KindLaplace, err)
	}
	g.observe(core.KindLaplace, v)
	return v, nil
}

// FillUniform fills dst with draws from the open interval (0,1).
func (g *Generator) FillUniform(dst []float64) {
	for i := range dst {
		dst[i] = g.Uniform()
	}
}

// FillNormal fills dst with standard normal draws.
func (g *Generator) FillNormal(dst []float64) {
	for i := range dst {
		dst[i] = g.Normal()
	}
}
