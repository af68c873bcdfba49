package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmesh/randgen/mwc"
	"github.com/quantmesh/randgen/seed"
	"github.com/quantmesh/randgen/testutil"
)

func newSampler() (*Sampler, *mwc.Source) {
	src := mwc.NewSource(seed.DefaultPair)
	return NewSampler(src), src
}

func TestParameterValidation(t *testing.T) {
	s, _ := newSampler()

	tests := []struct {
		name string
		call func() error
	}{
		{"GammaShape", func() error { _, err := s.Gamma(0, 1); return err }},
		{"GammaNegativeShape", func() error { _, err := s.Gamma(-2, 1); return err }},
		{"GammaScale", func() error { _, err := s.Gamma(1, 0); return err }},
		{"GammaNaNShape", func() error { _, err := s.Gamma(math.NaN(), 1); return err }},
		{"InverseGammaShape", func() error { _, err := s.InverseGamma(-1, 1); return err }},
		{"InverseGammaScale", func() error { _, err := s.InverseGamma(1, -1); return err }},
		{"BetaA", func() error { _, err := s.Beta(0, 1); return err }},
		{"BetaB", func() error { _, err := s.Beta(1, 0); return err }},
		{"ChiSquareDF", func() error { _, err := s.ChiSquare(0); return err }},
		{"WeibullShape", func() error { _, err := s.Weibull(0, 1); return err }},
		{"WeibullScale", func() error { _, err := s.Weibull(1, -3); return err }},
		{"LaplaceScale", func() error { _, err := s.Laplace(0, 0); return err }},
		{"DirichletAlpha", func() error { _, err := s.Dirichlet(1, -1); return err }},
		{"DirichletEmpty", func() error { _, err := s.Dirichlet(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var nonPositive *ErrNonPositiveParameter
			require.ErrorAs(t, err, &nonPositive)
		})
	}
}

func TestTriangularBoundsValidation(t *testing.T) {
	s, _ := newSampler()

	tests := []struct {
		name               string
		lower, mode, upper float64
	}{
		{"ModeBelowLower", 1, 0, 2},
		{"ModeAboveUpper", 0, 3, 2},
		{"LowerAboveUpper", 5, 5, 2},
		{"NaNMode", 0, math.NaN(), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Triangular(tt.lower, tt.mode, tt.upper)
			var bounds *ErrInvalidBounds
			require.ErrorAs(t, err, &bounds)
			assert.Equal(t, tt.lower, bounds.Lower)
			assert.Equal(t, tt.upper, bounds.Upper)
		})
	}
}

func TestRejectedCallDoesNotAdvanceState(t *testing.T) {
	s, src := newSampler()
	before := src.State()

	_, err := s.Gamma(-1, 1)
	require.Error(t, err)
	_, err = s.Triangular(2, 1, 0)
	require.Error(t, err)
	_, err = s.Dirichlet(1, 0)
	require.Error(t, err)

	assert.Equal(t, before, src.State())

	// The next draw must match a completely fresh source.
	fresh := mwc.NewSource(seed.DefaultPair)
	assert.Equal(t, fresh.Float64(), src.Float64())
}

func TestTriangularDegenerateBounds(t *testing.T) {
	s, src := newSampler()
	before := src.State()

	v, err := s.Triangular(3, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, before, src.State())
}

func TestTriangularRange(t *testing.T) {
	s, _ := newSampler()
	for i := 0; i < 10000; i++ {
		v, err := s.Triangular(2, 3, 10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 2.0, "draw %d", i)
		require.LessOrEqual(t, v, 10.0, "draw %d", i)
	}
}

func TestNormalMoments(t *testing.T) {
	s, _ := newSampler()
	xs := testutil.Collect(50000, s.Normal)

	assert.InDelta(t, 0.0, testutil.Mean(xs), 0.01)
	assert.InDelta(t, 1.0, testutil.StdDev(xs), 0.01)
}

func TestNormalSpareIsDeterministic(t *testing.T) {
	s1, _ := newSampler()
	s2, _ := newSampler()

	for i := 0; i < 1000; i++ {
		require.Equal(t, s1.Normal(), s2.Normal(), "draw %d", i)
	}
}

func TestResetDiscardsSpare(t *testing.T) {
	s, src := newSampler()
	s.Normal() // caches the spare deviate

	src.Seed(seed.DefaultPair)
	s.Reset()

	fresh, _ := newSampler()
	assert.Equal(t, fresh.Normal(), s.Normal())
}

func TestExponentialMoments(t *testing.T) {
	s, _ := newSampler()
	xs := testutil.Collect(10000, s.Exponential)

	assert.InDelta(t, 1.0, testutil.Mean(xs), 0.01)
	for _, x := range xs {
		require.Greater(t, x, 0.0)
	}
}

func TestTriangularMoments(t *testing.T) {
	s, _ := newSampler()
	xs := testutil.Collect(10000, func() float64 {
		v, err := s.Triangular(0, 1, 1)
		require.NoError(t, err)
		return v
	})

	// Analytic mean (a+b+c)/3, variance (a²+b²+c²-ab-ac-bc)/18.
	assert.InDelta(t, 2.0/3.0, testutil.Mean(xs), 0.01)
	assert.InDelta(t, math.Sqrt(1.0/18.0), testutil.StdDev(xs), 0.01)
}

func TestGammaMoments(t *testing.T) {
	tests := []struct {
		name         string
		shape, scale float64
		mean         float64
		delta        float64
	}{
		{"ShapeAboveOne", 2.5, 2, 5, 0.15},
		{"ShapeOne", 1, 1, 1, 0.05},
		{"ShapeBelowOne", 0.5, 1, 0.5, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSampler()
			xs := testutil.Collect(10000, func() float64 {
				v, err := s.Gamma(tt.shape, tt.scale)
				require.NoError(t, err)
				return v
			})

			assert.InDelta(t, tt.mean, testutil.Mean(xs), tt.delta)
			for _, x := range xs {
				require.False(t, math.IsNaN(x))
				require.Greater(t, x, 0.0)
			}
		})
	}
}

func TestInverseGammaMoments(t *testing.T) {
	s, _ := newSampler()
	// Mean of inverse-gamma is scale/(shape-1) for shape > 1.
	xs := testutil.Collect(10000, func() float64 {
		v, err := s.InverseGamma(3, 2)
		require.NoError(t, err)
		return v
	})

	assert.InDelta(t, 1.0, testutil.Mean(xs), 0.05)
}

func TestBetaMoments(t *testing.T) {
	s, _ := newSampler()
	xs := testutil.Collect(10000, func() float64 {
		v, err := s.Beta(2, 3)
		require.NoError(t, err)
		return v
	})

	assert.InDelta(t, 0.4, testutil.Mean(xs), 0.01)
	for _, x := range xs {
		require.GreaterOrEqual(t, x, 0.0)
		require.LessOrEqual(t, x, 1.0)
	}
}

func TestChiSquareMoments(t *testing.T) {
	s, _ := newSampler()
	xs := testutil.Collect(10000, func() float64 {
		v, err := s.ChiSquare(4)
		require.NoError(t, err)
		return v
	})

	assert.InDelta(t, 4.0, testutil.Mean(xs), 0.15)
}

func TestWeibullMoments(t *testing.T) {
	s, _ := newSampler()
	// Weibull with shape 1 is exponential with the given scale.
	xs := testutil.Collect(10000, func() float64 {
		v, err := s.Weibull(1, 1)
		require.NoError(t, err)
		return v
	})

	assert.InDelta(t, 1.0, testutil.Mean(xs), 0.05)
}

func TestLaplaceMoments(t *testing.T) {
	s, _ := newSampler()
	xs := testutil.Collect(10000, func() float64 {
		v, err := s.Laplace(0, 0.1)
		require.NoError(t, err)
		return v
	})

	assert.InDelta(t, 0.0, testutil.Mean(xs), 0.01)
}

func TestDirichlet(t *testing.T) {
	s, _ := newSampler()

	for _, alphas := range [][]float64{{1}, {1, 2}, {1, 2, 3}, {0.5, 0.5, 0.5, 0.5}} {
		v, err := s.Dirichlet(alphas...)
		require.NoError(t, err)
		require.Len(t, v, len(alphas))

		sum := 0.0
		for _, c := range v {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
			sum += c
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func BenchmarkNormal(b *testing.B) {
	s, _ := newSampler()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Normal()
	}
}

func BenchmarkGamma(b *testing.B) {
	s, _ := newSampler()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = s.Gamma(2.5, 2)
	}
}
