package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, 2},
		{"Single", []float64{7}, 7},
		{"Empty", nil, 0},
		{"Negative", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.xs), 1e-12)
		})
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3, 4}, 5.0 / 3.0},
		{"Constant", []float64{5, 5, 5}, 0},
		{"TooShort", []float64{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Variance(tt.xs), 1e-12)
		})
	}
}

func TestCollect(t *testing.T) {
	i := 0.0
	xs := Collect(4, func() float64 {
		i++
		return i
	})

	assert.Equal(t, []float64{1, 2, 3, 4}, xs)
	assert.InDelta(t, 2.5, Mean(xs), 1e-12)
}
