// Package testutil provides statistical helpers for tests and benchmarks.
//
// This package is intended for use in tests only. The moment helpers are free
// functions over plain float64 slices:
//
//	xs := testutil.Collect(10000, g.Uniform)
//	mean := testutil.Mean(xs)
//	sd := testutil.StdDev(xs)
package testutil
