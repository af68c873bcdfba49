package randgen

import (
	"sync/atomic"

	"github.com/quantmesh/randgen/core"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSample is called after each sampling operation.
	// kind identifies the distribution, err is nil if the call was accepted.
	RecordSample(kind core.Kind, err error)

	// RecordReseed is called after each seed assignment.
	// err is nil if the seed material was valid.
	RecordReseed(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSample(core.Kind, error) {}
func (NoopMetricsCollector) RecordReseed(error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SampleCount  atomic.Int64
	SampleErrors atomic.Int64
	ReseedCount  atomic.Int64
	ReseedErrors atomic.Int64

	perKind [core.MaxKind + 1]atomic.Int64
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample(kind core.Kind, err error) {
	b.SampleCount.Add(1)
	if err != nil {
		b.SampleErrors.Add(1)
		return
	}
	if kind.Valid() {
		b.perKind[kind].Add(1)
	}
}

// RecordReseed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReseed(err error) {
	b.ReseedCount.Add(1)
	if err != nil {
		b.ReseedErrors.Add(1)
	}
}

// Samples returns the number of accepted sampling calls for a kind.
func (b *BasicMetricsCollector) Samples(kind core.Kind) int64 {
	if !kind.Valid() {
		return 0
	}
	return b.perKind[kind].Load()
}
