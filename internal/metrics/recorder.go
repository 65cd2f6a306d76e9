// Package metrics provides observability hooks for the generation
// pipeline. Components receive a Recorder by injection and default to
// NoopRecorder, so metrics stay zero-overhead until a real implementation
// (Prometheus, in watch mode) is swapped in.
package metrics

import "time"

// Recorder defines the observability hooks generators call.
type Recorder interface {
	// ObserveGeneration records one completed generator run.
	ObserveGeneration(style string, resources int, d time.Duration)
	// IncGenerationError records a failed generator run.
	IncGenerationError(style string)
	// IncSortRun records one sorter invocation.
	IncSortRun(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(string, int, time.Duration) {}
func (NoopRecorder) IncGenerationError(string)                    {}
func (NoopRecorder) IncSortRun(bool)                              {}
