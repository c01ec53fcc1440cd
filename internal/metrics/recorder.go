// Package metrics provides generation metrics behind a Recorder interface.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection never requires nil checks and costs
// nothing when disabled. Swap in NewPrometheusRecorder to activate.
package metrics

import "time"

// Recorder defines all metrics operations emitted during a generation run.
type Recorder interface {
	// DocumentGenerated records a rendered and written document.
	DocumentGenerated(kind string)
	// DocumentSkipped records a document left untouched by the state cache.
	DocumentSkipped(kind string)
	// DocumentExcluded records a document failing eligibility rules.
	DocumentExcluded(kind string)
	// UnresolvedReference records a related-document URL with no corpus match.
	UnresolvedReference()
	// AmbiguousDecisionSlug records a decision slug derived without number and year.
	AmbiguousDecisionSlug()
	// RunCompleted records the duration of a full generation run.
	RunCompleted(d time.Duration)
}

// NoopRecorder is the default Recorder; every method does nothing.
type NoopRecorder struct{}

func (NoopRecorder) DocumentGenerated(string)   {}
func (NoopRecorder) DocumentSkipped(string)     {}
func (NoopRecorder) DocumentExcluded(string)    {}
func (NoopRecorder) UnresolvedReference()       {}
func (NoopRecorder) AmbiguousDecisionSlug()     {}
func (NoopRecorder) RunCompleted(time.Duration) {}
