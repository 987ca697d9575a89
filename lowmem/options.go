package lowmem

import "github.com/hupe1980/aligndist/resource"

type options struct {
	reporter   Reporter
	controller *resource.Controller
	workers    int
}

// Option configures MatrixOp.
type Option func(*options)

// WithReporter installs a progress reporter. Pass nil to disable reporting.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r == nil {
			r = NopReporter{}
		}
		o.reporter = r
	}
}

// WithController accounts every retained partial result against rc's memory
// budget. Evaluation fails with resource.ErrMemoryLimitExceeded (or waits, with
// a blocking controller) when the partial results would exceed the budget.
// When more than one worker is configured, rc's worker slots gate part evaluation.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithWorkers evaluates up to n parts concurrently. Values below 2 keep
// evaluation sequential, which is the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
