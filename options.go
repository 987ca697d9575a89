package aligndist

import (
	"log/slog"
	"os"

	"github.com/hupe1980/aligndist/lowmem"
	"github.com/hupe1980/aligndist/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	reporter         lowmem.Reporter
	workers          int
}

// Option configures an Engine.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &aligndist.BasicMetricsCollector{}
//	e := aligndist.New(aligndist.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pairs: %d\n", stats.LocalDistPairs)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := aligndist.NewJSONLogger(slog.LevelInfo)
//	e := aligndist.New(aligndist.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController bounds the memory retained by LowMemoryMatrixOp and,
// together with WithWorkers, the number of concurrently evaluated parts.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithWorkers lets LowMemoryMatrixOp evaluate up to n parts concurrently.
// The matrix function must then be safe for concurrent use.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithReporter configures the progress reporter of LowMemoryMatrixOp.
func WithReporter(r lowmem.Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithVerbose prints LowMemoryMatrixOp progress to stdout, one line rewritten in place.
func WithVerbose() Option {
	return WithReporter(lowmem.NewTerminalReporter(os.Stdout))
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		workers:          1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
