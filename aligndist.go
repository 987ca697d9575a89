package aligndist

import (
	"context"
	"time"

	"github.com/hupe1980/aligndist/align"
	"github.com/hupe1980/aligndist/distance"
	"github.com/hupe1980/aligndist/localdist"
	"github.com/hupe1980/aligndist/lowmem"
	"github.com/hupe1980/aligndist/tensor"
)

// Engine runs distance computations with logging, metrics and resource limits.
//
// An Engine holds no mutable state of its own and is safe for concurrent use
// as long as the configured MetricsCollector and Reporter are.
type Engine struct {
	opts options
}

// New creates an Engine.
//
// Example:
//
//	metrics := &aligndist.BasicMetricsCollector{}
//	e := aligndist.New(
//	    aligndist.WithLogLevel(slog.LevelDebug),
//	    aligndist.WithMetricsCollector(metrics),
//	)
func New(optFns ...Option) *Engine {
	return &Engine{opts: applyOptions(optFns)}
}

// Normalize scales every fiber along axis to unit Lp norm.
func (e *Engine) Normalize(t *tensor.Tensor, order float64, axis int) (*tensor.Tensor, error) {
	return distance.Normalize(t, order, axis)
}

// ComputeDist returns the [M, N] matrix of pairwise distances between the rows
// of a [M, d] and b [N, d]. mode is "euclidean" or "cosine".
func (e *Engine) ComputeDist(ctx context.Context, a, b *tensor.Tensor, mode string) (*tensor.Tensor, error) {
	start := time.Now()

	out, err := e.computeDist(a, b, mode)

	duration := time.Since(start)
	err = translateError(err, a, b, 1)

	rows, cols := 0, 0
	if out != nil {
		rows, cols = out.Dim(0), out.Dim(1)
	}
	e.opts.metricsCollector.RecordCompute(rows, cols, duration, err)
	e.opts.logger.LogCompute(ctx, mode, rows, cols, err)

	return out, err
}

func (e *Engine) computeDist(a, b *tensor.Tensor, mode string) (*tensor.Tensor, error) {
	m, err := distance.ParseMetric(mode)
	if err != nil {
		return nil, err
	}
	return distance.Compute(a, b, m)
}

// ShortestDist reduces a [m, n, extra...] cost grid to the minimal monotonic
// path cost for every trailing index.
func (e *Engine) ShortestDist(ctx context.Context, cost *tensor.Tensor) (*tensor.Tensor, error) {
	start := time.Now()

	out, err := align.ShortestDist(cost)

	duration := time.Since(start)
	batch := 0
	if out != nil {
		batch = out.Size()
	}
	e.opts.metricsCollector.RecordAlignment(batch, duration, err)
	e.opts.logger.LogAlignment(ctx, cost.Shape(), err)

	return out, err
}

// MetaLocalDist returns the aligned distance between two objects given as
// [m, d] and [n, d] sequences of local features.
func (e *Engine) MetaLocalDist(ctx context.Context, x, y *tensor.Tensor) (float32, error) {
	start := time.Now()

	d, err := localdist.Meta(x, y)
	err = translateError(err, x, y, 1)

	pairs := 1
	if err != nil {
		pairs = 0
	}
	e.recordLocalDist(ctx, "meta", pairs, start, err)

	return d, err
}

// SerialLocalDist compares every pair of objects from [M, m, d] and [N, n, d]
// one pair at a time.
func (e *Engine) SerialLocalDist(ctx context.Context, x, y *tensor.Tensor) (*tensor.Tensor, error) {
	return e.batchLocalDist(ctx, "serial", localdist.Serial, x, y)
}

// ParallelLocalDist compares every pair of objects from [M, m, d] and [N, n, d]
// with a single batched alignment.
func (e *Engine) ParallelLocalDist(ctx context.Context, x, y *tensor.Tensor) (*tensor.Tensor, error) {
	return e.batchLocalDist(ctx, "parallel", localdist.Parallel, x, y)
}

// LocalDist dispatches on input rank: two 2-D inputs yield a scalar tensor,
// two 3-D inputs yield an [M, N] matrix.
func (e *Engine) LocalDist(ctx context.Context, x, y *tensor.Tensor) (*tensor.Tensor, error) {
	return e.batchLocalDist(ctx, "dist", localdist.Dist, x, y)
}

func (e *Engine) batchLocalDist(ctx context.Context, mode string, fn lowmem.MatrixFunc, x, y *tensor.Tensor) (*tensor.Tensor, error) {
	start := time.Now()

	out, err := fn(x, y)
	err = translateError(err, x, y, x.Rank()-1)

	pairs := 0
	if out != nil {
		pairs = out.Size()
	}
	e.recordLocalDist(ctx, mode, pairs, start, err)

	return out, err
}

func (e *Engine) recordLocalDist(ctx context.Context, mode string, pairs int, start time.Time, err error) {
	duration := time.Since(start)
	e.opts.metricsCollector.RecordLocalDist(pairs, duration, err)
	e.opts.logger.LogLocalDist(ctx, mode, pairs, err)
}

// LowMemoryMatrixOp evaluates fn(x, y) in numSplits blocks along axis of x
// (SplitX) or y (SplitY) and stitches the partial matrices back together.
//
// The Engine's reporter, resource controller and worker count apply.
func (e *Engine) LowMemoryMatrixOp(ctx context.Context, x, y *tensor.Tensor, fn lowmem.MatrixFunc, split lowmem.Split, axis, numSplits int) (*tensor.Tensor, error) {
	start := time.Now()

	var lopts []lowmem.Option
	if e.opts.reporter != nil {
		lopts = append(lopts, lowmem.WithReporter(e.opts.reporter))
	}
	if e.opts.controller != nil {
		lopts = append(lopts, lowmem.WithController(e.opts.controller))
	}
	if e.opts.workers > 1 {
		lopts = append(lopts, lowmem.WithWorkers(e.opts.workers))
	}

	out, err := lowmem.MatrixOpContext(ctx, x, y, fn, split, axis, numSplits, lopts...)

	duration := time.Since(start)
	var shape []int
	if out != nil {
		shape = out.Shape()
	}
	e.opts.metricsCollector.RecordMatrixOp(numSplits, duration, err)
	e.opts.logger.LogMatrixOp(ctx, split.String(), numSplits, shape, err)

	return out, err
}
