package lowmem

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/aligndist/resource"
	"github.com/hupe1980/aligndist/tensor"
)

// ErrInvalidSplit is returned for split counts outside [1, length of the split axis]
// and for unknown split choices.
var ErrInvalidSplit = tensor.ErrInvalidSplit

// MatrixFunc computes a matrix from two operands.
type MatrixFunc func(x, y *tensor.Tensor) (*tensor.Tensor, error)

// Split selects the operand that is partitioned.
type Split int

const (
	// SplitX partitions x; partial results are stacked along output axis 0.
	SplitX Split = iota
	// SplitY partitions y; partial results are stacked along output axis 1.
	SplitY
)

func (s Split) String() string {
	switch s {
	case SplitX:
		return "x"
	case SplitY:
		return "y"
	default:
		return fmt.Sprintf("Split(%d)", int(s))
	}
}

// ParseSplit maps "x" or "y" to a Split.
func ParseSplit(s string) (Split, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return SplitX, nil
	case "y":
		return SplitY, nil
	default:
		return 0, fmt.Errorf("%w: unknown operand %q", ErrInvalidSplit, s)
	}
}

// outputAxis is the axis along which partial results are concatenated.
func (s Split) outputAxis() (int, error) {
	switch s {
	case SplitX:
		return 0, nil
	case SplitY:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown operand %v", ErrInvalidSplit, s)
	}
}

// MatrixOp evaluates fn(x, y) in numSplits parts.
// See MatrixOpContext.
func MatrixOp(x, y *tensor.Tensor, fn MatrixFunc, split Split, axis, numSplits int, opts ...Option) (*tensor.Tensor, error) {
	return MatrixOpContext(context.Background(), x, y, fn, split, axis, numSplits, opts...)
}

// MatrixOpContext partitions the operand chosen by split into numSplits parts
// along axis, calls fn on each part paired with the other operand and
// concatenates the partial results. numSplits must be in [1, length of axis].
//
// fn must be safe for concurrent use when WithWorkers is greater than one.
// ctx is checked between parts and bounds waits on the resource controller.
func MatrixOpContext(ctx context.Context, x, y *tensor.Tensor, fn MatrixFunc, split Split, axis, numSplits int, opts ...Option) (*tensor.Tensor, error) {
	o := options{reporter: NopReporter{}, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	outAxis, err := split.outputAxis()
	if err != nil {
		return nil, err
	}
	toSplit := x
	if split == SplitY {
		toSplit = y
	}
	parts, err := toSplit.ArraySplit(numSplits, axis)
	if err != nil {
		return nil, err
	}

	ev := &evaluator{
		x: x, y: y, fn: fn, split: split, parts: parts,
		results: make([]*tensor.Tensor, len(parts)),
		rc:      o.controller,
	}
	defer ev.release()

	if o.workers <= 1 {
		err = ev.runSerial(ctx, o.reporter)
	} else {
		err = ev.runConcurrent(ctx, o.reporter, o.workers)
	}
	if err != nil {
		return nil, err
	}

	return tensor.Concat(outAxis, ev.results...)
}

type evaluator struct {
	x, y     *tensor.Tensor
	fn       MatrixFunc
	split    Split
	parts    []*tensor.Tensor
	results  []*tensor.Tensor
	rc       *resource.Controller
	reserved atomic.Int64
	// claimed counts bytes reserved or being waited for by this call.
	claimed atomic.Int64
}

func (e *evaluator) eval(ctx context.Context, i int) error {
	var (
		r   *tensor.Tensor
		err error
	)
	if e.split == SplitX {
		r, err = e.fn(e.parts[i], e.y)
	} else {
		r, err = e.fn(e.x, e.parts[i])
	}
	if err != nil {
		return fmt.Errorf("matrix part %d/%d: %w", i+1, len(e.parts), err)
	}

	bytes := int64(r.Size()) * 4
	if err := e.claim(bytes); err != nil {
		return fmt.Errorf("matrix part %d/%d: %w", i+1, len(e.parts), err)
	}
	if err := e.rc.AcquireMemory(ctx, bytes); err != nil {
		e.claimed.Add(-bytes)
		return fmt.Errorf("matrix part %d/%d: %w", i+1, len(e.parts), err)
	}
	e.reserved.Add(bytes)
	e.results[i] = r
	return nil
}

// claim fails fast when the partial results of this call alone would exceed
// the memory limit. They are held until the call returns.
func (e *evaluator) claim(bytes int64) error {
	limit := e.rc.MemoryLimit()
	if limit <= 0 {
		return nil
	}
	if total := e.claimed.Add(bytes); total > limit {
		e.claimed.Add(-bytes)
		return fmt.Errorf("%w: partial results need %d of %d bytes", resource.ErrMemoryLimitExceeded, total, limit)
	}
	return nil
}

func (e *evaluator) release() {
	e.rc.ReleaseMemory(e.reserved.Swap(0))
}

func (e *evaluator) runSerial(ctx context.Context, rep Reporter) error {
	last := time.Now()
	for i := range e.parts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.eval(ctx, i); err != nil {
			return err
		}
		now := time.Now()
		rep.Report(i+1, len(e.parts), now.Sub(last))
		last = now
	}
	return nil
}

func (e *evaluator) runConcurrent(ctx context.Context, rep Reporter, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu   sync.Mutex
		done int
		last = time.Now()
	)

	for i := range e.parts {
		i := i
		g.Go(func() error {
			if err := e.rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer e.rc.ReleaseWorker()

			if err := gctx.Err(); err != nil {
				return err
			}
			if err := e.eval(gctx, i); err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			done++
			now := time.Now()
			rep.Report(done, len(e.parts), now.Sub(last))
			last = now
			return nil
		})
	}
	return g.Wait()
}

// SplitsForBudget returns the smallest split count for an axis of length units,
// each occupying bytesPerUnit, such that the largest part fits in budget bytes.
// The result is clamped to [1, length]; a non-positive budget means unlimited.
func SplitsForBudget(length int, bytesPerUnit, budget int64) int {
	if length <= 1 || bytesPerUnit <= 0 || budget <= 0 {
		return 1
	}
	perPart := budget / bytesPerUnit
	if perPart < 1 {
		return length
	}
	n := (int64(length) + perPart - 1) / perPart
	return int(max(1, min(n, int64(length))))
}
