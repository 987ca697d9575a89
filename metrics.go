package aligndist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCompute is called after each pairwise distance computation.
	// rows and cols describe the produced matrix.
	RecordCompute(rows, cols int, duration time.Duration, err error)

	// RecordAlignment is called after each shortest path reduction.
	// batch is the number of grids reduced in the call.
	RecordAlignment(batch int, duration time.Duration, err error)

	// RecordLocalDist is called after each local distance aggregation.
	// pairs is the number of object pairs compared.
	RecordLocalDist(pairs int, duration time.Duration, err error)

	// RecordMatrixOp is called after each chunked matrix evaluation.
	RecordMatrixOp(parts int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompute(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordAlignment(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordLocalDist(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordMatrixOp(int, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ComputeCount      atomic.Int64
	ComputeErrors     atomic.Int64
	ComputeCells      atomic.Int64
	ComputeTotalNanos atomic.Int64
	AlignmentCount    atomic.Int64
	AlignmentErrors   atomic.Int64
	AlignmentGrids    atomic.Int64
	LocalDistCount    atomic.Int64
	LocalDistErrors   atomic.Int64
	LocalDistPairs    atomic.Int64
	MatrixOpCount     atomic.Int64
	MatrixOpErrors    atomic.Int64
	MatrixOpParts     atomic.Int64
	MatrixOpNanos     atomic.Int64
}

// RecordCompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompute(rows, cols int, duration time.Duration, err error) {
	b.ComputeCount.Add(1)
	b.ComputeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ComputeErrors.Add(1)
		return
	}
	b.ComputeCells.Add(int64(rows) * int64(cols))
}

// RecordAlignment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlignment(batch int, _ time.Duration, err error) {
	b.AlignmentCount.Add(1)
	if err != nil {
		b.AlignmentErrors.Add(1)
		return
	}
	b.AlignmentGrids.Add(int64(batch))
}

// RecordLocalDist implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLocalDist(pairs int, _ time.Duration, err error) {
	b.LocalDistCount.Add(1)
	if err != nil {
		b.LocalDistErrors.Add(1)
		return
	}
	b.LocalDistPairs.Add(int64(pairs))
}

// RecordMatrixOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatrixOp(parts int, duration time.Duration, err error) {
	b.MatrixOpCount.Add(1)
	b.MatrixOpNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MatrixOpErrors.Add(1)
		return
	}
	b.MatrixOpParts.Add(int64(parts))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ComputeCount:     b.ComputeCount.Load(),
		ComputeErrors:    b.ComputeErrors.Load(),
		ComputeCells:     b.ComputeCells.Load(),
		ComputeAvgNanos:  avg(b.ComputeTotalNanos.Load(), b.ComputeCount.Load()),
		AlignmentCount:   b.AlignmentCount.Load(),
		AlignmentErrors:  b.AlignmentErrors.Load(),
		AlignmentGrids:   b.AlignmentGrids.Load(),
		LocalDistCount:   b.LocalDistCount.Load(),
		LocalDistErrors:  b.LocalDistErrors.Load(),
		LocalDistPairs:   b.LocalDistPairs.Load(),
		MatrixOpCount:    b.MatrixOpCount.Load(),
		MatrixOpErrors:   b.MatrixOpErrors.Load(),
		MatrixOpParts:    b.MatrixOpParts.Load(),
		MatrixOpAvgNanos: avg(b.MatrixOpNanos.Load(), b.MatrixOpCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ComputeCount     int64
	ComputeErrors    int64
	ComputeCells     int64
	ComputeAvgNanos  int64
	AlignmentCount   int64
	AlignmentErrors  int64
	AlignmentGrids   int64
	LocalDistCount   int64
	LocalDistErrors  int64
	LocalDistPairs   int64
	MatrixOpCount    int64
	MatrixOpErrors   int64
	MatrixOpParts    int64
	MatrixOpAvgNanos int64
}
