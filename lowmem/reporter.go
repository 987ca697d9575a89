package lowmem

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Reporter receives progress after each evaluated part.
// part counts completed parts starting at 1; elapsed is the time since the
// previous report. Reporters never influence the computed matrix.
type Reporter interface {
	Report(part, total int, elapsed time.Duration)
}

// NopReporter discards progress.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(int, int, time.Duration) {}

// TerminalReporter prints one progress line and rewrites it in place.
type TerminalReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminalReporter creates a TerminalReporter writing to w.
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

// Report implements Reporter.
func (r *TerminalReporter) Report(part, total int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if part > 1 {
		// Move up one line and clear it.
		fmt.Fprint(r.w, "\033[F\033[K")
	}
	fmt.Fprintf(r.w, "Matrix part %d/%d, +%.2fs\n", part, total, elapsed.Seconds())
}

// LogReporter writes structured progress records, at most one per interval.
// The final part is always logged.
type LogReporter struct {
	logger  *slog.Logger
	limiter *rate.Limiter // nil logs every part
}

// NewLogReporter creates a LogReporter. An interval <= 0 logs every part.
func NewLogReporter(logger *slog.Logger, interval time.Duration) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	r := &LogReporter{logger: logger}
	if interval > 0 {
		r.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return r
}

// Report implements Reporter.
func (r *LogReporter) Report(part, total int, elapsed time.Duration) {
	if part != total && r.limiter != nil && !r.limiter.Allow() {
		return
	}
	r.logger.Info("matrix part done",
		"part", part,
		"total", total,
		"elapsed", elapsed,
	)
}
