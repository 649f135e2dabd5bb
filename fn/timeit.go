package fn

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-softwarelab/common/pkg/slogx"
)

const defaultRuns = 10

type timeitConfig struct {
	runs   int
	logger *slog.Logger
}

type TimeitOption func(*timeitConfig)

// WithRuns sets how many times Timeit calls the function. Values below 1 become 1.
func WithRuns(n int) TimeitOption {
	return func(c *timeitConfig) {
		if n < 1 {
			n = 1
		}
		c.runs = n
	}
}

// WithLogger sets the logger that receives one Debug record per run.
func WithLogger(logger *slog.Logger) TimeitOption {
	return func(c *timeitConfig) {
		c.logger = logger
	}
}

// Timing holds the wall-clock duration of every Timeit run.
type Timing struct {
	Runs []time.Duration
}

// Total is the sum of all run durations.
func (t Timing) Total() time.Duration {
	var total time.Duration
	for _, d := range t.Runs {
		total += d
	}
	return total
}

// Average is the mean run duration, or 0 when nothing was measured.
func (t Timing) Average() time.Duration {
	if len(t.Runs) == 0 {
		return 0
	}
	return t.Total() / time.Duration(len(t.Runs))
}

// WriteTo prints one "[Run i] N μs" line per run followed by the average in microseconds.
func (t Timing) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for i, d := range t.Runs {
		n, err := fmt.Fprintf(w, "[Run %d] %d μs\n", i+1, d.Microseconds())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	n, err := fmt.Fprintf(w, "\nAverage time: %g μs\n", averageMicros(t.Runs))
	written += int64(n)
	return written, err
}

func averageMicros(runs []time.Duration) float64 {
	if len(runs) == 0 {
		return 0
	}
	var total int64
	for _, d := range runs {
		total += d.Microseconds()
	}
	return float64(total) / float64(len(runs))
}

// Timeit calls f a fixed number of times (10 unless WithRuns says otherwise)
// and records how long each call took.
func Timeit(f func(), opts ...TimeitOption) Timing {
	cfg := &timeitConfig{runs: defaultRuns}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := slogx.ChildForComponent(cfg.logger, "fn.timeit")

	timing := Timing{Runs: make([]time.Duration, 0, cfg.runs)}
	for i := range cfg.runs {
		start := time.Now()
		f()
		elapsed := time.Since(start)
		timing.Runs = append(timing.Runs, elapsed)

		logger.Debug("timeit run",
			slogx.Number("run", i+1),
			slogx.Number("micros", elapsed.Microseconds()),
		)
	}
	return timing
}
