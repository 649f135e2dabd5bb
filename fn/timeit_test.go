package fn_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iterkit/fn"
)

func TestTimeit_DefaultRuns(t *testing.T) {
	calls := 0
	timing := fn.Timeit(func() { calls++ }, fn.WithLogger(slogx.SilentLogger()))

	assert.Equal(t, 10, calls)
	assert.Len(t, timing.Runs, 10)
}

func TestTimeit_WithRuns(t *testing.T) {
	calls := 0
	timing := fn.Timeit(func() { calls++ }, fn.WithRuns(3), fn.WithLogger(slogx.SilentLogger()))
	assert.Equal(t, 3, calls)
	assert.Len(t, timing.Runs, 3)

	calls = 0
	fn.Timeit(func() { calls++ }, fn.WithRuns(0), fn.WithLogger(slogx.SilentLogger()))
	assert.Equal(t, 1, calls)
}

func TestTimeit_LogsRuns(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.NewLogger(slogx.WithWriter(&buf), slogx.WithLevel(slog.LevelDebug))

	fn.Timeit(func() {}, fn.WithRuns(2), fn.WithLogger(logger))

	assert.Equal(t, 2, strings.Count(buf.String(), `msg="timeit run"`))
	assert.Contains(t, buf.String(), "component=fn.timeit")
}

func TestTiming(t *testing.T) {
	timing := fn.Timing{Runs: []time.Duration{
		10 * time.Microsecond,
		20 * time.Microsecond,
		45 * time.Microsecond,
	}}

	assert.Equal(t, 75*time.Microsecond, timing.Total())
	assert.Equal(t, 25*time.Microsecond, timing.Average())
	assert.Zero(t, fn.Timing{}.Average())

	var buf bytes.Buffer
	n, err := timing.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t,
		"[Run 1] 10 μs\n[Run 2] 20 μs\n[Run 3] 45 μs\n\nAverage time: 25 μs\n",
		buf.String())
}
