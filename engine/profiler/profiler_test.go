package profiler

import (
	"runtime"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTickReportsOncePerInterval(t *testing.T) {
	mock := clock.NewMock()
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(WithClock(mock), WithLogger(zap.New(core)), WithUpdateInterval(time.Second))

	for range 29 {
		mock.Add(time.Second / 30)
		assert.False(t, p.Tick())
	}
	mock.Add(time.Second/30 + time.Millisecond)
	assert.True(t, p.Tick())

	assert.InDelta(t, 30.0, p.Last().FPS, 0.5)
	assert.Equal(t, 1, logs.FilterMessage("frame stats").Len())
	assert.False(t, p.Tick())
}

func TestNonPositiveIntervalKeepsDefault(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(0))
	assert.Equal(t, time.Second, p.updateInterval)
}

var ballast []byte

func TestFirstReportExcludesEarlierAllocations(t *testing.T) {
	ballast = make([]byte, 64<<20)
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	mock := clock.NewMock()
	p := NewProfiler(WithClock(mock))
	mock.Add(time.Second)
	assert.True(t, p.Tick())

	cumulativeMB := float64(before.TotalAlloc) / 1024 / 1024
	assert.Less(t, p.Last().AllocRateMB, cumulativeMB/2,
		"first window must not count allocations made before the profiler existed")
	ballast = nil
}
