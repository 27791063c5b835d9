package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTickLoopFollowsClock(t *testing.T) {
	mock := clock.NewMock()
	var ticks atomic.Int32
	var lastDt atomic.Value

	e := NewEngine(
		WithClock(mock),
		WithTickRate(60),
		WithTickCallback(func(dt float32) {
			lastDt.Store(dt)
			ticks.Add(1)
		}),
	)
	e.Start()
	defer func() {
		e.Quit()
		e.Wait()
	}()

	for i := int32(1); i <= 3; i++ {
		mock.Add(e.TickRate())
		require.Eventually(t, func() bool { return ticks.Load() == i }, time.Second, time.Millisecond)
	}
	assert.InDelta(t, 1.0/60.0, lastDt.Load().(float32), 1e-4)
}

func TestRenderLoopRunsUntilQuit(t *testing.T) {
	var frames atomic.Int32
	e := NewEngine(
		WithClock(clock.NewMock()),
		WithRenderCallback(func(float32) { frames.Add(1) }),
	)

	e.Start()
	assert.True(t, e.Running())
	require.Eventually(t, func() bool { return frames.Load() > 10 }, time.Second, time.Millisecond)

	e.Quit()
	e.Quit()
	e.Wait()
	assert.False(t, e.Running())
}

func TestRunWithoutWindowBlocksUntilQuit(t *testing.T) {
	e := NewEngine(WithClock(clock.NewMock()))
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before Quit")
	case <-time.After(20 * time.Millisecond):
	}

	e.Quit()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}
	assert.Nil(t, e.Window())
}

func TestRenderPanicQuitsEngine(t *testing.T) {
	e := NewEngine(
		WithClock(clock.NewMock()),
		WithRenderCallback(func(float32) { panic("boom") }),
	)
	e.Start()

	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("engine did not stop after render panic")
	}
	assert.False(t, e.Running())
}

func TestTickRateConversion(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, time.Second/120, tickInterval(120))
	assert.Equal(t, time.Duration(0), frameInterval(0))
	assert.Equal(t, 10*time.Millisecond, frameInterval(100))

	e := NewEngine()
	e.SetTickRate(30)
	assert.Equal(t, time.Second/30, e.TickRate())
}

func TestRatesChangeWhileRunning(t *testing.T) {
	mock := clock.NewMock()
	core, logs := observer.New(zapcore.DebugLevel)
	var lastDt atomic.Value
	var ticks atomic.Int32

	e := NewEngine(
		WithClock(mock),
		WithLogger(zap.New(core)),
		WithTickCallback(func(dt float32) {
			lastDt.Store(dt)
			ticks.Add(1)
		}),
		WithRenderCallback(func(float32) {}),
	)
	e.Start()
	defer func() {
		e.Quit()
		e.Wait()
	}()

	// The render goroutine reads the frame limit on every frame.
	for i := range 100 {
		e.SetRenderFrameLimit(float64(i))
		_ = e.TickRate()
	}
	e.SetRenderFrameLimit(0)

	e.SetTickRate(30)
	assert.Equal(t, time.Second/30, e.TickRate())
	require.Eventually(t, func() bool { return logs.FilterMessage("tick rate changed").Len() == 1 }, time.Second, time.Millisecond)

	mock.Add(time.Second / 30)
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)
	assert.InDelta(t, 1.0/30.0, lastDt.Load().(float32), 1e-4)
}
