package engine

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default profiler.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate.Store(int64(tickInterval(fps)))
	}
}

// WithWindow sets the window whose message loop Run drives.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit.Store(int64(frameInterval(fps)))
	}
}

// WithTickCallback registers the tick callback at construction time.
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithRenderCallback registers the render callback at construction time.
func WithRenderCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.renderCallback = callback
	}
}

// WithClock replaces the wall clock driving the tick and render loops.
// Tests pass clock.NewMock() to step ticks deterministically.
//
// Parameters:
//   - c: the clock to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(c clock.Clock) EngineBuilderOption {
	return func(e *engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger.Named("engine")
		}
	}
}
