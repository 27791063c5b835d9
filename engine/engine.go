package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	startOnce   sync.Once

	clock  clock.Clock
	logger *zap.Logger

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	// Durations in nanoseconds; written by the setters while the loops read them.
	engineTickRate   atomic.Int64
	renderFrameLimit atomic.Int64 // minimum frame duration; 0 = uncapped

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
}

// Engine is the main entry point for the viewer.
// It orchestrates the tick loop, render loop, and window message loop.
//
// The tick loop runs at a fixed rate on its own goroutine and is where input is folded
// into the camera. The render loop runs as fast as allowed on another goroutine. The window
// message loop runs on the calling goroutine, which must be the main OS thread.
type Engine interface {
	// Window returns the underlying window, or nil if the engine runs headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the current tick interval.
	TickRate() time.Duration

	// SetTickCallback registers the function called each engine tick.
	// Must be set before Start.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	// Must be set before Start.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Start launches the tick and render goroutines. Safe to call more than once.
	Start()

	// Run starts the engine and runs the window message loop until the window closes
	// or Quit is called, then waits for the goroutines to exit. Without a window, Run
	// blocks until Quit.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Wait blocks until the tick and render goroutines have exited.
	Wait()

	// Running reports whether the engine has been started and not yet quit.
	Running() bool
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		clock:           clock.New(),
		logger:          zap.NewNop(),
	}
	e.engineTickRate.Store(int64(time.Second / 60))

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithClock(e.clock), profiler.WithLogger(e.logger))
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Start() {
	e.startOnce.Do(func() {
		e.running.Store(true)

		// The ticker is created here so ticks are not lost between Start and the goroutine scheduling.
		ticker := e.clock.Ticker(e.TickRate())

		e.wg.Add(2)
		go e.handleEngine(ticker)
		go e.handleRender()

		e.logger.Info("engine started",
			zap.Duration("tick_rate", e.TickRate()),
			zap.Duration("render_frame_limit", e.frameLimit()),
		)
	})
}

func (e *engine) Run() {
	e.Start()

	if e.window != nil {
		e.window.ProcessMessages()
		e.Quit()
	} else {
		<-e.quitChannel
	}

	e.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
		e.logger.Info("engine quitting")
	})
}

func (e *engine) Wait() {
	e.wg.Wait()
}

func (e *engine) Running() bool {
	return e.running.Load()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine(ticker *clock.Ticker) {
	defer e.wg.Done()
	defer ticker.Stop()

	lastTick := e.clock.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := e.clock.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.logger.Debug("tick rate changed", zap.Duration("tick_rate", newRate))
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("render goroutine recovered from panic", zap.Any("panic", r))
			e.Quit()
		}
	}()

	lastRender := e.clock.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := e.clock.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}

			if limit := e.frameLimit(); limit > 0 {
				elapsed := e.clock.Since(lastRender)
				if remaining := limit - elapsed; remaining > 0 {
					select {
					case <-e.quitChannel:
						return
					case <-e.clock.After(remaining):
					}
				}
			}
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect on the next loop iteration.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	e.engineTickRate.Store(int64(newRate))
	if !e.running.Load() {
		return
	}

	// Non-blocking send; replace a pending value if one is queued.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) TickRate() time.Duration {
	return time.Duration(e.engineTickRate.Load())
}

func (e *engine) frameLimit() time.Duration {
	return time.Duration(e.renderFrameLimit.Load())
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit.Store(int64(frameInterval(fps)))
}

// tickInterval converts a tick rate to a ticker interval, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameInterval converts a frame cap to a minimum frame duration; 0 means uncapped.
func frameInterval(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
