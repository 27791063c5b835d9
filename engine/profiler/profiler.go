package profiler

import (
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Stats is one reporting window of frame and memory statistics.
type Stats struct {
	FPS          float64
	HeapMB       float64
	AllocRateMB  float64
	SysMB        float64
	GCCount      uint32
	LastPauseUs  uint64
	MaxPauseUs   uint64
	WindowLength time.Duration
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	clock          clock.Clock
	logger         *zap.Logger
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithClock replaces the wall clock, typically with clock.NewMock() in tests.
func WithClock(c clock.Clock) ProfilerOption {
	return func(p *Profiler) {
		p.clock = c
	}
}

// WithLogger sets the logger stats are written to.
func WithLogger(logger *zap.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger.Named("profiler")
		}
	}
}

// WithUpdateInterval sets how often stats are reported.
func WithUpdateInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		clock:          clock.New(),
		logger:         zap.NewNop(),
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.clock.Now()

	// Baseline so the first report covers only its own interval.
	runtime.ReadMemStats(&p.memStats)
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.clock.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap bytes. TotalAlloc: cumulative heap bytes, tracks churn. Sys: process footprint.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.last = Stats{
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:  float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		SysMB:        float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:      gcCount,
		LastPauseUs:  lastPauseUs,
		MaxPauseUs:   maxPauseUs,
		WindowLength: elapsed,
	}

	p.logger.Info("frame stats",
		zap.Float64("fps", p.last.FPS),
		zap.Float64("heap_mb", p.last.HeapMB),
		zap.Float64("alloc_rate_mb_s", p.last.AllocRateMB),
		zap.Uint32("gc", gcCount),
		zap.Uint64("gc_last_pause_us", lastPauseUs),
		zap.Uint64("gc_max_pause_us", maxPauseUs),
		zap.Float64("sys_mb", p.last.SysMB),
	)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recently reported stats window.
func (p *Profiler) Last() Stats {
	return p.last
}
