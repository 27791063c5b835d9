// Command flycam opens a window with a single triangle and a free-flying camera.
//
// Controls: W/A/S/D move, drag with the left mouse button to look around, Escape quits.
package main

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "flycam",
		Usage: "fly a camera around a triangle",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			cfg, err := configFromContext(c)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cfg.Dev)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := run(cfg, logger); err != nil {
				logger.Error("flycam failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

// run wires the viewer together and blocks until the window closes.
// Must run on the main goroutine.
func run(cfg config, logger *zap.Logger) error {
	handler := input.NewInputHandler(input.WithLogger(logger))

	win, err := window.NewWindow(
		window.WithTitle(cfg.Title),
		window.WithWidth(cfg.Width),
		window.WithHeight(cfg.Height),
		window.WithInputHandler(handler),
		window.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			logger.Warn("failed to close window", zap.Error(err))
		}
	}()

	cam := camera.NewCamera(
		camera.WithFieldOfView(float32(cfg.FieldOfView)),
		camera.WithNear(float32(cfg.Near)),
		camera.WithFar(float32(cfg.Far)),
		camera.WithPosition(0, 0, float32(cfg.StartZ)),
	)
	controller := camera.NewFreeFlyController(handler,
		camera.WithMoveSpeed(float32(cfg.MoveSpeed)),
		camera.WithMouseSensitivity(float32(cfg.MouseSensitivity)),
	)
	defer controller.Close()

	rend, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(cfg.presentMode()),
		renderer.WithMSAA(cfg.msaa()),
		renderer.WithForceSoftwareRenderer(cfg.Software),
		renderer.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Release()

	// The resize callback runs on the window thread; the render goroutine reads the aspect ratio.
	var aspect atomic.Uint32
	aspect.Store(math.Float32bits(win.AspectRatio()))
	win.SetResizeCallback(func(width, height int) {
		if err := rend.Resize(width, height); err != nil {
			logger.Warn("failed to resize surface", zap.Error(err))
		}
		aspect.Store(math.Float32bits(win.AspectRatio()))
	})

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(cfg.TickRate),
		engine.WithRenderFrameLimit(cfg.FrameLimit),
		engine.WithProfiling(cfg.Profile),
		engine.WithLogger(logger),
		engine.WithTickCallback(func(dt float32) {
			controller.Update(cam, dt)
		}),
		engine.WithRenderCallback(func(float32) {
			f := cam.Frustum(math.Float32frombits(aspect.Load()))
			if err := rend.DrawFrame(f); err != nil {
				logger.Warn("frame failed", zap.Error(err))
			}
		}),
	)

	eng.Run()
	return nil
}
