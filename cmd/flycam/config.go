package main

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	flagWidth            = "width"
	flagHeight           = "height"
	flagTitle            = "title"
	flagFOV              = "fov"
	flagNear             = "near"
	flagFar              = "far"
	flagStartZ           = "start-z"
	flagTickRate         = "tick-rate"
	flagFrameLimit       = "frame-limit"
	flagVSync            = "vsync"
	flagMSAA             = "msaa"
	flagSoftware         = "software"
	flagMoveSpeed        = "move-speed"
	flagMouseSensitivity = "mouse-sensitivity"
	flagLogLevel         = "log-level"
	flagDev              = "dev"
	flagProfile          = "profile"
)

// config is the resolved command line.
type config struct {
	Width  int
	Height int
	Title  string

	FieldOfView float64
	Near        float64
	Far         float64
	StartZ      float64

	TickRate   float64
	FrameLimit float64
	VSync      bool
	MSAA       bool
	Software   bool

	MoveSpeed        float64
	MouseSensitivity float64

	LogLevel string
	Dev      bool
	Profile  bool
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: flagWidth, Value: 1280, Usage: "initial window width in pixels"},
		&cli.IntFlag{Name: flagHeight, Value: 720, Usage: "initial window height in pixels"},
		&cli.StringFlag{Name: flagTitle, Value: "oxy-flycam", Usage: "window title"},
		&cli.Float64Flag{Name: flagFOV, Value: float64(camera.DefaultFieldOfView), Usage: "vertical field of view in radians"},
		&cli.Float64Flag{Name: flagNear, Value: float64(camera.DefaultNear), Usage: "near clipping plane"},
		&cli.Float64Flag{Name: flagFar, Value: float64(camera.DefaultFar), Usage: "far clipping plane"},
		&cli.Float64Flag{Name: flagStartZ, Value: 2, Usage: "starting camera distance along +Z"},
		&cli.Float64Flag{Name: flagTickRate, Value: 60, Usage: "camera update ticks per second"},
		&cli.Float64Flag{Name: flagFrameLimit, Value: 0, Usage: "render frame cap in frames per second, 0 for uncapped"},
		&cli.BoolFlag{Name: flagVSync, Value: true, Usage: "wait for vertical blank when presenting"},
		&cli.BoolFlag{Name: flagMSAA, Value: true, Usage: "enable 4x multisample anti-aliasing"},
		&cli.BoolFlag{Name: flagSoftware, Usage: "force the software fallback adapter"},
		&cli.Float64Flag{Name: flagMoveSpeed, Value: float64(camera.DefaultMoveSpeed), Usage: "camera speed in units per second"},
		&cli.Float64Flag{Name: flagMouseSensitivity, Value: float64(camera.DefaultMouseSensitivity), Usage: "radians of rotation per pixel of drag"},
		&cli.StringFlag{Name: flagLogLevel, Value: "info", Usage: "log level (debug, info, warn, error)", EnvVars: []string{"FLYCAM_LOG_LEVEL"}},
		&cli.BoolFlag{Name: flagDev, Usage: "human-readable development logging"},
		&cli.BoolFlag{Name: flagProfile, Usage: "log frame rate and memory statistics every second"},
	}
}

// configFromContext reads and validates the flags.
func configFromContext(c *cli.Context) (config, error) {
	cfg := config{
		Width:            c.Int(flagWidth),
		Height:           c.Int(flagHeight),
		Title:            c.String(flagTitle),
		FieldOfView:      c.Float64(flagFOV),
		Near:             c.Float64(flagNear),
		Far:              c.Float64(flagFar),
		StartZ:           c.Float64(flagStartZ),
		TickRate:         c.Float64(flagTickRate),
		FrameLimit:       c.Float64(flagFrameLimit),
		VSync:            c.Bool(flagVSync),
		MSAA:             c.Bool(flagMSAA),
		Software:         c.Bool(flagSoftware),
		MoveSpeed:        c.Float64(flagMoveSpeed),
		MouseSensitivity: c.Float64(flagMouseSensitivity),
		LogLevel:         c.String(flagLogLevel),
		Dev:              c.Bool(flagDev),
		Profile:          c.Bool(flagProfile),
	}
	return cfg, cfg.validate()
}

// validate rejects values that would fail window or swapchain creation.
// Camera parameters are passed through as given.
func (cfg config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TickRate < 0 {
		return errors.New("tick rate must not be negative")
	}
	if cfg.FrameLimit < 0 {
		return errors.New("frame limit must not be negative")
	}
	return nil
}

func (cfg config) presentMode() renderer.PresentMode {
	if cfg.VSync {
		return renderer.PresentModeVSync
	}
	return renderer.PresentModeUncapped
}

func (cfg config) msaa() renderer.MSAASampleCount {
	if cfg.MSAA {
		return renderer.MSAA4x
	}
	return renderer.MSAAOff
}

// newLogger builds a production JSON logger, or a console logger with --dev.
func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	if dev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = lvl
	return zcfg.Build()
}
