package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// parse runs the app's flag set over args and returns the resolved config.
func parse(t *testing.T, args ...string) (config, error) {
	t.Helper()
	var (
		cfg    config
		cfgErr error
	)
	app := &cli.App{
		Name:  "flycam",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			cfg, cfgErr = configFromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"flycam"}, args...)))
	return cfg, cfgErr
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.InDelta(t, 1.0, cfg.FieldOfView, 1e-6)
	assert.InDelta(t, 0.1, cfg.Near, 1e-6)
	assert.InDelta(t, 10000.0, cfg.Far, 1e-3)
	assert.Equal(t, 60.0, cfg.TickRate)
	assert.Equal(t, renderer.PresentModeVSync, cfg.presentMode())
	assert.Equal(t, renderer.MSAA4x, cfg.msaa())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFlagsOverride(t *testing.T) {
	cfg, err := parse(t, "--width", "800", "--vsync=false", "--msaa=false", "--move-speed", "5", "--profile")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, renderer.PresentModeUncapped, cfg.presentMode())
	assert.Equal(t, renderer.MSAAOff, cfg.msaa())
	assert.Equal(t, 5.0, cfg.MoveSpeed)
	assert.True(t, cfg.Profile)
}

func TestValidation(t *testing.T) {
	_, err := parse(t, "--height", "0")
	assert.Error(t, err)

	_, err = parse(t, "--tick-rate", "-1")
	assert.Error(t, err)

	_, err = parse(t, "--near", "-5", "--far", "-10")
	assert.NoError(t, err, "camera parameters are not validated")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
