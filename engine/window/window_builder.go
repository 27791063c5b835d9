package window

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"go.uber.org/zap"
)

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithInputHandler routes raw input samples to the given handler.
//
// Parameters:
//   - handler: the input handler receiving samples
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithInputHandler(handler input.InputHandler) WindowBuilderOption {
	return func(w *engineWindow) {
		w.inputHandler = handler
	}
}

// WithCloseOnEscape controls whether pressing Escape closes the window. Enabled by default.
func WithCloseOnEscape(enabled bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.closeOnEscape = enabled
	}
}

// WithLogger sets the logger for window lifecycle messages.
func WithLogger(logger *zap.Logger) WindowBuilderOption {
	return func(w *engineWindow) {
		if logger != nil {
			w.logger = logger.Named("window")
		}
	}
}
