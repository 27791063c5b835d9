package input

import "go.uber.org/zap"

// InputHandlerBuilderOption is a functional option for configuring an InputHandler.
type InputHandlerBuilderOption func(*inputHandlerImpl)

// WithLogger sets the logger used for subscription and pruning diagnostics.
// A nil logger is ignored.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - InputHandlerBuilderOption: functional option to set the logger
func WithLogger(logger *zap.Logger) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		if logger != nil {
			h.logger = logger.Named("input")
		}
	}
}
