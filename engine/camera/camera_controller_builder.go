package camera

// FreeFlyControllerOption is a functional option for configuring a FreeFlyController.
type FreeFlyControllerOption func(*freeFlyControllerImpl)

// WithMoveSpeed sets the translation speed.
//
// Parameters:
//   - speed: world units per second while a movement key is held
//
// Returns:
//   - FreeFlyControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) FreeFlyControllerOption {
	return func(cc *freeFlyControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse drag sensitivity.
//
// Parameters:
//   - sensitivity: radians of rotation per pixel of cursor movement
//
// Returns:
//   - FreeFlyControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) FreeFlyControllerOption {
	return func(cc *freeFlyControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
