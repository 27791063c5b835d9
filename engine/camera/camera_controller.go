package camera

// FreeFlyController translates subscribed input events into camera motion.
// Keyboard W/A/S/D set a movement intent along the camera's forward and lateral axes;
// dragging with the left mouse button held rotates the camera about its own axes.
//
// Events are only consumed in Update, so the controller never blocks the window thread.
type FreeFlyController interface {
	// Update drains pending input events, folds them into the movement intent, and applies
	// one tick of motion to the camera. It never blocks.
	//
	// Parameters:
	//   - cam: the camera to move
	//   - dt: elapsed time in seconds since the previous update
	Update(cam Camera, dt float32)

	// LateralIntent returns the current left/right movement sign.
	// The boolean is false when no lateral key is driving the axis.
	//
	// Returns:
	//   - float32: -1 for left (A), +1 for right (D)
	//   - bool: whether the axis is active
	LateralIntent() (float32, bool)

	// ForwardIntent returns the current forward/backward movement sign.
	// The boolean is false when no forward key is driving the axis.
	//
	// Returns:
	//   - float32: -1 for forward (W, toward -Z), +1 for backward (S)
	//   - bool: whether the axis is active
	ForwardIntent() (float32, bool)

	// Dragging reports whether the left mouse button is held.
	Dragging() bool

	// MoveSpeed returns the translation speed in world units per second.
	MoveSpeed() float32

	// MouseSensitivity returns the radians of rotation per pixel of drag.
	MouseSensitivity() float32

	// Close stops receiving input. The input handler drops the subscription
	// the next time it publishes to it.
	Close()
}
