package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// axisIntent tracks one movement axis driven by a pair of opposing keys.
// The most recently pressed key wins. Releasing it hands the axis back to the
// opposing key if that key is still held.
type axisIntent struct {
	sign   float32
	active bool

	negativeHeld bool
	positiveHeld bool
}

func (a *axisIntent) press(sign float32) {
	if sign < 0 {
		a.negativeHeld = true
	} else {
		a.positiveHeld = true
	}
	a.sign = sign
	a.active = true
}

func (a *axisIntent) release(sign float32) {
	opposingHeld := a.positiveHeld
	if sign < 0 {
		a.negativeHeld = false
	} else {
		a.positiveHeld = false
		opposingHeld = a.negativeHeld
	}

	if !a.active || a.sign != sign {
		return
	}
	if opposingHeld {
		a.sign = -sign
		return
	}
	a.sign = 0
	a.active = false
}

// keyBinding maps a key to the axis it drives and the sign it applies.
type keyBinding struct {
	forward bool
	sign    float32
}

var freeFlyBindings = map[input.Key]keyBinding{
	input.KeyA: {forward: false, sign: -1},
	input.KeyD: {forward: false, sign: 1},
	input.KeyW: {forward: true, sign: -1},
	input.KeyS: {forward: true, sign: 1},
}

// freeFlyControllerImpl is the single implementation of FreeFlyController.
type freeFlyControllerImpl struct {
	mu *sync.Mutex

	events *input.Queue[input.Event]

	lateral  axisIntent
	forward  axisIntent
	dragging bool

	moveSpeed        float32
	mouseSensitivity float32
}

// Compile-time interface compliance check
var _ FreeFlyController = &freeFlyControllerImpl{}

// Default controller tuning.
const (
	DefaultMoveSpeed        float32 = 1.0
	DefaultMouseSensitivity float32 = 0.003
)

// NewFreeFlyController creates a controller and subscribes it to W/A/S/D, the left mouse
// button and cursor movement on the given handler. Subscriptions use an empty modifier set,
// so keys pressed while a modifier is held are not seen. This includes releases: pressing W,
// then holding Shift and releasing W leaves the forward axis active until W is pressed and
// released again without modifiers.
//
// Parameters:
//   - handler: the input handler to subscribe to
//   - options: functional options to configure the controller
//
// Returns:
//   - FreeFlyController: the newly created controller
func NewFreeFlyController(handler input.InputHandler, options ...FreeFlyControllerOption) FreeFlyController {
	cc := &freeFlyControllerImpl{
		mu:               &sync.Mutex{},
		events:           input.NewQueue[input.Event](),
		moveSpeed:        DefaultMoveSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
	}

	for _, option := range options {
		option(cc)
	}

	for _, key := range []input.Key{input.KeyA, input.KeyD, input.KeyS, input.KeyW} {
		handler.Subscribe(input.KeyboardDescriptor(key, input.Pressed, input.NoModifiers), cc.events)
		handler.Subscribe(input.KeyboardDescriptor(key, input.Released, input.NoModifiers), cc.events)
	}
	handler.Subscribe(input.MouseButtonDescriptor(input.MouseButtonLeft, input.Pressed, input.NoModifiers), cc.events)
	handler.Subscribe(input.MouseButtonDescriptor(input.MouseButtonLeft, input.Released, input.NoModifiers), cc.events)
	handler.Subscribe(input.MouseMovedDescriptor(), cc.events)

	return cc
}

func (cc *freeFlyControllerImpl) Update(cam Camera, dt float32) {
	cc.mu.Lock()
	var (
		drag    mgl32.Vec2
		hasDrag bool
	)
	for _, e := range cc.events.Drain() {
		switch e.Kind {
		case input.KindKeyboard:
			cc.applyKey(e.Key, e.State)
		case input.KindMouseButton:
			if e.Button == input.MouseButtonLeft {
				cc.dragging = e.State == input.Pressed
			}
		case input.KindMouseMoved:
			if cc.dragging {
				drag = drag.Add(e.Delta)
				hasDrag = true
			}
		}
	}

	var (
		dir     mgl32.Vec3
		moving  bool
		speed   = cc.moveSpeed
		turning = cc.mouseSensitivity
	)
	if cc.lateral.active {
		dir[0] = cc.lateral.sign
		moving = true
	}
	if cc.forward.active {
		dir[2] = cc.forward.sign
		moving = true
	}
	cc.mu.Unlock()

	if moving {
		cam.LocalTranslateBy(dir.Mul(dt * speed))
	}
	if hasDrag {
		cam.LocalYawBy(-turning * drag.X())
		cam.LocalPitchBy(turning * drag.Y())
	}
}

// applyKey folds a key transition into the bound axis. Unbound keys are ignored.
// Caller must hold the mutex.
func (cc *freeFlyControllerImpl) applyKey(key input.Key, state input.ElementState) {
	binding, ok := freeFlyBindings[key]
	if !ok {
		return
	}
	axis := &cc.lateral
	if binding.forward {
		axis = &cc.forward
	}
	if state == input.Pressed {
		axis.press(binding.sign)
	} else {
		axis.release(binding.sign)
	}
}

func (cc *freeFlyControllerImpl) LateralIntent() (float32, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lateral.sign, cc.lateral.active
}

func (cc *freeFlyControllerImpl) ForwardIntent() (float32, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.forward.sign, cc.forward.active
}

func (cc *freeFlyControllerImpl) Dragging() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.dragging
}

func (cc *freeFlyControllerImpl) MoveSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *freeFlyControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *freeFlyControllerImpl) Close() {
	cc.events.Close()
}
