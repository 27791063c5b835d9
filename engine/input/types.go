package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ElementState is the level of a key or button.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// KeyboardInput is a raw keyboard sample reported by the window.
type KeyboardInput struct {
	Key       Key
	State     ElementState
	Modifiers Modifiers
}

// MouseInput is a raw mouse button sample reported by the window.
type MouseInput struct {
	Button    MouseButton
	State     ElementState
	Modifiers Modifiers
}

// Kind discriminates descriptors and events.
type Kind uint8

const (
	KindKeyboard Kind = iota
	KindMouseButton
	KindMouseMoved
)

func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindMouseButton:
		return "mouse_button"
	case KindMouseMoved:
		return "mouse_moved"
	default:
		return "unknown"
	}
}

// Descriptor identifies a class of input events a subscriber is interested in.
// It is comparable and used as a map key. Fields that do not apply to the Kind are zero.
type Descriptor struct {
	Kind      Kind
	Key       Key
	Button    MouseButton
	State     ElementState
	Modifiers Modifiers
}

// KeyboardDescriptor matches a key transitioning to state while exactly mods are held.
func KeyboardDescriptor(key Key, state ElementState, mods Modifiers) Descriptor {
	return Descriptor{Kind: KindKeyboard, Key: key, State: state, Modifiers: mods}
}

// MouseButtonDescriptor matches a mouse button transitioning to state while exactly mods are held.
func MouseButtonDescriptor(button MouseButton, state ElementState, mods Modifiers) Descriptor {
	return Descriptor{Kind: KindMouseButton, Button: button, State: state, Modifiers: mods}
}

// MouseMovedDescriptor matches every non-zero cursor movement.
func MouseMovedDescriptor() Descriptor {
	return Descriptor{Kind: KindMouseMoved}
}

// Event is a value delivered to subscribers.
// For KindMouseMoved only Delta is meaningful; for the other kinds Delta is zero.
type Event struct {
	Kind      Kind
	Key       Key
	Button    MouseButton
	State     ElementState
	Modifiers Modifiers
	Delta     mgl32.Vec2
}

// Descriptor returns the descriptor this event was published under.
func (e Event) Descriptor() Descriptor {
	return Descriptor{
		Kind:      e.Kind,
		Key:       e.Key,
		Button:    e.Button,
		State:     e.State,
		Modifiers: e.Modifiers,
	}
}
