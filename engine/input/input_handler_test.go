package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func pressW() KeyboardInput {
	return KeyboardInput{Key: KeyW, State: Pressed}
}

func TestKeyboardEdgeDeduplication(t *testing.T) {
	h := NewInputHandler()
	q := NewQueue[Event]()
	h.Subscribe(KeyboardDescriptor(KeyW, Pressed, NoModifiers), q)

	h.HandleKeyboardInput(pressW())
	h.HandleKeyboardInput(pressW())

	events := q.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, KindKeyboard, events[0].Kind)
	assert.Equal(t, KeyW, events[0].Key)
	assert.Equal(t, Pressed, events[0].State)
	assert.Equal(t, Pressed, h.KeyState(KeyW))
}

func TestReleaseOfReleasedKeyIsSilent(t *testing.T) {
	h := NewInputHandler()
	q := NewQueue[Event]()
	h.Subscribe(KeyboardDescriptor(KeyA, Released, NoModifiers), q)

	h.HandleKeyboardInput(KeyboardInput{Key: KeyA, State: Released})
	assert.Equal(t, 0, q.Len())

	h.HandleKeyboardInput(KeyboardInput{Key: KeyA, State: Pressed})
	h.HandleKeyboardInput(KeyboardInput{Key: KeyA, State: Released})
	assert.Equal(t, 1, q.Len())
}

func TestFanOutInRegistrationOrder(t *testing.T) {
	h := NewInputHandler()
	d := KeyboardDescriptor(KeyW, Pressed, NoModifiers)
	q1 := NewQueue[Event]()
	q2 := NewQueue[Event]()
	h.Subscribe(d, q1)
	h.Subscribe(d, q2)

	h.HandleKeyboardInput(pressW())

	assert.Len(t, q1.Drain(), 1)
	assert.Len(t, q2.Drain(), 1)
}

func TestDuplicateSubscriptionDeliversTwice(t *testing.T) {
	h := NewInputHandler()
	d := KeyboardDescriptor(KeyW, Pressed, NoModifiers)
	q := NewQueue[Event]()
	h.Subscribe(d, q)
	h.Subscribe(d, q)

	h.HandleKeyboardInput(pressW())
	assert.Len(t, q.Drain(), 2)
}

func TestClosedSubscriberIsPruned(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewInputHandler(WithLogger(zap.New(core)))

	d := KeyboardDescriptor(KeyW, Pressed, NoModifiers)
	closed := NewQueue[Event]()
	open := NewQueue[Event]()
	h.Subscribe(d, closed)
	h.Subscribe(d, open)
	closed.Close()

	h.HandleKeyboardInput(pressW())

	assert.Len(t, open.Drain(), 1)
	assert.Equal(t, 0, closed.Len())
	assert.Equal(t, 1, h.SubscriberCount(d))
	assert.Equal(t, 1, logs.FilterMessage("pruning closed input subscriber").Len())
}

func TestAllSubscribersClosedRemovesDescriptor(t *testing.T) {
	h := NewInputHandler()
	d := MouseButtonDescriptor(MouseButtonLeft, Pressed, NoModifiers)
	q := NewQueue[Event]()
	h.Subscribe(d, q)
	q.Close()

	assert.NotPanics(t, func() {
		h.HandleMouseInput(MouseInput{Button: MouseButtonLeft, State: Pressed})
	})
	assert.Equal(t, 0, h.SubscriberCount(d))
}

func TestModifiersArePartOfTheDescriptor(t *testing.T) {
	h := NewInputHandler()
	plain := NewQueue[Event]()
	shifted := NewQueue[Event]()
	h.Subscribe(KeyboardDescriptor(KeyW, Pressed, NoModifiers), plain)
	h.Subscribe(KeyboardDescriptor(KeyW, Pressed, ModShift), shifted)

	h.HandleKeyboardInput(KeyboardInput{Key: KeyW, State: Pressed, Modifiers: ModShift})

	assert.Equal(t, 0, plain.Len())
	assert.Equal(t, 1, shifted.Len())
}

func TestOutOfRangeCodesAreIgnored(t *testing.T) {
	h := NewInputHandler()

	assert.NotPanics(t, func() {
		h.HandleKeyboardInput(KeyboardInput{Key: Key(KeyCount), State: Pressed})
		h.HandleKeyboardInput(KeyboardInput{Key: -1, State: Pressed})
		h.HandleMouseInput(MouseInput{Button: MouseButton(MouseButtonCount), State: Pressed})
	})
	assert.Equal(t, Released, h.KeyState(Key(KeyCount)))
	assert.Equal(t, Released, h.MouseButtonState(MouseButton(MouseButtonCount)))
}

func TestNumericMouseButtonIds(t *testing.T) {
	h := NewInputHandler()
	q := NewQueue[Event]()
	h.Subscribe(MouseButtonDescriptor(MouseButton(7), Pressed, NoModifiers), q)

	h.HandleMouseInput(MouseInput{Button: MouseButton(7), State: Pressed})

	events := q.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, MouseButton(7), events[0].Button)
	assert.Equal(t, Pressed, h.MouseButtonState(MouseButton(7)))
}

func TestMouseMoveDeltas(t *testing.T) {
	h := NewInputHandler()
	q := NewQueue[Event]()
	h.Subscribe(MouseMovedDescriptor(), q)

	h.HandleMouseMove(mgl32.Vec2{100, 100})
	assert.Equal(t, 0, q.Len(), "first sample only seeds the position")

	h.HandleMouseMove(mgl32.Vec2{110, 95})
	h.HandleMouseMove(mgl32.Vec2{110, 95})
	h.HandleMouseMove(mgl32.Vec2{105, 95})

	events := q.Drain()
	require.Len(t, events, 2, "zero deltas are suppressed")
	assert.Equal(t, mgl32.Vec2{10, -5}, events[0].Delta)
	assert.Equal(t, mgl32.Vec2{-5, 0}, events[1].Delta)
	assert.Equal(t, KindMouseMoved, events[0].Kind)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	h := NewInputHandler(WithLogger(nil))
	assert.NotPanics(t, func() {
		h.HandleKeyboardInput(pressW())
		h.HandleMouseMove(mgl32.Vec2{1, 1})
		h.HandleMouseMove(mgl32.Vec2{2, 2})
	})
	assert.Equal(t, 0, h.SubscriberCount(MouseMovedDescriptor()))
}
