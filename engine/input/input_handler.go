package input

import (
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// InputHandler turns raw window samples into edge-triggered events and fans them
// out to subscriber queues. Keyboard and mouse button samples are deduplicated against
// the last known level; cursor positions are converted to deltas.
//
// All methods are safe for concurrent use. Publishing never blocks.
type InputHandler interface {
	// HandleKeyboardInput processes a raw keyboard sample.
	// Publishes only when the key's stored level changes. Out-of-range keys are ignored.
	//
	// Parameters:
	//   - in: the keyboard sample
	HandleKeyboardInput(in KeyboardInput)

	// HandleMouseInput processes a raw mouse button sample.
	// Publishes only when the button's stored level changes. Out-of-range buttons are ignored.
	//
	// Parameters:
	//   - in: the mouse button sample
	HandleMouseInput(in MouseInput)

	// HandleMouseMove processes an absolute cursor position.
	// The first sample only seeds the stored position. Later samples publish the
	// delta from the stored position, unless the delta is zero.
	//
	// Parameters:
	//   - pos: absolute cursor position in window coordinates
	HandleMouseMove(pos mgl32.Vec2)

	// Subscribe registers a queue for events matching the descriptor.
	// Registering the same queue twice results in duplicate delivery.
	//
	// Parameters:
	//   - d: the descriptor to match
	//   - q: the subscriber queue
	Subscribe(d Descriptor, q *Queue[Event])

	// SubscriberCount returns how many queues are registered for the descriptor.
	SubscriberCount(d Descriptor) int

	// KeyState returns the stored level of a key. Out-of-range keys report Released.
	KeyState(key Key) ElementState

	// MouseButtonState returns the stored level of a mouse button. Out-of-range buttons report Released.
	MouseButtonState(button MouseButton) ElementState
}

// inputHandlerImpl is the implementation of InputHandler.
type inputHandlerImpl struct {
	mu     *sync.Mutex
	logger *zap.Logger

	subscribers map[Descriptor][]*Queue[Event]

	keys         [KeyCount]ElementState
	mouseButtons [MouseButtonCount]ElementState

	lastMousePosition *mgl32.Vec2
}

var _ InputHandler = &inputHandlerImpl{}

// NewInputHandler creates an InputHandler with no subscribers and every key and button released.
//
// Parameters:
//   - options: functional options to configure the handler
//
// Returns:
//   - InputHandler: the newly created handler
func NewInputHandler(options ...InputHandlerBuilderOption) InputHandler {
	h := &inputHandlerImpl{
		mu:          &sync.Mutex{},
		logger:      zap.NewNop(),
		subscribers: make(map[Descriptor][]*Queue[Event]),
	}

	for _, option := range options {
		option(h)
	}

	return h
}

func (h *inputHandlerImpl) HandleKeyboardInput(in KeyboardInput) {
	if in.Key < 0 || int(in.Key) >= KeyCount {
		h.logger.Debug("ignoring out-of-range key", zap.Int("key", int(in.Key)))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.keys[in.Key] == in.State {
		return
	}
	h.keys[in.Key] = in.State

	h.publish(Event{
		Kind:      KindKeyboard,
		Key:       in.Key,
		State:     in.State,
		Modifiers: in.Modifiers,
	})
}

func (h *inputHandlerImpl) HandleMouseInput(in MouseInput) {
	if in.Button < 0 || int(in.Button) >= MouseButtonCount {
		h.logger.Debug("ignoring out-of-range mouse button", zap.Int("button", int(in.Button)))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mouseButtons[in.Button] == in.State {
		return
	}
	h.mouseButtons[in.Button] = in.State

	h.publish(Event{
		Kind:      KindMouseButton,
		Button:    in.Button,
		State:     in.State,
		Modifiers: in.Modifiers,
	})
}

func (h *inputHandlerImpl) HandleMouseMove(pos mgl32.Vec2) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.lastMousePosition == nil {
		h.lastMousePosition = &pos
		return
	}

	delta := pos.Sub(*h.lastMousePosition)
	if delta.X() == 0 && delta.Y() == 0 {
		return
	}
	*h.lastMousePosition = pos

	h.publish(Event{
		Kind:  KindMouseMoved,
		Delta: delta,
	})
}

func (h *inputHandlerImpl) Subscribe(d Descriptor, q *Queue[Event]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[d] = append(h.subscribers[d], q)
	h.logger.Debug("input subscriber registered",
		zap.Stringer("kind", d.Kind),
		zap.Int("key", int(d.Key)),
		zap.Int("button", int(d.Button)),
		zap.Stringer("state", d.State),
		zap.Stringer("queue", q.ID()),
	)
}

func (h *inputHandlerImpl) SubscriberCount(d Descriptor) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[d])
}

func (h *inputHandlerImpl) KeyState(key Key) ElementState {
	if key < 0 || int(key) >= KeyCount {
		return Released
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys[key]
}

func (h *inputHandlerImpl) MouseButtonState(button MouseButton) ElementState {
	if button < 0 || int(button) >= MouseButtonCount {
		return Released
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mouseButtons[button]
}

// publish delivers e to every queue registered under its descriptor, in registration order.
// Queues that report ErrQueueClosed are removed once the loop is done.
// Caller must hold h.mu.
func (h *inputHandlerImpl) publish(e Event) {
	d := e.Descriptor()
	queues := h.subscribers[d]
	if len(queues) == 0 {
		return
	}

	var closed []int
	for i, q := range queues {
		if err := q.Push(e); err != nil {
			if errors.Is(err, ErrQueueClosed) {
				closed = append(closed, i)
				continue
			}
			h.logger.Warn("failed to deliver input event", zap.Stringer("queue", q.ID()), zap.Error(err))
		}
	}

	if len(closed) == 0 {
		return
	}

	kept := queues[:0]
	next := 0
	for i, q := range queues {
		if next < len(closed) && closed[next] == i {
			next++
			h.logger.Debug("pruning closed input subscriber", zap.Stringer("queue", q.ID()))
			continue
		}
		kept = append(kept, q)
	}
	for i := len(kept); i < len(queues); i++ {
		queues[i] = nil
	}

	if len(kept) == 0 {
		delete(h.subscribers, d)
		return
	}
	h.subscribers[d] = kept
}
