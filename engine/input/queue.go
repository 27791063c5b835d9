package input

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrQueueClosed is returned by Push once the consumer has closed the queue.
var ErrQueueClosed = errors.New("input: queue closed")

// Queue is an unbounded FIFO owned by a single consumer.
// Producers never block; the consumer drains it without blocking.
type Queue[T any] struct {
	id     uuid.UUID
	mu     sync.Mutex
	items  []T
	closed bool
}

// NewQueue creates an empty open queue with a random id.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{id: uuid.New()}
}

// ID returns the queue identifier used in log fields.
func (q *Queue[T]) ID() uuid.UUID {
	return q.id
}

// Push appends v to the queue.
//
// Parameters:
//   - v: the value to enqueue
//
// Returns:
//   - error: ErrQueueClosed if Close was called, nil otherwise
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, v)
	return nil
}

// TryPop removes and returns the oldest value.
// The boolean is false when the queue is empty.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, true
}

// Drain removes and returns every queued value in FIFO order.
// Returns nil if the queue is empty.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending values.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the queue as closed. Pending values stay drainable. Safe to call more than once.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
