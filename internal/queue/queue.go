// Package queue implements FIFO work-list used by fixpoint computations.
package queue

const minCompact = 16

// Queue is a FIFO queue backed by a slice.
// Consumed items are released and storage is compacted once at least half of it is consumed.
type Queue[T any] struct {
	items []T
	head  int
	zero  T
}

// New creates queue containing items in given order.
func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, len(items))}
	copy(q.items, items)
	return q
}

// IsEmpty tells whether the queue contains no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Items returns queued items, first item first. The slice must not be modified.
func (q *Queue[T]) Items() []T {
	return q.items[q.head:]
}

// Append adds items to the end of the queue.
func (q *Queue[T]) Append(items ...T) *Queue[T] {
	q.items = append(q.items, items...)
	return q
}

// First removes and returns the first item, returns zero value and false if the queue is empty.
func (q *Queue[T]) First() (T, bool) {
	if q.IsEmpty() {
		return q.zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = q.zero
	q.head++

	if q.head >= minCompact && q.head<<1 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return result, true
}
