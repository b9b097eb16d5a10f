package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a typed FIFO queue with stack accessors, backed by github.com/ef-ds/deque so both
// ends stay O(1) without the slice-shuffling a naive implementation would need.
type Q[T any] struct {
	items *deque.Deque
}

// New creates an empty Q
func New[T any]() *Q[T] {
	return &Q[T]{items: deque.New()}
}

// Enqueue adds an item at the back of the queue
func (q *Q[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the item at the front of the queue
func (q *Q[T]) Dequeue() (T, bool) {
	return q.typed(q.items.PopFront())
}

// Push adds an item on top of the stack
func (q *Q[T]) Push(item T) {
	q.items.PushBack(item)
}

// Pop removes and returns the item on top of the stack
func (q *Q[T]) Pop() (T, bool) {
	return q.typed(q.items.PopBack())
}

// Front returns the front item without removing it
func (q *Q[T]) Front() (T, bool) {
	return q.typed(q.items.Front())
}

// Len returns the number of queued items
func (q *Q[T]) Len() int {
	return q.items.Len()
}

// Clear removes all items
func (q *Q[T]) Clear() {
	for q.items.Len() > 0 {
		q.items.PopFront()
	}
}

func (q *Q[T]) typed(item interface{}, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}

	return item.(T), true
}
