// SPDX-License-Identifier: MIT

// Package queue provides a generic FIFO backed by a growable ring buffer.
//
// Layout:
//
//	buf:  [ . . c d e f . . ]
//	           ^head   ^head+size
//
// Enqueue writes at (head+size) mod cap, Dequeue reads at head. When the
// buffer is full it is reallocated at twice the capacity and the live window
// is copied to the front. There are no per-element nodes, so the hot loops
// that drain and refill a queue touch contiguous memory.
//
// Passes over a queue that is refilled while being drained must capture
// Len() before starting: elements enqueued during the pass land behind the
// captured window and are not revisited by it.
//
// Queue is not safe for concurrent use.
package queue

import "iter"

const minCapacity = 8

// Queue is a FIFO of T. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// New returns a queue holding items in order. The slice is copied.
func New[T any](items ...T) *Queue[T] {
	c := minCapacity
	for c < len(items) {
		c <<= 1
	}
	q := &Queue[T]{buf: make([]T, c)}
	q.size = copy(q.buf, items)

	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Enqueue appends x at the back. Amortized O(1).
func (q *Queue[T]) Enqueue(x T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = x
	q.size++
}

// Dequeue removes and returns the front element. ok is false on an empty
// queue.
func (q *Queue[T]) Dequeue() (x T, ok bool) {
	if q.size == 0 {
		return x, false
	}
	var zero T
	x = q.buf[q.head]
	q.buf[q.head] = zero // release the reference
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	if q.size == 0 {
		q.head = 0
	}

	return x, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if q.size == 0 {
		return x, false
	}

	return q.buf[q.head], true
}

// All iterates front to back without consuming. The queue must not be
// modified while the iteration is in progress.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := 0; k < q.size; k++ {
			if !yield(q.buf[(q.head+k)%len(q.buf)]) {
				return
			}
		}
	}
}

// Slice copies the queued elements, front first, into a new slice.
func (q *Queue[T]) Slice() []T {
	out := make([]T, 0, q.size)
	for x := range q.All() {
		out = append(out, x)
	}

	return out
}

// grow doubles the buffer and unwraps the live window to index 0.
func (q *Queue[T]) grow() {
	c := len(q.buf) << 1
	if c < minCapacity {
		c = minCapacity
	}
	buf := make([]T, c)
	if q.size > 0 {
		n := copy(buf, q.buf[q.head:])
		if n < q.size {
			copy(buf[n:], q.buf[:q.size-n])
		}
	}
	q.buf = buf
	q.head = 0
}
