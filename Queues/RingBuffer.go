package Queues

import (
	Go_Structs "github.com/s-d-ferro/go-structs"
)

// RingBuffer is a queue over a circular array of fixed capacity. The
// overwrite policy decides what a Push into a full ring does: with
// overwrite enabled the oldest element is dropped to make room, without it
// the pushed element is discarded.
type RingBuffer[T any] struct {
	content    []T
	head, tail uint
	full       bool
	overwrite  bool
}

func NewRingBuffer[T any](capacity uint, overwrite bool) (*RingBuffer[T], error) {
	if capacity == 0 {
		return nil, &Go_Structs.InvalidSizeError{Size: int(capacity)}
	}
	return &RingBuffer[T]{content: make([]T, capacity), overwrite: overwrite}, nil
}

func (u *RingBuffer[T]) Capacity() uint {
	return uint(len(u.content))
}

func (u *RingBuffer[T]) Full() bool {
	return u.full
}

func (u *RingBuffer[T]) Empty() bool {
	return u.head == u.tail && !u.full
}

func (u *RingBuffer[T]) Size() uint {
	if u.full {
		return uint(len(u.content))
	}
	if u.tail >= u.head {
		return u.tail - u.head
	}
	return uint(len(u.content)) - u.head + u.tail
}

func (u *RingBuffer[T]) Push(item T) {
	if u.full {
		if !u.overwrite {
			return
		}
		// drop the oldest element
		u.head = (u.head + 1) % uint(len(u.content))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.full = u.tail == u.head
}

func (u *RingBuffer[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.full = false
	return t, nil
}

func (u *RingBuffer[T]) Peek() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

func (u *RingBuffer[T]) Clear() {
	clear(u.content)
	u.head, u.tail, u.full = 0, 0, false
}
