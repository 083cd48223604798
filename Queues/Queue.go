package Queues

// Queue of T. Pop and Peek report an empty queue through their error
// return value; the element is only meaningful when the error is nil.
// Implementations are not safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
	Clear()
}

// BoundedQueue is a Queue whose capacity is fixed at creation.
type BoundedQueue[T any] interface {
	Queue[T]
	Capacity() uint
	Full() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
