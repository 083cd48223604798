package Queues

import (
	"github.com/s-d-ferro/go-structs/Lists"
)

// LinkedQueue is a queue over a singly linked list, growing one node per
// element with no amortized copying. T is comparable because the backing
// list is; use ArrayQueue for element types without ==.
type LinkedQueue[T comparable] struct {
	items *Lists.LinkedList[T]
}

func NewLinkedQueue[T comparable]() *LinkedQueue[T] {
	return &LinkedQueue[T]{Lists.NewLinkedList[T]()}
}

func (u *LinkedQueue[T]) Push(item T) {
	u.items.PushBack(item)
}

func (u *LinkedQueue[T]) Pop() (T, error) {
	t, has := u.items.Front()
	if !has {
		return t, &EmptyQueueError{}
	}
	u.items.RemoveFront()
	return t, nil
}

func (u *LinkedQueue[T]) Peek() (T, error) {
	t, has := u.items.Front()
	if !has {
		return t, &EmptyQueueError{}
	}
	return t, nil
}

func (u *LinkedQueue[T]) Empty() bool {
	return u.items.IsEmpty()
}

func (u *LinkedQueue[T]) Size() uint {
	return u.items.Size()
}

func (u *LinkedQueue[T]) Clear() {
	u.items.Clear()
}
