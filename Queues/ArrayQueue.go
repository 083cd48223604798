package Queues

// ArrayQueue is a queue over a circular array that grows by half whenever
// it fills up.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	if initCap == 0 {
		initCap = 1
	}
	return &ArrayQueue[T]{0, 0, 0, make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else {
		copy(nc, u.content[u.head:])
		copy(nc[uint(len(u.content))-u.head:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz
	u.content = nc
}

// Shrink the backing array down to the current size.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.head], nil
}
