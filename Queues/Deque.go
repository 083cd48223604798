package Queues

// Deque is a double ended queue over a circular array that grows by half
// whenever it fills up. Push/Pop/Peek exist for both ends; the Queue
// methods Push/Pop/Peek alias the back/front pair so a Deque can stand in
// wherever a Queue is expected.
type Deque[T any] struct {
	sz, head uint
	content  []T
}

func NewDeque[T any](initCap uint) *Deque[T] {
	if initCap == 0 {
		initCap = 1
	}
	return &Deque[T]{content: make([]T, initCap)}
}

func (u *Deque[T]) Empty() bool {
	return u.sz == 0
}

func (u *Deque[T]) Size() uint {
	return u.sz
}

func (u *Deque[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	for i := uint(0); i < u.sz; i++ {
		nc[i] = u.content[(u.head+i)%uint(len(u.content))]
	}
	u.head = 0
	u.content = nc
}

func (u *Deque[T]) PushFront(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.head = (u.head + uint(len(u.content)) - 1) % uint(len(u.content))
	u.content[u.head] = item
	u.sz++
}

func (u *Deque[T]) PushBack(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *Deque[T]) PopFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *Deque[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	i := (u.head + u.sz - 1) % uint(len(u.content))
	t := u.content[i]
	u.content[i] = *new(T)
	u.sz--
	return t, nil
}

func (u *Deque[T]) PeekFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

func (u *Deque[T]) PeekBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[(u.head+u.sz-1)%uint(len(u.content))], nil
}

func (u *Deque[T]) Push(item T) {
	u.PushBack(item)
}

func (u *Deque[T]) Pop() (T, error) {
	return u.PopFront()
}

func (u *Deque[T]) Peek() (T, error) {
	return u.PeekFront()
}

func (u *Deque[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}
