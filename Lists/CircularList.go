package Lists

// CircularList is a singly linked ring. Only the tail is tracked; the head
// is tail.next, so pushing at either end is O(1). Rotate advances the head
// by one without moving any element.
type CircularList[T comparable] struct {
	tail *snode[T]
	sz   uint
}

func NewCircularList[T comparable]() *CircularList[T] {
	return &CircularList[T]{}
}

func (u *CircularList[T]) PushFront(v T) {
	n := &snode[T]{v: v}
	if u.tail == nil {
		n.next = n
		u.tail = n
	} else {
		n.next = u.tail.next
		u.tail.next = n
	}
	u.sz++
}

func (u *CircularList[T]) PushBack(v T) {
	u.PushFront(v)
	u.tail = u.tail.next //the new head becomes the tail
}

func (u *CircularList[T]) InsertAt(i uint, v T) bool {
	if i > u.sz {
		return false
	}
	if i == 0 {
		u.PushFront(v)
	} else if i == u.sz {
		u.PushBack(v)
	} else {
		prev := u.tail.next
		for ; i > 1; i-- {
			prev = prev.next
		}
		prev.next = &snode[T]{v: v, next: prev.next}
		u.sz++
	}
	return true
}

func (u *CircularList[T]) RemoveFront() bool {
	if u.tail == nil {
		return false
	}
	if u.sz == 1 {
		u.tail = nil
	} else {
		u.tail.next = u.tail.next.next
	}
	u.sz--
	return true
}

func (u *CircularList[T]) RemoveBack() bool {
	return u.RemoveAt(u.sz - 1)
}

func (u *CircularList[T]) RemoveAt(i uint) bool {
	if i >= u.sz {
		return false
	}
	if i == 0 {
		return u.RemoveFront()
	}
	prev := u.tail.next
	for ; i > 1; i-- {
		prev = prev.next
	}
	if prev.next == u.tail {
		u.tail = prev
	}
	prev.next = prev.next.next
	u.sz--
	return true
}

func (u *CircularList[T]) Front() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.next.v, true
}

func (u *CircularList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

func (u *CircularList[T]) Get(i uint) (T, bool) {
	if i >= u.sz {
		return *new(T), false
	}
	cur := u.tail.next
	for ; i > 0; i-- {
		cur = cur.next
	}
	return cur.v, true
}

func (u *CircularList[T]) Has(v T) bool {
	if u.tail == nil {
		return false
	}
	cur := u.tail.next
	for i := uint(0); i < u.sz; i++ {
		if cur.v == v {
			return true
		}
		cur = cur.next
	}
	return false
}

// Rotate advances the ring one position: the head becomes the tail.
func (u *CircularList[T]) Rotate() {
	if u.tail != nil {
		u.tail = u.tail.next
	}
}

func (u *CircularList[T]) Size() uint {
	return u.sz
}

func (u *CircularList[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *CircularList[T]) Clear() {
	if u.tail != nil {
		u.tail.next = nil //break the ring for the collector
		u.tail = nil
	}
	u.sz = 0
}

// All [List.All]. The iteration ends after one full turn of the ring.
func (u *CircularList[T]) All() func() (T, bool) {
	if u.tail == nil {
		return func() (T, bool) { return *new(T), false }
	}
	cur, left := u.tail.next, u.sz
	return func() (T, bool) {
		if left == 0 {
			return *new(T), false
		}
		v := cur.v
		cur = cur.next
		left--
		return v, true
	}
}
