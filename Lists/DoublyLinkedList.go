package Lists

// DoublyLinkedList links every node both ways, making removal at the back
// and backward iteration O(1) per step. Index operations walk from
// whichever end is closer.
type DoublyLinkedList[T comparable] struct {
	head, tail *dnode[T]
	sz         uint
}

func NewDoublyLinkedList[T comparable]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// at returns the node at index i. i must be in range.
func (u *DoublyLinkedList[T]) at(i uint) *dnode[T] {
	if i < u.sz/2 {
		cur := u.head
		for ; i > 0; i-- {
			cur = cur.next
		}
		return cur
	}
	cur := u.tail
	for i = u.sz - 1 - i; i > 0; i-- {
		cur = cur.prev
	}
	return cur
}

// unlink n from the list.
func (u *DoublyLinkedList[T]) unlink(n *dnode[T]) {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	u.sz--
}

func (u *DoublyLinkedList[T]) PushFront(v T) {
	n := &dnode[T]{v: v, next: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
}

func (u *DoublyLinkedList[T]) PushBack(v T) {
	n := &dnode[T]{v: v, prev: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

func (u *DoublyLinkedList[T]) InsertAt(i uint, v T) bool {
	if i > u.sz {
		return false
	}
	if i == 0 {
		u.PushFront(v)
	} else if i == u.sz {
		u.PushBack(v)
	} else {
		at := u.at(i)
		n := &dnode[T]{v: v, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		u.sz++
	}
	return true
}

func (u *DoublyLinkedList[T]) RemoveFront() bool {
	if u.head == nil {
		return false
	}
	u.unlink(u.head)
	return true
}

func (u *DoublyLinkedList[T]) RemoveBack() bool {
	if u.tail == nil {
		return false
	}
	u.unlink(u.tail)
	return true
}

func (u *DoublyLinkedList[T]) RemoveAt(i uint) bool {
	if i >= u.sz {
		return false
	}
	u.unlink(u.at(i))
	return true
}

func (u *DoublyLinkedList[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

func (u *DoublyLinkedList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

func (u *DoublyLinkedList[T]) Get(i uint) (T, bool) {
	if i >= u.sz {
		return *new(T), false
	}
	return u.at(i).v, true
}

func (u *DoublyLinkedList[T]) Has(v T) bool {
	for cur := u.head; cur != nil; cur = cur.next {
		if cur.v == v {
			return true
		}
	}
	return false
}

func (u *DoublyLinkedList[T]) Size() uint {
	return u.sz
}

func (u *DoublyLinkedList[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *DoublyLinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// All [List.All]
func (u *DoublyLinkedList[T]) All() func() (T, bool) {
	cur := u.head
	return func() (T, bool) {
		if cur == nil {
			return *new(T), false
		}
		v := cur.v
		cur = cur.next
		return v, true
	}
}

// Backward iterates from the tail to the head, otherwise like [List.All].
func (u *DoublyLinkedList[T]) Backward() func() (T, bool) {
	cur := u.tail
	return func() (T, bool) {
		if cur == nil {
			return *new(T), false
		}
		v := cur.v
		cur = cur.prev
		return v, true
	}
}
