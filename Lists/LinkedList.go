package Lists

// LinkedList is a singly linked list with head and tail pointers, so both
// PushFront and PushBack are O(1). Index operations walk from the head.
type LinkedList[T comparable] struct {
	head, tail *snode[T]
	sz         uint
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (u *LinkedList[T]) PushFront(v T) {
	n := &snode[T]{v: v, next: u.head}
	u.head = n
	if u.tail == nil {
		u.tail = n
	}
	u.sz++
}

func (u *LinkedList[T]) PushBack(v T) {
	n := &snode[T]{v: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

func (u *LinkedList[T]) InsertAt(i uint, v T) bool {
	if i > u.sz {
		return false
	}
	if i == 0 {
		u.PushFront(v)
	} else if i == u.sz {
		u.PushBack(v)
	} else {
		prev := u.head
		for ; i > 1; i-- {
			prev = prev.next
		}
		prev.next = &snode[T]{v: v, next: prev.next}
		u.sz++
	}
	return true
}

func (u *LinkedList[T]) RemoveFront() bool {
	if u.head == nil {
		return false
	}
	u.head = u.head.next
	if u.head == nil {
		u.tail = nil
	}
	u.sz--
	return true
}

func (u *LinkedList[T]) RemoveBack() bool {
	return u.RemoveAt(u.sz - 1) //u.sz==0 wraps around and fails the range check
}

func (u *LinkedList[T]) RemoveAt(i uint) bool {
	if i >= u.sz {
		return false
	}
	if i == 0 {
		return u.RemoveFront()
	}
	prev := u.head
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

func (u *LinkedList[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

func (u *LinkedList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

func (u *LinkedList[T]) Get(i uint) (T, bool) {
	if i >= u.sz {
		return *new(T), false
	}
	cur := u.head
	for ; i > 0; i-- {
		cur = cur.next
	}
	return cur.v, true
}

func (u *LinkedList[T]) Has(v T) bool {
	for cur := u.head; cur != nil; cur = cur.next {
		if cur.v == v {
			return true
		}
	}
	return false
}

func (u *LinkedList[T]) Size() uint {
	return u.sz
}

func (u *LinkedList[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *LinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// All [List.All]
func (u *LinkedList[T]) All() func() (T, bool) {
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
