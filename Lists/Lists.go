package Lists

// List is a positional container over linked nodes. Indexes are 0 based;
// operations addressing an index outside [0, Size()) fail by returning
// false or (zero, false) instead of panicking. Receivers with a bool as a
// second return value indicate whether the first return value is defined:
// Front on an empty list returns (x T, false) and x must not be used.
// Implementations are not safe for concurrent use.
type List[T comparable] interface {
	PushFront(v T)
	PushBack(v T)
	//InsertAt places v before the current element at index i; i == Size()
	//appends.
	InsertAt(i uint, v T) bool
	RemoveFront() bool
	RemoveBack() bool
	RemoveAt(i uint) bool
	Front() (T, bool)
	Back() (T, bool)
	Get(i uint) (T, bool)
	//Has reports whether an element == v is present. O(n).
	Has(v T) bool
	Size() uint
	IsEmpty() bool
	Clear()
	//All returns a closure acting like an iterator over the list from the
	//front: val, valid = f(); val is meaningful only while valid is true,
	//and valid can't turn true after it first became false. The list must
	//not be modified during the iteration.
	All() func() (T, bool)
}

var (
	_ List[int] = (*LinkedList[int])(nil)
	_ List[int] = (*DoublyLinkedList[int])(nil)
	_ List[int] = (*CircularList[int])(nil)
)

// snode is a singly linked node.
type snode[T any] struct {
	v    T
	next *snode[T]
}

// dnode is a doubly linked node.
type dnode[T any] struct {
	v          T
	prev, next *dnode[T]
}
