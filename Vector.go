package Go_Structs

import "strconv"

// InvalidSizeError is returned by constructors given a non-positive size
// or capacity.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return "invalid size " + strconv.Itoa(e.Size) + ": must be at least 1."
}

// NewVector with exactly size slots, all holding the zero value of T.
func NewVector[T any](size int) (*Vector[T], error) {
	if size < 1 {
		return nil, &InvalidSizeError{size}
	}
	return &Vector[T]{make([]T, size)}, nil
}

// Vector is a fixed-capacity array of T addressed by index. It never grows
// or shrinks; every slot exists from creation and holds the zero value
// until Set. Out-of-range indexes fail with false/nil rather than panic.
type Vector[T any] struct {
	elements []T
}

func (u *Vector[T]) Len() int {
	return len(u.elements)
}

func (u *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(u.elements) {
		return *new(T), false
	}
	return u.elements[i], true
}

// At returns a pointer to slot i, valid only until the next mutating call.
func (u *Vector[T]) At(i int) *T {
	if i < 0 || i >= len(u.elements) {
		return nil
	}
	return &u.elements[i]
}

func (u *Vector[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(u.elements) {
		return false
	}
	u.elements[i] = v
	return true
}

// Clear resets every slot to the zero value of T.
func (u *Vector[T]) Clear() {
	clear(u.elements)
}
