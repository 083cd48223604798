package Stacks

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

// Stack is a slice backed LIFO container.
type Stack[T any] struct {
	content []T
}

// New Stack with room for initCap elements before the first growth.
func New[T any](initCap uint) *Stack[T] {
	return &Stack[T]{make([]T, 0, initCap)}
}

func (u *Stack[T]) Push(item T) {
	u.content = append(u.content, item)
}

func (u *Stack[T]) Pop() (T, error) {
	if len(u.content) == 0 {
		return *new(T), &EmptyStackError{}
	}
	t := u.content[len(u.content)-1]
	u.content[len(u.content)-1] = *new(T)
	u.content = u.content[:len(u.content)-1]
	return t, nil
}

func (u *Stack[T]) Peek() (T, error) {
	if len(u.content) == 0 {
		return *new(T), &EmptyStackError{}
	}
	return u.content[len(u.content)-1], nil
}

func (u *Stack[T]) Size() uint {
	return uint(len(u.content))
}

func (u *Stack[T]) Empty() bool {
	return len(u.content) == 0
}

func (u *Stack[T]) Clear() {
	clear(u.content)
	u.content = u.content[:0]
}
