package Go_Structs

import "golang.org/x/exp/constraints"

// Cmp is a three-way comparator over T: the result is negative when a
// orders before b, zero when the two are equal, and positive otherwise.
// Every ordered container in this module takes one at construction. A
// container must see the same ordering for its whole lifetime; feeding it
// values through inconsistent comparators corrupts its internal order.
type Cmp[T any] func(a, b T) int

// NaturalCmp is the Cmp induced by <.
func NaturalCmp[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	}
	return 0
}
