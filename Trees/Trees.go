package Trees

// Tree represents an ordered container implemented using linked nodes.
// Receivers that have A bool as A second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x T, false); in this case the value of x is
// undefined and shouldn't be used.
// Trees hold sets under their comparator: inserting an element equal to
// one already present fails rather than storing a duplicate.
// If an implementation doesn't specify anything special, the implemented
// receivers follow the behaviors defined here. Methods implemented
// recursively are noted, otherwise functions are implemented iteratively.
// No implementation is safe for concurrent use.
type Tree[T any] interface {
	//Insert v into the Tree. Returns false when an equal element is
	//already present.
	Insert(v T) bool
	//Remove the element equal to v. Returns false when none is present.
	Remove(v T) bool
	//Has reports whether an element equal to v is present. Use Has rather
	//than the second return value of other methods when existence is all
	//that's needed.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v. v itself need
	//not be present.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v. v itself need
	//not be present.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree: 0 when empty, 1 for a lone root.
	Height() uint
	IsEmpty() bool
	//Clear every element; the tree itself stays usable.
	Clear()
	//InOrder returns A closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree, which is
	//ascending under the comparator.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became
	//false. The tree must not be modified during the iteration of f.
	//Each call to InOrder re-traverses from the root; f isn't restartable.
	InOrder() func() (T, bool)
	//PreOrder is like InOrder with root-left-right order.
	PreOrder() func() (T, bool)
	//PostOrder is like InOrder with left-right-root order.
	PostOrder() func() (T, bool)
}

// NilCmpError is returned by constructors given a nil comparator.
type NilCmpError struct {
}

func (e *NilCmpError) Error() string {
	return "Tree: comparator must not be nil."
}
