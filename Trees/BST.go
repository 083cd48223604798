package Trees

import (
	Go_Structs "github.com/s-d-ferro/go-structs"
	"github.com/s-d-ferro/go-structs/Stacks"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree ordered by a caller supplied comparator:
// for every node, everything in its left subtree compares less and
// everything in its right subtree compares greater. The tree performs no
// balancing on its own, so the height D is O(n) in the worst case
// (sorted insertions produce a chain); wrap it in an AVL when the input
// order can't be trusted.
// Size is tracked incrementally, Height is computed by walking the tree.
type BST[T any] struct {
	root *node[T]
	cmp  Go_Structs.Cmp[T]
	sz   uint
}

// NewBST ordered by cmp.
func NewBST[T any](cmp Go_Structs.Cmp[T]) (*BST[T], error) {
	if cmp == nil {
		return nil, &NilCmpError{}
	}
	return &BST[T]{cmp: cmp}, nil
}

// NewOrderedBST orders elements by <.
func NewOrderedBST[T constraints.Ordered]() *BST[T] {
	return &BST[T]{cmp: Go_Structs.NaturalCmp[T]}
}

// search the node holding an element equal to v.
func (u *BST[T]) search(v T) *node[T] {
	cur := u.root
	for cur != nil {
		if d := u.cmp(v, cur.v); d == 0 {
			break
		} else if d < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return cur
}

// insert v, returning the created node, or nil when an equal element is
// already present. AVL reads the returned node's parent to start its
// rebalancing walk.
func (u *BST[T]) insert(v T) *node[T] {
	n := &node[T]{v: v}
	if u.root == nil {
		u.root = n
		u.sz++
		return n
	}
	cur := u.root
	for {
		d := u.cmp(v, cur.v)
		if d == 0 {
			return nil
		} else if d < 0 {
			if cur.l == nil {
				cur.l = n
				break
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.r = n
				break
			}
			cur = cur.r
		}
	}
	n.p = cur
	u.sz++
	return n
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) bool {
	return u.insert(v) != nil
}

// transplant the subtree rooted at y (possibly nil) into x's position.
// x's own links are left untouched.
func (u *BST[T]) transplant(x, y *node[T]) {
	if x.p == nil {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	if y != nil {
		y.p = x.p
	}
}

// remove the node holding an element equal to v. A node with two children
// is replaced by its in-order successor, which is first spliced out of its
// own position. Returns the parent of the physical removal point, the node
// AVL starts rebalancing from: for the two-children case that is the
// successor's former parent (or the successor itself when it was the
// removed node's direct child), not the removed node's parent.
func (u *BST[T]) remove(v T) (*node[T], bool) {
	x := u.search(v)
	if x == nil {
		return nil, false
	}
	var at *node[T]
	if x.l == nil {
		at = x.p
		u.transplant(x, x.r)
	} else if x.r == nil {
		at = x.p
		u.transplant(x, x.l)
	} else {
		s := x.r.min() //successor; has no left child
		if s.p == x {
			at = s
		} else {
			at = s.p
			u.transplant(s, s.r)
			s.r = x.r
			s.r.p = s
		}
		u.transplant(x, s)
		s.l = x.l
		s.l.p = s
	}
	x.p, x.l, x.r = nil, nil, nil
	u.sz--
	return at, true
}

// Remove [Tree.Remove]
// Time: O(D); Space: O(1)
func (u *BST[T]) Remove(v T) bool {
	_, ok := u.remove(v)
	return ok
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.search(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.min().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.max().v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Size [Tree.Size]
// Time: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BST[T]) Height() uint {
	return u.root.height()
}

func (u *BST[T]) IsEmpty() bool {
	return u.root == nil
}

func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// InOrder [Tree.InOrder]. The stack holds the path to the next node, so
// space is O(D).
func (u *BST[T]) InOrder() func() (T, bool) {
	st := Stacks.New[*node[T]](u.root.height())
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	return func() (T, bool) {
		n, err := st.Pop()
		if err != nil {
			return *new(T), false
		}
		for cur := n.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		return n.v, true
	}
}

// PreOrder [Tree.PreOrder]. The right child is pushed before the left so
// the left subtree comes out first.
func (u *BST[T]) PreOrder() func() (T, bool) {
	st := Stacks.New[*node[T]](u.root.height())
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (T, bool) {
		n, err := st.Pop()
		if err != nil {
			return *new(T), false
		}
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n.v, true
	}
}

// PostOrder [Tree.PostOrder]. Runs a root-right-left pre-order into a
// second stack up front, which pops back out as left-right-root; space is
// O(n).
func (u *BST[T]) PostOrder() func() (T, bool) {
	walk := Stacks.New[*node[T]](u.root.height())
	out := Stacks.New[T](u.sz)
	if u.root != nil {
		walk.Push(u.root)
	}
	for !walk.Empty() {
		n, _ := walk.Pop()
		out.Push(n.v)
		if n.l != nil {
			walk.Push(n.l)
		}
		if n.r != nil {
			walk.Push(n.r)
		}
	}
	return func() (T, bool) {
		v, err := out.Pop()
		if err != nil {
			return *new(T), false
		}
		return v, true
	}
}
