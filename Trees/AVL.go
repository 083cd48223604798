package Trees

import (
	Go_Structs "github.com/s-d-ferro/go-structs"
	"golang.org/x/exp/constraints"
)

// AVL is a BST kept height balanced: after every insert and remove, each
// node on the path from the mutation point to the root is checked, and any
// node whose subtree heights differ by more than 1 is fixed with one or
// two rotations. This bounds the height D to O(log n) at the cost of
// recomputing subtree heights along the path, so mutations cost O(D^2)
// here (heights aren't cached on the nodes).
// The tree surgery itself is the wrapped BST's; AVL only adds the
// rebalancing walk, and every query delegates.
type AVL[T any] struct {
	tree *BST[T]
}

// NewAVL ordered by cmp.
func NewAVL[T any](cmp Go_Structs.Cmp[T]) (*AVL[T], error) {
	t, err := NewBST[T](cmp)
	if err != nil {
		return nil, err
	}
	return &AVL[T]{t}, nil
}

// NewOrderedAVL orders elements by <.
func NewOrderedAVL[T constraints.Ordered]() *AVL[T] {
	return &AVL[T]{NewOrderedBST[T]()}
}

// reattach hangs y where z used to hang off its parent, updating the root
// when z was the root. Returns y so the walk continues from the rotated
// subtree's new top.
func (u *AVL[T]) reattach(z, y *node[T]) *node[T] {
	if y.p == nil {
		u.tree.root = y
	} else if y.p.l == z {
		y.p.l = y
	} else {
		y.p.r = y
	}
	return y
}

// rebalance walks from n up to the root. The rotation case is picked by
// the heavy child's balance sign: a left-heavy node with a left-leaning
// (or even) left child is an LL case fixed by one right rotation, while a
// right-leaning left child is an LR case needing a left rotation on the
// child first; mirrored for right-heavy nodes. Balance factors come from
// the actual subtree heights at every step since a single removal can
// require rotations at several ancestors.
func (u *AVL[T]) rebalance(n *node[T]) {
	for ; n != nil; n = n.p {
		if b := n.balance(); b > 1 {
			if n.l.balance() < 0 {
				n.l = rotateLeft(n.l)
			}
			n = u.reattach(n, rotateRight(n))
		} else if b < -1 {
			if n.r.balance() > 0 {
				n.r = rotateRight(n.r)
			}
			n = u.reattach(n, rotateLeft(n))
		}
	}
}

// Insert [Tree.Insert]
// Time: O(D^2)
func (u *AVL[T]) Insert(v T) bool {
	n := u.tree.insert(v)
	if n == nil {
		return false
	}
	u.rebalance(n.p)
	return true
}

// Remove [Tree.Remove]
// Time: O(D^2)
func (u *AVL[T]) Remove(v T) bool {
	at, ok := u.tree.remove(v)
	if !ok {
		return false
	}
	u.rebalance(at)
	return true
}

func (u *AVL[T]) Has(v T) bool {
	return u.tree.Has(v)
}

func (u *AVL[T]) Minimum() (T, bool) {
	return u.tree.Minimum()
}

func (u *AVL[T]) Maximum() (T, bool) {
	return u.tree.Maximum()
}

func (u *AVL[T]) Predecessor(v T) (T, bool) {
	return u.tree.Predecessor(v)
}

func (u *AVL[T]) Successor(v T) (T, bool) {
	return u.tree.Successor(v)
}

func (u *AVL[T]) Size() uint {
	return u.tree.Size()
}

func (u *AVL[T]) Height() uint {
	return u.tree.Height()
}

func (u *AVL[T]) IsEmpty() bool {
	return u.tree.IsEmpty()
}

func (u *AVL[T]) Clear() {
	u.tree.Clear()
}

func (u *AVL[T]) InOrder() func() (T, bool) {
	return u.tree.InOrder()
}

func (u *AVL[T]) PreOrder() func() (T, bool) {
	return u.tree.PreOrder()
}

func (u *AVL[T]) PostOrder() func() (T, bool) {
	return u.tree.PostOrder()
}

var (
	_ Tree[int] = (*BST[int])(nil)
	_ Tree[int] = (*AVL[int])(nil)
)
