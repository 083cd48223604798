package Trees

// A node in a BST. The parent link lets removal and rebalancing walk
// upward without keeping a path stack.
// nil stands for an absent child; there is no sentinel.
type node[T any] struct {
	v       T
	p, l, r *node[T]
}

// min returns the leftmost node of the subtree rooted at n. n must not be
// nil.
func (n *node[T]) min() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n. n must not be
// nil.
func (n *node[T]) max() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooted at n; 0 for nil. Recursive.
func (n *node[T]) height() uint {
	if n == nil {
		return 0
	}
	lh, rh := n.l.height(), n.r.height()
	if lh < rh {
		lh = rh
	}
	return lh + 1
}

// balance is height(l)-height(r), recomputed from the actual subtrees on
// every call.
func (n *node[T]) balance() int {
	return int(n.l.height()) - int(n.r.height())
}

// rotateLeft around z. z.r must not be nil.
// The pivot z.r becomes the new subtree root with z as its left child; the
// pivot's former left child moves under z. Parent pointers of all three
// are fixed here, but z's former parent still points at z: the caller must
// hang the returned node where z used to sit.
// Time: O(1); Space: O(1)
func rotateLeft[T any](z *node[T]) *node[T] {
	y := z.r
	t := y.l
	y.l = z
	z.r = t
	if t != nil {
		t.p = z
	}
	y.p = z.p
	z.p = y
	return y
}

// rotateRight around z. z.l must not be nil. Mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](z *node[T]) *node[T] {
	y := z.l
	t := y.r
	y.r = z
	z.l = t
	if t != nil {
		t.p = z
	}
	y.p = z.p
	z.p = y
	return y
}
