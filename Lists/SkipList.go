package Lists

import (
	randv2 "math/rand/v2"
	"strconv"

	Go_Structs "github.com/s-d-ferro/go-structs"
	"golang.org/x/exp/constraints"
)

type InvalidProbabilityError struct {
	P float64
}

func (e *InvalidProbabilityError) Error() string {
	return "SkipList: probability " + strconv.FormatFloat(e.P, 'g', -1, 64) + " outside (0,1)."
}

type InvalidLevelsError struct {
	Levels int
}

func (e *InvalidLevelsError) Error() string {
	return "SkipList: max levels " + strconv.Itoa(e.Levels) + " must be at least 1."
}

type NilCmpError struct {
}

func (e *NilCmpError) Error() string {
	return "SkipList: comparator must not be nil."
}

// slnode carries one forward pointer per level it takes part in; the slot
// count is the node's level.
type slnode[T any] struct {
	v       T
	forward []*slnode[T]
}

// SkipList keeps elements ordered across stacked levels of forward
// pointers. Level 0 links every node in comparator order; each level above
// links a random subset of the one below, so a search can skip long runs
// before dropping down. Node levels follow a geometric distribution with
// promotion probability p, capped at maxLevels. Equal elements are
// rejected on insert, so the list holds a set under its comparator.
// Expected search/insert/remove cost is O(log n).
type SkipList[T any] struct {
	sentinel  *slnode[T] //holds no element; its forward array spans maxLevels
	cmp       Go_Structs.Cmp[T]
	rng       *randv2.Rand
	p         float64
	level     int //highest level currently holding a node, >=1
	maxLevels int
	sz        uint
}

// NewSkipList capped at maxLevels levels with promotion probability p.
func NewSkipList[T any](maxLevels int, p float64, cmp Go_Structs.Cmp[T]) (*SkipList[T], error) {
	if maxLevels < 1 {
		return nil, &InvalidLevelsError{maxLevels}
	}
	if p <= 0 || p >= 1 {
		return nil, &InvalidProbabilityError{p}
	}
	if cmp == nil {
		return nil, &NilCmpError{}
	}
	return &SkipList[T]{
		sentinel:  &slnode[T]{forward: make([]*slnode[T], maxLevels)},
		cmp:       cmp,
		rng:       randv2.New(randv2.NewPCG(randv2.Uint64(), randv2.Uint64())),
		p:         p,
		level:     1,
		maxLevels: maxLevels,
	}, nil
}

// NewOrderedSkipList orders elements by <.
func NewOrderedSkipList[T constraints.Ordered](maxLevels int, p float64) (*SkipList[T], error) {
	return NewSkipList[T](maxLevels, p, Go_Structs.NaturalCmp[T])
}

// find returns, for every level, the last node strictly before v; these
// are the nodes whose forward pointers a splice must rewire.
func (u *SkipList[T]) find(v T) []*slnode[T] {
	update := make([]*slnode[T], u.maxLevels)
	cur := u.sentinel
	for i := u.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && u.cmp(cur.forward[i].v, v) < 0 {
			cur = cur.forward[i]
		}
		update[i] = cur
	}
	for i := u.level; i < u.maxLevels; i++ {
		update[i] = u.sentinel
	}
	return update
}

// randomLevel draws a node level: promote while a coin flip with
// probability p succeeds, capped at maxLevels.
func (u *SkipList[T]) randomLevel() int {
	lvl := 1
	for lvl < u.maxLevels && u.rng.Float64() < u.p {
		lvl++
	}
	return lvl
}

// Insert v. Returns false if an equal element is already present.
func (u *SkipList[T]) Insert(v T) bool {
	update := u.find(v)
	if c := update[0].forward[0]; c != nil && u.cmp(c.v, v) == 0 {
		return false
	}
	lvl := u.randomLevel()
	if lvl > u.level {
		u.level = lvl
	}
	n := &slnode[T]{v: v, forward: make([]*slnode[T], lvl)}
	for i := 0; i < lvl; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	u.sz++
	return true
}

// Remove the element equal to v. Returns false if none is present.
func (u *SkipList[T]) Remove(v T) bool {
	update := u.find(v)
	c := update[0].forward[0]
	if c == nil || u.cmp(c.v, v) != 0 {
		return false
	}
	for i := 0; i < u.level; i++ {
		if update[i].forward[i] != c {
			break //c takes part in no level above this one
		}
		update[i].forward[i] = c.forward[i]
	}
	for u.level > 1 && u.sentinel.forward[u.level-1] == nil {
		u.level--
	}
	u.sz--
	return true
}

// Search returns the stored element equal to v as a copy.
func (u *SkipList[T]) Search(v T) (T, bool) {
	cur := u.sentinel
	for i := u.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && u.cmp(cur.forward[i].v, v) < 0 {
			cur = cur.forward[i]
		}
	}
	if c := cur.forward[0]; c != nil && u.cmp(c.v, v) == 0 {
		return c.v, true
	}
	return *new(T), false
}

func (u *SkipList[T]) Has(v T) bool {
	_, has := u.Search(v)
	return has
}

func (u *SkipList[T]) Size() uint {
	return u.sz
}

// Levels currently holding at least one node.
func (u *SkipList[T]) Levels() int {
	return u.level
}

func (u *SkipList[T]) MaxLevels() int {
	return u.maxLevels
}

func (u *SkipList[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *SkipList[T]) Clear() {
	u.sentinel.forward = make([]*slnode[T], u.maxLevels)
	u.level, u.sz = 1, 0
}

// All iterates the level-0 chain, which yields every element in ascending
// comparator order. The list must not be modified during the iteration.
func (u *SkipList[T]) All() func() (T, bool) {
	cur := u.sentinel.forward[0]
	return func() (T, bool) {
		if cur == nil {
			return *new(T), false
		}
		v := cur.v
		cur = cur.forward[0]
		return v, true
	}
}
