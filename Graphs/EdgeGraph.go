package Graphs

// arc is one entry of the flat edge list.
type arc[T comparable] struct {
	from, to T
	weight   int
}

// EdgeGraph stores a plain vertex list and a flat edge list; every lookup
// is a linear scan. The cheapest representation to build and iterate
// whole, at the cost of O(E) per-edge queries.
type EdgeGraph[T comparable] struct {
	vertices []T
	arcs     []arc[T]
	directed bool
}

func NewEdgeGraph[T comparable](directed bool) *EdgeGraph[T] {
	return &EdgeGraph[T]{directed: directed}
}

// matches reports whether stored arc a connects from->to in this graph's
// directedness.
func (u *EdgeGraph[T]) matches(a arc[T], from, to T) bool {
	if a.from == from && a.to == to {
		return true
	}
	return !u.directed && a.from == to && a.to == from
}

func (u *EdgeGraph[T]) indexOf(v T) int {
	for i := range u.vertices {
		if u.vertices[i] == v {
			return i
		}
	}
	return -1
}

func (u *EdgeGraph[T]) AddVertex(v T) bool {
	if u.indexOf(v) >= 0 {
		return false
	}
	u.vertices = append(u.vertices, v)
	return true
}

func (u *EdgeGraph[T]) AddEdge(a, b T, weight int) bool {
	if u.indexOf(a) < 0 || u.indexOf(b) < 0 {
		return false
	}
	for i := range u.arcs {
		if u.matches(u.arcs[i], a, b) {
			u.arcs[i].weight = weight
			return true
		}
	}
	u.arcs = append(u.arcs, arc[T]{a, b, weight})
	return true
}

func (u *EdgeGraph[T]) RemoveEdge(a, b T) bool {
	for i := range u.arcs {
		if u.matches(u.arcs[i], a, b) {
			u.arcs = append(u.arcs[:i], u.arcs[i+1:]...)
			return true
		}
	}
	return false
}

func (u *EdgeGraph[T]) RemoveVertex(v T) bool {
	i := u.indexOf(v)
	if i < 0 {
		return false
	}
	u.vertices = append(u.vertices[:i], u.vertices[i+1:]...)
	kept := u.arcs[:0]
	for _, a := range u.arcs {
		if a.from != v && a.to != v {
			kept = append(kept, a)
		}
	}
	u.arcs = kept
	return true
}

func (u *EdgeGraph[T]) HasVertex(v T) bool {
	return u.indexOf(v) >= 0
}

func (u *EdgeGraph[T]) Weight(a, b T) (int, bool) {
	for _, e := range u.arcs {
		if u.matches(e, a, b) {
			return e.weight, true
		}
	}
	return 0, false
}

func (u *EdgeGraph[T]) Order() uint {
	return uint(len(u.vertices))
}

func (u *EdgeGraph[T]) Edges() uint {
	return uint(len(u.arcs))
}

func (u *EdgeGraph[T]) neighbors(v T) []T {
	var nb []T
	for _, a := range u.arcs {
		if a.from == v {
			nb = append(nb, a.to)
		} else if !u.directed && a.to == v {
			nb = append(nb, a.from)
		}
	}
	return nb
}

func (u *EdgeGraph[T]) BFS(start T) func() (T, bool) {
	return bfsIter(start, u.indexOf(start) >= 0, u.Order(), u.neighbors)
}

func (u *EdgeGraph[T]) DFS(start T) func() (T, bool) {
	return dfsIter(start, u.indexOf(start) >= 0, u.Order(), u.neighbors)
}

func (u *EdgeGraph[T]) Clear() {
	u.vertices, u.arcs = nil, nil
}
