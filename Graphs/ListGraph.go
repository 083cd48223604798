package Graphs

// edge half of an adjacency entry.
type edge[T comparable] struct {
	to     T
	weight int
}

// ListGraph stores one adjacency list per vertex, so neighbor iteration
// is proportional to the vertex's degree. The usual choice when the graph
// is sparse.
type ListGraph[T comparable] struct {
	adj      map[T][]edge[T]
	edges    uint
	directed bool
}

func NewListGraph[T comparable](directed bool) *ListGraph[T] {
	return &ListGraph[T]{adj: make(map[T][]edge[T]), directed: directed}
}

func (u *ListGraph[T]) AddVertex(v T) bool {
	if _, in := u.adj[v]; in {
		return false
	}
	u.adj[v] = nil
	return true
}

// setEdge updates a's entry for b in place, or appends one. Reports
// whether an entry existed.
func (u *ListGraph[T]) setEdge(a, b T, weight int) bool {
	for i := range u.adj[a] {
		if u.adj[a][i].to == b {
			u.adj[a][i].weight = weight
			return true
		}
	}
	u.adj[a] = append(u.adj[a], edge[T]{b, weight})
	return false
}

func (u *ListGraph[T]) AddEdge(a, b T, weight int) bool {
	if _, in := u.adj[a]; !in {
		return false
	}
	if _, in := u.adj[b]; !in {
		return false
	}
	existed := u.setEdge(a, b, weight)
	if !u.directed && a != b {
		u.setEdge(b, a, weight)
	}
	if !existed {
		u.edges++
	}
	return true
}

// dropEdge removes a's entry for b. Reports whether one existed.
func (u *ListGraph[T]) dropEdge(a, b T) bool {
	for i := range u.adj[a] {
		if u.adj[a][i].to == b {
			u.adj[a] = append(u.adj[a][:i], u.adj[a][i+1:]...)
			return true
		}
	}
	return false
}

func (u *ListGraph[T]) RemoveEdge(a, b T) bool {
	if !u.dropEdge(a, b) {
		return false
	}
	if !u.directed && a != b {
		u.dropEdge(b, a)
	}
	u.edges--
	return true
}

func (u *ListGraph[T]) RemoveVertex(v T) bool {
	if _, in := u.adj[v]; !in {
		return false
	}
	u.edges -= uint(len(u.adj[v]))
	delete(u.adj, v)
	for a := range u.adj {
		if u.dropEdge(a, v) && u.directed {
			u.edges--
		}
	}
	return true
}

func (u *ListGraph[T]) HasVertex(v T) bool {
	_, in := u.adj[v]
	return in
}

func (u *ListGraph[T]) Weight(a, b T) (int, bool) {
	for _, e := range u.adj[a] {
		if e.to == b {
			return e.weight, true
		}
	}
	return 0, false
}

func (u *ListGraph[T]) Order() uint {
	return uint(len(u.adj))
}

func (u *ListGraph[T]) Edges() uint {
	return u.edges
}

func (u *ListGraph[T]) neighbors(v T) []T {
	nb := make([]T, 0, len(u.adj[v]))
	for _, e := range u.adj[v] {
		nb = append(nb, e.to)
	}
	return nb
}

func (u *ListGraph[T]) BFS(start T) func() (T, bool) {
	_, in := u.adj[start]
	return bfsIter(start, in, u.Order(), u.neighbors)
}

func (u *ListGraph[T]) DFS(start T) func() (T, bool) {
	_, in := u.adj[start]
	return dfsIter(start, in, u.Order(), u.neighbors)
}

func (u *ListGraph[T]) Clear() {
	u.adj = make(map[T][]edge[T])
	u.edges = 0
}
