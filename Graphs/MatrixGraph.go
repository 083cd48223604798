package Graphs

import (
	Go_Structs "github.com/s-d-ferro/go-structs"
)

// MatrixGraph is an adjacency-matrix graph over a fixed vertex capacity.
// Edge queries are O(1); neighbor enumeration is a row scan. AddVertex
// fails once every slot is taken.
type MatrixGraph[T comparable] struct {
	vertices []T
	used     []bool
	weight   [][]int
	present  [][]bool
	sz       uint
	edges    uint
	directed bool
}

// NewMatrixGraph returns a graph that can hold at most capacity vertices.
func NewMatrixGraph[T comparable](capacity int, directed bool) (*MatrixGraph[T], error) {
	if capacity <= 0 {
		return nil, &Go_Structs.InvalidSizeError{Size: capacity}
	}
	u := &MatrixGraph[T]{
		vertices: make([]T, capacity),
		used:     make([]bool, capacity),
		weight:   make([][]int, capacity),
		present:  make([][]bool, capacity),
		directed: directed,
	}
	for i := range u.weight {
		u.weight[i] = make([]int, capacity)
		u.present[i] = make([]bool, capacity)
	}
	return u, nil
}

func (u *MatrixGraph[T]) indexOf(v T) int {
	for i := range u.vertices {
		if u.used[i] && u.vertices[i] == v {
			return i
		}
	}
	return -1
}

func (u *MatrixGraph[T]) AddVertex(v T) bool {
	if u.indexOf(v) >= 0 {
		return false
	}
	for i := range u.used {
		if !u.used[i] {
			u.used[i] = true
			u.vertices[i] = v
			u.sz++
			return true
		}
	}
	return false
}

func (u *MatrixGraph[T]) AddEdge(a, b T, weight int) bool {
	i, j := u.indexOf(a), u.indexOf(b)
	if i < 0 || j < 0 {
		return false
	}
	if !u.present[i][j] {
		u.edges++
	}
	u.present[i][j] = true
	u.weight[i][j] = weight
	if !u.directed {
		u.present[j][i] = true
		u.weight[j][i] = weight
	}
	return true
}

func (u *MatrixGraph[T]) RemoveEdge(a, b T) bool {
	i, j := u.indexOf(a), u.indexOf(b)
	if i < 0 || j < 0 || !u.present[i][j] {
		return false
	}
	u.present[i][j] = false
	if !u.directed {
		u.present[j][i] = false
	}
	u.edges--
	return true
}

func (u *MatrixGraph[T]) RemoveVertex(v T) bool {
	i := u.indexOf(v)
	if i < 0 {
		return false
	}
	for j := range u.present {
		if u.present[i][j] {
			u.present[i][j] = false
			u.edges--
		}
		if u.present[j][i] {
			u.present[j][i] = false
			// an undirected or self edge was already counted above
			if u.directed && j != i {
				u.edges--
			}
		}
	}
	u.used[i] = false
	u.vertices[i] = *new(T)
	u.sz--
	return true
}

func (u *MatrixGraph[T]) HasVertex(v T) bool {
	return u.indexOf(v) >= 0
}

func (u *MatrixGraph[T]) Weight(a, b T) (int, bool) {
	i, j := u.indexOf(a), u.indexOf(b)
	if i < 0 || j < 0 || !u.present[i][j] {
		return 0, false
	}
	return u.weight[i][j], true
}

func (u *MatrixGraph[T]) Order() uint {
	return u.sz
}

func (u *MatrixGraph[T]) Edges() uint {
	return u.edges
}

// Capacity returns the fixed vertex capacity set at construction.
func (u *MatrixGraph[T]) Capacity() uint {
	return uint(len(u.vertices))
}

func (u *MatrixGraph[T]) neighbors(v T) []T {
	i := u.indexOf(v)
	if i < 0 {
		return nil
	}
	var nb []T
	for j := range u.present[i] {
		if u.present[i][j] {
			nb = append(nb, u.vertices[j])
		}
	}
	return nb
}

func (u *MatrixGraph[T]) BFS(start T) func() (T, bool) {
	return bfsIter(start, u.indexOf(start) >= 0, u.sz, u.neighbors)
}

func (u *MatrixGraph[T]) DFS(start T) func() (T, bool) {
	return dfsIter(start, u.indexOf(start) >= 0, u.sz, u.neighbors)
}

func (u *MatrixGraph[T]) Clear() {
	for i := range u.used {
		u.used[i] = false
		u.vertices[i] = *new(T)
		clear(u.present[i])
	}
	u.sz, u.edges = 0, 0
}
