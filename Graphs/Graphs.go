package Graphs

import (
	"github.com/s-d-ferro/go-structs/Queues"
	"github.com/s-d-ferro/go-structs/Stacks"
)

// Graph over vertices of a comparable type; edges carry an int weight.
// Whether edges are directed is chosen at creation and fixed. The three
// implementations differ only in storage: ListGraph keeps per-vertex
// adjacency lists, EdgeGraph one flat edge list, MatrixGraph a weight
// matrix over a fixed vertex capacity.
// Operations follow the module conventions: a missing vertex/edge makes
// the operation fail with false or (zero, false), never panic. No
// implementation is safe for concurrent use.
type Graph[T comparable] interface {
	//AddVertex v. Returns false when v is already present (or, for
	//MatrixGraph, when the vertex capacity is exhausted).
	AddVertex(v T) bool
	//AddEdge from a to b. Both vertices must already be present. Adding
	//an existing edge replaces its weight. On an undirected graph the
	//edge is reachable from both ends.
	AddEdge(a, b T, weight int) bool
	//RemoveVertex v along with every edge touching it.
	RemoveVertex(v T) bool
	RemoveEdge(a, b T) bool
	HasVertex(v T) bool
	//Weight of the edge from a to b.
	Weight(a, b T) (int, bool)
	//Order is the number of vertices.
	Order() uint
	//Edges is the number of edges; an undirected edge counts once.
	Edges() uint
	//BFS returns a closure iterating the vertices reachable from start in
	//breadth-first order: val, valid = f(), exhausted when valid==false.
	//An absent start yields an exhausted iterator. The graph must not be
	//modified during the iteration.
	BFS(start T) func() (T, bool)
	//DFS is like BFS in depth-first order.
	DFS(start T) func() (T, bool)
	Clear()
}

var _ Graph[int] = (*ListGraph[int])(nil)
var _ Graph[int] = (*EdgeGraph[int])(nil)
var _ Graph[int] = (*MatrixGraph[int])(nil)

// bfsIter drives a breadth-first walk over neighbors with a queue.
func bfsIter[T comparable](start T, has bool, order uint, neighbors func(T) []T) func() (T, bool) {
	if !has {
		return func() (T, bool) { return *new(T), false }
	}
	visited := make(map[T]bool, order)
	visited[start] = true
	q := Queues.NewArrayQueue[T](order)
	q.Push(start)
	return func() (T, bool) {
		v, err := q.Pop()
		if err != nil {
			return *new(T), false
		}
		for _, w := range neighbors(v) {
			if !visited[w] {
				visited[w] = true
				q.Push(w)
			}
		}
		return v, true
	}
}

// dfsIter drives a depth-first walk over neighbors with a stack. Vertices
// are marked when popped, so a vertex pushed twice is emitted once.
func dfsIter[T comparable](start T, has bool, order uint, neighbors func(T) []T) func() (T, bool) {
	if !has {
		return func() (T, bool) { return *new(T), false }
	}
	visited := make(map[T]bool, order)
	st := Stacks.New[T](order)
	st.Push(start)
	return func() (T, bool) {
		for {
			v, err := st.Pop()
			if err != nil {
				return *new(T), false
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			nb := neighbors(v)
			for i := len(nb) - 1; i >= 0; i-- { //reversed so the first neighbor pops first
				if !visited[nb[i]] {
					st.Push(nb[i])
				}
			}
			return v, true
		}
	}
}
