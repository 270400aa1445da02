// Package astar implements the generic shortest-path search VSRTL's
// router uses to connect routing regions, grounded on
// original_source/graphics/eda/algorithms/vsrtl_astar.h. The C++ source's
// linear "find lowest fScore in openSet" scan is strengthened to a
// container/heap binary heap: no pathfinding library appears anywhere
// in the retrieval pack, so this is the justified stdlib exception.
package astar

import "container/heap"

// Node is any graph node the search can run over. T is typically a
// pointer type so identity comparison (map keys) works as expected.
type Node interface {
	comparable
}

// Search finds the lowest-cost path from start to goal over a graph
// described by adjacent (neighbors of a node, possibly including nils
// which are skipped), valid (whether a prospective edge may be taken),
// and heuristic, which serves both as the cost of an edge between two
// neighbors and as the estimate from a node to goal. It returns the
// path from start to goal inclusive, or nil if no path exists.
func Search[T Node](start, goal T, adjacent func(T) []T, valid func(from, to T) bool, heuristic func(a, b T) int) []T {
	open := &nodeHeap[T]{}
	heap.Init(open)
	heap.Push(open, &scoredNode[T]{node: start, fScore: heuristic(start, goal)})

	inOpen := map[T]bool{start: true}
	closed := map[T]bool{}
	cameFrom := map[T]T{}
	gScore := map[T]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(*scoredNode[T]).node
		if !inOpen[current] {
			// Stale heap entry from a since-improved gScore; skip it.
			continue
		}
		delete(inOpen, current)

		if current == goal {
			return reconstructPath(cameFrom, current)
		}
		closed[current] = true

		var zero T
		for _, neighbor := range adjacent(current) {
			if neighbor == zero {
				continue
			}
			if !valid(current, neighbor) {
				continue
			}
			if closed[neighbor] {
				continue
			}

			tentative := gScore[current] + heuristic(current, neighbor)
			if existing, ok := gScore[neighbor]; ok && tentative >= existing {
				continue
			}

			cameFrom[neighbor] = current
			gScore[neighbor] = tentative
			f := tentative + heuristic(neighbor, goal)
			heap.Push(open, &scoredNode[T]{node: neighbor, fScore: f})
			inOpen[neighbor] = true
		}
	}
	return nil
}

func reconstructPath[T Node](cameFrom map[T]T, current T) []T {
	path := []T{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append([]T{current}, path...)
	}
	return path
}

type scoredNode[T Node] struct {
	node   T
	fScore int
}

type nodeHeap[T Node] []*scoredNode[T]

func (h nodeHeap[T]) Len() int            { return len(h) }
func (h nodeHeap[T]) Less(i, j int) bool  { return h[i].fScore < h[j].fScore }
func (h nodeHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[T]) Push(x interface{}) { *h = append(*h, x.(*scoredNode[T])) }
func (h *nodeHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
