package graph

import (
	"container/heap"
	"iter"
)

type item[V any] struct {
	g   *Graph[V]
	seq int
}

// queue is a min-heap on (vertex count descending, label groups, insertion).
type queue[V any] []item[V]

func (q queue[V]) Len() int { return len(q) }

func (q queue[V]) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.g.NumVertices() != b.g.NumVertices() {
		return a.g.Less(b.g)
	}
	if c := a.g.compareLabels(b.g); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (q queue[V]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue[V]) Push(x any) { *q = append(*q, x.(item[V])) }

func (q *queue[V]) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// AllOrders yields the vertex orders reachable from g by removing cycle
// edges, finest first. Each queued graph is reduced; an acyclic one yields
// its order, otherwise every way of breaking one of its cycles is queued.
//
// With onlyMax, the search stops once the next queued graph has fewer
// vertices than the first order yielded. g itself is not modified.
func AllOrders[V any](g *Graph[V], onlyMax bool) iter.Seq[[][]V] {
	return func(yield func([][]V) bool) {
		start := g.Clone()
		start.Reduce()
		q := &queue[V]{{g: start}}
		seq := 1
		best := -1
		for q.Len() > 0 {
			if onlyMax && best >= 0 && (*q)[0].g.NumVertices() < best {
				return
			}
			cur := heap.Pop(q).(item[V]).g
			cycle, found, _ := cur.FindCycle()
			if !found {
				if best < 0 {
					best = cur.NumVertices()
				}
				if !yield(cur.order()) {
					return
				}
				continue
			}
			for child := range cur.BreakCycleInAllWays(cycle) {
				child.Reduce()
				heap.Push(q, item[V]{g: child, seq: seq})
				seq++
			}
		}
	}
}

// MaximalOrder returns the first order of [AllOrders], the one with the
// most groups.
func MaximalOrder[V any](g *Graph[V]) [][]V {
	for order := range AllOrders(g, true) {
		return order
	}
	return nil
}
