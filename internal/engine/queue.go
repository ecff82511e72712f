package engine

import (
	"container/heap"

	"voxelengine/internal/world"
)

// genQueue orders chunks awaiting generation by priority, highest first.
// Equal priorities pop in insertion order. A coordinate may be pushed more
// than once after a priority refresh; the consumer drops stale entries.
type genQueue struct {
	items genHeap
	seq   int
}

type genItem struct {
	coord    world.ChunkCoord
	priority int
	seq      int
}

func newGenQueue() *genQueue {
	return &genQueue{}
}

func (q *genQueue) push(coord world.ChunkCoord, priority int) {
	q.seq++
	heap.Push(&q.items, genItem{coord: coord, priority: priority, seq: q.seq})
}

func (q *genQueue) pop() (genItem, bool) {
	if len(q.items) == 0 {
		return genItem{}, false
	}
	return heap.Pop(&q.items).(genItem), true
}

func (q *genQueue) len() int {
	return len(q.items)
}

type genHeap []genItem

func (h genHeap) Len() int { return len(h) }

func (h genHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h genHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *genHeap) Push(x any) { *h = append(*h, x.(genItem)) }

func (h *genHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
