package pathfind

// frontierItem is a cell waiting in the frontier.
type frontierItem struct {
	idx  int // arena index
	dist int // distance at push time
	seq  int // discovery sequence, tie-breaker
}

// frontier is a min-heap of frontierItem ordered by dist, then seq.
// Decrease-key is lazy: an improved cell is pushed again and the stale
// entry is skipped when popped because the cell is already visited.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by distance and falls back to discovery order.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].seq < f[j].seq
}

// Swap exchanges two items.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends an item; called by container/heap.
func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

// Pop removes the last item; called by container/heap.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
