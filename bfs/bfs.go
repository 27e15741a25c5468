package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Neighborer
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// The start vertex is always enqueued, even when a shared visited set
// already marks it.
func BFS(g Neighborer, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrStartVertexNotFound, start, n)
	}
	visited := o.Visited
	if visited == nil {
		visited = make([]bool, n)
	} else if len(visited) != n {
		return nil, fmt.Errorf("%w: visited set has %d entries for %d vertices", ErrOptionViolation, len(visited), n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res:     &BFSResult{},
	}
	if !o.OrderOnly {
		w.res.Depth = make(map[int]int)
		w.res.Parent = make(map[int]int)
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its depth and
// parent (parent < 0 for the root) unless OrderOnly, and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	if !w.opts.OrderOnly {
		w.res.Depth[id] = d
		if parent >= 0 {
			w.res.Parent[id] = parent
		}
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the next item by advancing the head index, so the queue
// backing array is reused instead of resliced, and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// unseen neighbor in the order the graph reports them.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}
