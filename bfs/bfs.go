// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// walker encapsulates mutable BFS state. The queue is a slice with a read
// cursor so dequeues do not reslice the backing array.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []string
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from startID.
//
// Every tunnel costs one hop. Returns ErrGraphNil or ErrStartVertexNotFound
// for invalid input, ErrOptionViolation for bad options, ErrNeighbors for
// graph failures, the context error on cancellation, or a wrapped OnVisit
// error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]string, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue records depth and parent for id and appends it to the queue.
// Depth doubles as the visited set.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[w.head]
		w.head++
		depth := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}
		if err := w.expand(id, depth); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor of id within MaxDepth.
func (w *walker) expand(id string, depth int) error {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
	}
	for _, nbr := range nbrs {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.enqueue(nbr, next, id)
	}

	return nil
}
