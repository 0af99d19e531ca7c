package distance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// unreachable marks a pair with no connecting path in hops.
const unreachable = -1

// Index is the all-pairs hop table.
type Index struct {
	start string
	ids   []string       // position → vertex ID, sorted
	pos   map[string]int // vertex ID → position
	hops  []int          // hops[i*n+j]
}

// Build computes the hop table for g and validates reachability of every
// rated valve from start.
//
// Errors:
//   - ErrGraphNil, ErrStartNotFound for invalid input.
//   - *UnreachableNodeError if a rated valve cannot be reached from start.
//   - ctx.Err() if ctx is cancelled mid-build.
func Build(ctx context.Context, g *core.Graph, start string) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ids := g.Vertices()
	n := len(ids)
	idx := &Index{
		start: start,
		ids:   ids,
		pos:   make(map[string]int, n),
		hops:  make([]int, n*n),
	}
	for i, id := range ids {
		idx.pos[id] = i
	}
	for i := range idx.hops {
		idx.hops[i] = unreachable
	}

	for i, from := range ids {
		res, err := bfs.BFS(g, from, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("distance: bfs from %q: %w", from, err)
		}
		for to, d := range res.Depth {
			j := idx.pos[to]
			idx.hops[i*n+j] = d
			idx.hops[j*n+i] = d
		}
	}

	for _, id := range g.RatedVertices() {
		if _, ok := idx.Between(start, id); !ok {
			return nil, &UnreachableNodeError{Start: start, Node: id}
		}
	}

	return idx, nil
}

// Start returns the valve the index was validated against.
func (x *Index) Start() string { return x.start }

// Len returns the number of vertices covered.
func (x *Index) Len() int { return len(x.ids) }

// IDs returns a copy of the covered vertex IDs in sorted order.
func (x *Index) IDs() []string {
	out := make([]string, len(x.ids))
	copy(out, x.ids)

	return out
}

// Between returns the hop count from a to b. ok is false when either vertex
// is unknown or no path exists.
func (x *Index) Between(a, b string) (int, bool) {
	i, ok := x.pos[a]
	if !ok {
		return 0, false
	}
	j, ok := x.pos[b]
	if !ok {
		return 0, false
	}
	d := x.hops[i*len(x.ids)+j]
	if d == unreachable {
		return 0, false
	}

	return d, true
}
