// File: methods_adjacent.go
// Role: Tunnel lifecycle and neighborhood queries.
//
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lexicographically ascending.
package core

import "sort"

// AddEdge connects two existing vertices with an undirected tunnel.
//
// Adding a tunnel that already exists (in either orientation) is a no-op, so
// input formats that list every tunnel on both endpoints produce one edge.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to.
//   - ErrVertexNotFound if either endpoint is missing.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}
	if _, exists := g.adjacency[from][to]; exists {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether a tunnel joins from and to.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeCount returns the number of undirected tunnels.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
