// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and RatedVertices() return IDs sorted lexicographically ascending.
package core

import "sort"

// AddVertex registers a valve with the given rate.
//
// Unlike a general-purpose graph, a valve is defined exactly once: a second
// AddVertex for the same ID returns ErrDuplicateVertex rather than being a
// silent no-op, because two conflicting rate definitions cannot be merged.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrNegativeRate if rate < 0.
//   - ErrDuplicateVertex if id is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, rate int) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if rate < 0 {
		return ErrNegativeRate
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}
	g.vertices[id] = &Vertex{ID: id, Rate: rate}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Rate returns the reward rate of the vertex with the given ID.
func (g *Graph) Rate(id string) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	return v.Rate, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// RatedVertices returns the IDs of vertices with a positive rate, sorted
// ascending. These are the only valves worth opening.
// Complexity: O(V·log V)
func (g *Graph) RatedVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id, v := range g.vertices {
		if v.Rate > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// TotalRate returns the sum of all vertex rates: the reward per tick with
// every valve open.
func (g *Graph) TotalRate() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, v := range g.vertices {
		total += v.Rate
	}

	return total
}
