// Package core provides the in-memory valve network: a thread-safe,
// undirected graph whose vertices carry a non-negative reward rate.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are valves, identified by a unique non-empty ID and carrying
//     a flow Rate (units released per tick once the valve is open).
//   - Edges are tunnels. They are undirected, unweighted (every tunnel costs
//     one tick to traverse) and idempotent: a tunnel listed on both of its
//     endpoints is stored once.
//   - Self-tunnels are rejected (ErrLoopNotAllowed).
//
// Determinism:
//
//	Vertices(), RatedVertices() and NeighborIDs() return IDs sorted
//	lexicographically, so every algorithm built on top of the graph
//	(bfs, distance, schedule) iterates in a reproducible order.
//
// Concurrency:
//
//	A single sync.RWMutex guards the vertex catalog and the adjacency sets.
//	Mutations take the write lock, queries the read lock. Once a graph has
//	been built (typically by package parse) it is only ever read.
//
// Core Methods:
//
//	AddVertex(id string, rate int) error   // O(1)
//	AddEdge(from, to string) error         // O(1), both endpoints must exist
//	HasVertex(id string) bool              // O(1)
//	Vertex(id string) (Vertex, error)      // O(1), value copy
//	Rate(id string) (int, error)           // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Vertices() []string                    // O(V·log V)
//	RatedVertices() []string               // O(V·log V), rate > 0 only
//	VertexCount(), EdgeCount(), TotalRate()
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrDuplicateVertex – vertex defined twice
//	ErrNegativeRate    – rate below zero
//	ErrLoopNotAllowed  – tunnel from a valve to itself
package core
