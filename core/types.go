// Package core defines the Graph and Vertex types of the valve network,
// the sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a vertex ID was defined more than once.
	ErrDuplicateVertex = errors.New("core: vertex already defined")

	// ErrNegativeRate indicates a vertex was given a rate below zero.
	ErrNegativeRate = errors.New("core: rate must be non-negative")

	// ErrLoopNotAllowed indicates a tunnel from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a valve in the network.
//
// ID uniquely identifies the valve; Rate is the reward released per tick
// once the valve is open. A zero Rate means the valve is never worth opening
// but may still be travelled through.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Rate is the per-tick reward contributed while the valve is open.
	Rate int
}

// Graph is the valve network.
//
// mu protects vertices, adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*Vertex             // vertex ID → Vertex
	adjacency map[string]map[string]struct{} // adjacency[a][b] present iff tunnel a–b
	edgeCount int                            // number of undirected tunnels
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}
