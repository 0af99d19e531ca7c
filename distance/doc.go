// Package distance precomputes hop counts between every pair of valves.
//
// Build runs one breadth-first search (package bfs) per vertex and stores
// the result in a dense, read-only table. Because tunnels are undirected the
// table is symmetric, and the diagonal is zero. Build also checks that every
// valve with a positive rate can be reached from the designated start; an
// unreachable rated valve is reported as *UnreachableNodeError before any
// scheduling work begins.
//
// The Index is immutable after Build and safe for concurrent readers.
//
// Complexity: O(V·(V + E)) time, O(V²) memory.
package distance
