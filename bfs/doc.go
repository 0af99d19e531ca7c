// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports an OnVisit hook (may abort with an error), neighbor filtering
//     via WithFilterNeighbor, and a MaxDepth limit (d>0) or explicit
//     "no limit" (d==0).
//
// Why
//
//	Every tunnel in the valve network costs exactly one tick, so BFS depth is
//	the travel time between two valves. Package distance runs one BFS per
//	vertex to build its all-pairs hop table.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "AA",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - ctx.Err()               on cancellation.
//   - Wrapped OnVisit errors.
package bfs
