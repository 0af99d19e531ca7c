// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/core"
)

// TestConcurrentAddEdge ensures concurrent tunnel insertion from a hub is safe
// and every spoke ends up adjacent to the hub exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex("HUB", 0))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%03d", i), i))
	}

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		id := fmt.Sprintf("V%03d", i)
		// both orientations race on the same tunnel
		go func() {
			defer wg.Done()
			require.NoError(t, g.AddEdge("HUB", id))
		}()
		go func() {
			defer wg.Done()
			require.NoError(t, g.AddEdge(id, "HUB"))
		}()
	}
	wg.Wait()

	nbrs, err := g.NeighborIDs("HUB")
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
}
