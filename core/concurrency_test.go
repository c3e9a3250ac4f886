// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavewalk/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every arc appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("v%d", id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersOnFrozenGraph runs many readers against a frozen graph.
func TestConcurrentReadersOnFrozenGraph(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge("Hub", fmt.Sprintf("n%d", i))
		require.NoError(t, err)
	}
	g.Freeze()

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			ids, err := g.NeighborIDs("Hub")
			require.NoError(t, err)
			require.Len(t, ids, 50)
			require.Len(t, g.AdjacencyList(), 51)
		}()
	}
	wg.Wait()
}
