package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyMaxDegreeCoverStar(t *testing.T) {
	graph := Graph{Vertices: 5, Edges: [][2]uint64{{1, 2}, {1, 3}, {1, 4}, {1, 5}}}

	cover, err := GreedyMaxDegreeCover(graph)

	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, cover)
}

func TestGreedyMaxDegreeCoverPath(t *testing.T) {
	// Path 1-2-3-4-5: vertices 2, 3 and 4 tie at first and the smallest one is taken
	graph := Graph{Vertices: 5, Edges: [][2]uint64{{1, 2}, {2, 3}, {3, 4}, {4, 5}}}

	cover, err := GreedyMaxDegreeCover(graph)

	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 4}, cover)
}

func TestGreedyEdgeCoverPath(t *testing.T) {
	graph := Graph{Vertices: 4, Edges: [][2]uint64{{1, 2}, {2, 3}, {3, 4}}}

	cover, err := GreedyEdgeCover(graph)

	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, cover)
}

func TestGreedyCoversSelfLoops(t *testing.T) {
	graph := Graph{Vertices: 3, Edges: [][2]uint64{{2, 2}}}

	assert.Equal(t, []uint64{2}, greedyCover(t, GreedyMaxDegreeCover, graph))
	assert.Equal(t, []uint64{2}, greedyCover(t, GreedyEdgeCover, graph))
}

func TestGreedyCoversEmptyGraph(t *testing.T) {
	graph := Graph{Vertices: 3}

	assert.Empty(t, greedyCover(t, GreedyMaxDegreeCover, graph))
	assert.Empty(t, greedyCover(t, GreedyEdgeCover, graph))
}

func TestGreedyCoversRejectOutOfRangeEndpoints(t *testing.T) {
	graphs := []Graph{
		{Vertices: 3, Edges: [][2]uint64{{1, 5}}},
		{Vertices: 3, Edges: [][2]uint64{{0, 2}}},
		{Vertices: 0, Edges: [][2]uint64{{1, 1}}},
	}

	for _, graph := range graphs {
		for _, greedy := range []func(Graph) ([]uint64, error){GreedyMaxDegreeCover, GreedyEdgeCover} {
			var (
				cover []uint64
				err   error
			)
			assert.NotPanics(t, func() { cover, err = greedy(graph) }, "graph %v", graph)
			assert.ErrorAs(t, err, &InvalidEncodingInputError{}, "graph %v", graph)
			assert.Nil(t, cover)
		}
	}
}

func TestGreedyCoversAreCovers(t *testing.T) {
	random := rand.New(rand.NewPCG(9, 10))

	for range 30 {
		graph := generateGraph(random, uint64(random.IntN(20)+1), random.IntN(40))

		for _, cover := range [][]uint64{greedyCover(t, GreedyMaxDegreeCover, graph), greedyCover(t, GreedyEdgeCover, graph)} {
			assert.True(t, VerifyCover(graph, cover, uint64(len(cover))), "graph %v cover %v", graph, cover)
		}
	}
}

func greedyCover(t *testing.T, greedy func(Graph) ([]uint64, error), graph Graph) []uint64 {
	t.Helper()
	cover, err := greedy(graph)
	require.NoError(t, err)
	return cover
}
