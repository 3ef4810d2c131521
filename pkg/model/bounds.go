package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// MatchingLowerBound returns a lower bound on the size of any vertex cover of the graph.
//
// The bipartite double cover B holds a left and a right copy of every vertex, with u adjacent to v' whenever
// u and v are adjacent in the graph. A cover C of the graph yields the cover C ∪ C' of B, hence by König's theorem
// the largest matching ν(B) satisfies ν(B) <= 2|C| and every cover has at least ⌈ν(B)/2⌉ vertices.
func MatchingLowerBound(graph Graph) (uint64, error) {
	if len(graph.Edges) == 0 {
		return 0, nil
	}

	adjacent := make(map[[2]uint64]bool, 2*len(graph.Edges))
	for _, edge := range graph.Edges {
		adjacent[edge] = true
		adjacent[[2]uint64{edge[1], edge[0]}] = true
	}

	vertices := lo.Map(lo.RangeFrom(uint64(1), int(graph.Vertices)), func(vertex uint64, _ int) any { return vertex })
	neighbours := func(left, right any) (bool, error) {
		return adjacent[[2]uint64{left.(uint64), right.(uint64)}], nil
	}

	doubleCover, err := bipartitegraph.NewBipartiteGraph(vertices, vertices, neighbours)
	if err != nil {
		return 0, err
	}

	matching := uint64(len(doubleCover.LargestMatching()))
	return (matching + 1) / 2, nil
}
