package model

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// VerifyCover checks that cover holds exactly coverSize distinct vertices of the graph and touches every edge
func VerifyCover(graph Graph, cover []uint64, coverSize uint64) bool {
	selected := mapset.NewThreadUnsafeSet(cover...)
	if uint64(len(cover)) != coverSize || selected.Cardinality() != len(cover) {
		return false
	}

	for vertex := range selected.Iter() {
		if vertex < 1 || vertex > graph.Vertices {
			return false
		}
	}

	for _, edge := range graph.Edges {
		if !selected.Contains(edge[0]) && !selected.Contains(edge[1]) {
			return false
		}
	}
	return true
}

// ValidateGraph checks the graph alone, regardless of any cover size: edge endpoints must lie within 1..Vertices.
// The graph without vertices nor edges is valid
func ValidateGraph(graph Graph) error {
	if graph.Vertices == 0 && len(graph.Edges) == 0 {
		return nil
	}
	return graph.Validate(1)
}

// padCover completes a cover with the smallest unused vertices until it holds coverSize vertices.
// Any superset of a vertex cover is a vertex cover
func padCover(graph Graph, cover []uint64, coverSize uint64) []uint64 {
	selected := mapset.NewThreadUnsafeSet(cover...)
	for vertex := uint64(1); vertex <= graph.Vertices && uint64(selected.Cardinality()) < coverSize; vertex++ {
		selected.Add(vertex)
	}
	return sortedSlice(selected)
}
