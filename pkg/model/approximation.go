package model

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// GreedyMaxDegreeCover repeatedly adds the vertex covering the most uncovered edges (ties go to the smallest vertex)
func GreedyMaxDegreeCover(graph Graph) ([]uint64, error) {
	if err := ValidateGraph(graph); err != nil {
		return nil, err
	}
	remaining := adjacencySets(graph)
	cover := mapset.NewThreadUnsafeSet[uint64]()

	for len(remaining) > 0 {
		var selected uint64
		degree := 0
		for vertex := uint64(1); vertex <= graph.Vertices; vertex++ {
			if neighbours, ok := remaining[vertex]; ok && neighbours.Cardinality() > degree {
				selected, degree = vertex, neighbours.Cardinality()
			}
		}

		cover.Add(selected)
		removeVertex(remaining, selected)
	}

	return sortedSlice(cover), nil
}

// GreedyEdgeCover repeatedly picks the uncovered edge whose endpoints cover the most uncovered edges and adds both endpoints
func GreedyEdgeCover(graph Graph) ([]uint64, error) {
	if err := ValidateGraph(graph); err != nil {
		return nil, err
	}
	remaining := adjacencySets(graph)
	cover := mapset.NewThreadUnsafeSet[uint64]()

	for len(remaining) > 0 {
		var selected [2]uint64
		highest := -1
		for _, edge := range graph.Edges {
			if _, ok := remaining[edge[0]]; !ok || !remaining[edge[0]].Contains(edge[1]) {
				continue // Already covered
			}

			degree := remaining[edge[0]].Cardinality()
			if edge[0] != edge[1] {
				degree += remaining[edge[1]].Cardinality()
			}
			if degree > highest {
				selected, highest = edge, degree
			}
		}

		cover.Add(selected[0])
		cover.Add(selected[1])
		removeVertex(remaining, selected[0])
		removeVertex(remaining, selected[1])
	}

	return sortedSlice(cover), nil
}

// adjacencySets maps every non-isolated vertex to the set of its neighbours
func adjacencySets(graph Graph) map[uint64]mapset.Set[uint64] {
	sets := make(map[uint64]mapset.Set[uint64])
	for vertex, neighbours := range graph.adjacency() {
		if len(neighbours) > 0 {
			sets[uint64(vertex)] = mapset.NewThreadUnsafeSet(neighbours...)
		}
	}
	return sets
}

// removeVertex deletes every edge incident to vertex, dropping vertices left without edges
func removeVertex(sets map[uint64]mapset.Set[uint64], vertex uint64) {
	neighbours, ok := sets[vertex]
	if !ok {
		return
	}
	delete(sets, vertex)

	for neighbour := range neighbours.Iter() {
		if set, ok := sets[neighbour]; ok {
			set.Remove(vertex)
			if set.Cardinality() == 0 {
				delete(sets, neighbour)
			}
		}
	}
}

func sortedSlice(set mapset.Set[uint64]) []uint64 {
	values := set.ToSlice()
	slices.Sort(values)
	return values
}
