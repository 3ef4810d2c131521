package model

import "fmt"

// Graph is an undirected graph over the vertices 1..Vertices. Duplicate edges and self-loops are allowed
type Graph struct {
	Vertices uint64
	Edges    [][2]uint64
}

// InvalidEncodingInputError reports a graph and cover size the encoder must not be invoked with
type InvalidEncodingInputError struct {
	Reason string
}

func (err InvalidEncodingInputError) Error() string {
	return fmt.Sprintf("invalid encoding input: %v", err.Reason)
}

// Validate checks the preconditions of the encoding: at least one vertex, 1 <= coverSize <= Vertices and every edge endpoint within 1..Vertices
func (graph Graph) Validate(coverSize uint64) error {
	if graph.Vertices == 0 {
		return InvalidEncodingInputError{Reason: "the graph must have at least one vertex"}
	} else if coverSize == 0 {
		return InvalidEncodingInputError{Reason: "the cover size must be positive"}
	} else if coverSize > graph.Vertices {
		return InvalidEncodingInputError{Reason: fmt.Sprintf("the cover size %v exceeds the number of vertices %v", coverSize, graph.Vertices)}
	}

	for _, edge := range graph.Edges {
		if edge[0] < 1 || edge[0] > graph.Vertices || edge[1] < 1 || edge[1] > graph.Vertices {
			return InvalidEncodingInputError{Reason: fmt.Sprintf("edge <%v,%v> references a vertex outside 1..%v", edge[0], edge[1], graph.Vertices)}
		}
	}
	return nil
}

// adjacency returns the neighbours of every vertex (index 0 is unused)
func (graph Graph) adjacency() [][]uint64 {
	neighbours := make([][]uint64, graph.Vertices+1)
	for _, edge := range graph.Edges {
		neighbours[edge[0]] = append(neighbours[edge[0]], edge[1])
		if edge[0] != edge[1] {
			neighbours[edge[1]] = append(neighbours[edge[1]], edge[0])
		}
	}
	return neighbours
}
