package model

// constraint families in emission order
var constraints = []func(state constraintState) [][]int64{
	rowCoverageConstraints,
	columnInjectivityConstraints,
	rowUniquenessConstraints,
	edgeCoverageConstraints,
}

// Encode reduces "does graph have a vertex cover of exactly coverSize vertices" to a CNF formula.
// It rejects inputs the reduction is not defined for with an InvalidEncodingInputError
func Encode(graph Graph, coverSize uint64) (Formula, error) {
	if err := graph.Validate(coverSize); err != nil {
		return Formula{}, err
	}
	return EncodeUnchecked(graph, coverSize), nil
}

// EncodeUnchecked performs the reduction without validating its input. The graph must have at least one
// vertex, coverSize must be positive and every edge endpoint must lie within 1..graph.Vertices
func EncodeUnchecked(graph Graph, coverSize uint64) Formula {
	state := constraintState{
		indexer:  newIndexer(graph.Vertices, coverSize),
		edges:    graph.Edges,
		vertices: graph.Vertices,
		rows:     coverSize,
	}

	return Formula{
		CoverSize: coverSize,
		Vertices:  graph.Vertices,
		Clauses:   buildClauses(constraints, state),
	}
}

// buildClauses runs every constraint family on its own goroutine and concatenates the results in the order the families were given
func buildClauses(constraints []func(state constraintState) [][]int64, state constraintState) [][]int64 {
	type result struct {
		position int
		clauses  [][]int64
	}

	constraintsChannel := make(chan result, len(constraints)) // Channel to collect constraints

	// Execute constraints functions on different goroutines to improve performance
	for position, constraint := range constraints {
		go func() {
			constraintsChannel <- result{position: position, clauses: constraint(state)}
		}()
	}

	// Collect generated constraints
	collected := make([][][]int64, len(constraints))
	total := 0
	for range constraints {
		result := <-constraintsChannel
		collected[result.position] = result.clauses
		total += len(result.clauses)
	}

	clauses := make([][]int64, 0, total)
	for _, family := range collected {
		clauses = append(clauses, family...)
	}
	return clauses
}
