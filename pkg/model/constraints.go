package model

type constraintState struct {
	indexer indexer
	edges   [][2]uint64

	vertices,
	rows uint64
}

// Every row selects at least one vertex
func rowCoverageConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.rows)

	for row := range state.rows {
		clause := make([]int64, 0, state.vertices)
		for vertex := uint64(1); vertex <= state.vertices; vertex++ {
			clause = append(clause, int64(state.indexer.Index(row, vertex)))
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// No vertex is selected by two different rows
func columnInjectivityConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.vertices*pairs(state.rows))

	for vertex := uint64(1); vertex <= state.vertices; vertex++ {
		for p := range state.rows {
			for q := p + 1; q < state.rows; q++ {
				clauses = append(clauses, []int64{
					-int64(state.indexer.Index(p, vertex)),
					-int64(state.indexer.Index(q, vertex)),
				})
			}
		}
	}

	return clauses
}

// Every row selects at most one vertex
func rowUniquenessConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.rows*pairs(state.vertices))

	for row := range state.rows {
		for p := uint64(1); p <= state.vertices; p++ {
			for q := p + 1; q <= state.vertices; q++ {
				clauses = append(clauses, []int64{
					-int64(state.indexer.Index(row, p)),
					-int64(state.indexer.Index(row, q)),
				})
			}
		}
	}

	return clauses
}

// Every edge has at least one endpoint selected by some row. Literals are concatenated row by row and never deduplicated
func edgeCoverageConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, len(state.edges))

	for _, edge := range state.edges {
		clause := make([]int64, 0, 2*state.rows)
		for row := range state.rows {
			clause = append(clause,
				int64(state.indexer.Index(row, edge[0])),
				int64(state.indexer.Index(row, edge[1])),
			)
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// pairs returns the number of unordered pairs out of count elements
func pairs(count uint64) uint64 {
	if count < 2 {
		return 0
	}
	return count * (count - 1) / 2
}
