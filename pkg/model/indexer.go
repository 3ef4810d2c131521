package model

// indexer gives a unique variable to every (row, vertex) pair of the cover matrix and vice versa.
// Rows are 0-indexed and vertices 1-indexed, the variables span 1..rows*vertices
type indexer interface {
	// Returns the variable stating that the row selects the vertex
	Index(row, vertex uint64) uint64
	// Returns the (row, vertex) pair the variable stands for
	Attributes(index uint64) (row uint64, vertex uint64)
	// Returns the number of variables
	Variables() uint64
}

func newIndexer(vertices, rows uint64) indexer {
	return &indexerImplementation{
		vertices: vertices,
		rows:     rows,
	}
}
