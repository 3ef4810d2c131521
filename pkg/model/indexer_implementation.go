package model

type indexerImplementation struct {
	vertices uint64
	rows     uint64
}

func (indexer *indexerImplementation) Index(row, vertex uint64) uint64 {
	return row*indexer.vertices + vertex
}

func (indexer *indexerImplementation) Attributes(index uint64) (row, vertex uint64) {
	index = index - 1
	row = index / indexer.vertices
	vertex = index%indexer.vertices + 1
	return row, vertex
}

func (indexer *indexerImplementation) Variables() uint64 {
	return indexer.vertices * indexer.rows
}
