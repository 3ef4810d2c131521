package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		var Vertices uint64 = uint64(rand.Intn(40) + 1)
		var Rows uint64 = uint64(rand.Intn(int(Vertices)) + 1)

		// Act
		indexer := newIndexer(Vertices, Rows)

		indices := make(map[uint64]bool, Vertices*Rows)
		for row := range Rows {
			for vertex := uint64(1); vertex <= Vertices; vertex++ {
				index := indexer.Index(row, vertex)
				indices[index] = true

				// Assert
				decodedRow, decodedVertex := indexer.Attributes(index)
				assert.Equal(t, row, decodedRow)
				assert.Equal(t, vertex, decodedVertex)
			}
		}

		// Assert
		assert.Equal(t, Vertices*Rows, indexer.Variables())
		assert.Len(t, indices, int(Vertices*Rows))
		for index := uint64(1); index <= Vertices*Rows; index++ {
			assert.True(t, indices[index], "index %v is not covered", index)
		}
	}
}

func TestIndexLayout(t *testing.T) {
	// Arrange
	indexer := newIndexer(5, 3)

	// Act & Assert
	assert.Equal(t, uint64(1), indexer.Index(0, 1))
	assert.Equal(t, uint64(5), indexer.Index(0, 5))
	assert.Equal(t, uint64(6), indexer.Index(1, 1))
	assert.Equal(t, uint64(15), indexer.Index(2, 5))
}
