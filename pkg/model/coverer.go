package model

type Coverer interface {
	// Returns a vertex cover of exactly coverSize vertices, or nil if there is none (a valid output where err shall be nil)
	Cover(
		graph Graph,
		coverSize uint64,
	) (cover []uint64, variables uint64, clauses uint64, err error)

	// Returns the smallest vertex cover found. optimal is false when the search stopped before proving minimality
	Minimum(
		graph Graph,
	) (cover []uint64, optimal bool, err error)

	Verify(
		graph Graph,
		cover []uint64,
		coverSize uint64,
	) bool
}
