package model

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/samber/lo"
)

// maxsatCoverer finds a minimum cover directly: every edge is a hard clause and leaving a vertex out is a soft one
type maxsatCoverer struct{}

func NewMaxSATCoverer() Coverer {
	return &maxsatCoverer{}
}

func (coverer *maxsatCoverer) Cover(graph Graph, coverSize uint64) ([]uint64, uint64, uint64, error) {
	if err := graph.Validate(coverSize); err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := graph.Vertices, uint64(len(graph.Edges))+graph.Vertices

	minimum, _, err := coverer.Minimum(graph)
	if err != nil {
		return nil, variables, clauses, err
	} else if uint64(len(minimum)) > coverSize {
		return nil, variables, clauses, nil
	}

	return padCover(graph, minimum, coverSize), variables, clauses, nil
}

func (coverer *maxsatCoverer) Minimum(graph Graph) ([]uint64, bool, error) {
	if err := ValidateGraph(graph); err != nil {
		return nil, false, err
	} else if len(graph.Edges) == 0 {
		return []uint64{}, true, nil
	}

	name := func(vertex uint64) string { return strconv.FormatUint(vertex, 10) }

	constraints := lo.Map(graph.Edges, func(edge [2]uint64, _ int) maxsat.Constr {
		// A self-loop yields a unit clause
		return maxsat.HardClause(lo.Uniq([]maxsat.Lit{maxsat.Var(name(edge[0])), maxsat.Var(name(edge[1]))})...)
	})
	for vertex := uint64(1); vertex <= graph.Vertices; vertex++ {
		constraints = append(constraints, maxsat.SoftClause(maxsat.Var(name(vertex)).Negation()))
	}

	model, _ := maxsat.New(constraints...).Solve()
	if model == nil {
		return nil, false, fmt.Errorf("maxsat found the edge constraints unsatisfiable")
	}

	cover := make([]uint64, 0)
	for vertex := uint64(1); vertex <= graph.Vertices; vertex++ {
		if model[name(vertex)] {
			cover = append(cover, vertex)
		}
	}
	return cover, true, nil
}

func (coverer *maxsatCoverer) Verify(graph Graph, cover []uint64, coverSize uint64) bool {
	return VerifyCover(graph, cover, coverSize)
}
