package model

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limaJavier/vertexcover/pkg/sat"
)

type satCoverer struct {
	solver  sat.SATSolver
	timeout time.Duration
}

// NewSATCoverer builds covers through the reduction to SAT. timeout bounds every solver call of the minimum search, zero means no bound
func NewSATCoverer(solver sat.SATSolver, timeout time.Duration) Coverer {
	return &satCoverer{
		solver:  solver,
		timeout: timeout,
	}
}

func (coverer *satCoverer) Cover(graph Graph, coverSize uint64) ([]uint64, uint64, uint64, error) {
	return coverer.cover(context.Background(), graph, coverSize)
}

// cover hands ctx to solvers able to stop on it, others run to completion
func (coverer *satCoverer) cover(ctx context.Context, graph Graph, coverSize uint64) ([]uint64, uint64, uint64, error) {
	//** Build SAT instance
	formula, err := Encode(graph, coverSize)
	if err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := formula.Variables(), uint64(len(formula.Clauses))

	//** Solve SAT instance
	var solution sat.SATSolution
	if solver, ok := coverer.solver.(sat.ContextSATSolver); ok {
		solution, err = solver.SolveContext(ctx, formula.SAT())
	} else {
		solution, err = coverer.solver.Solve(formula.SAT())
	}
	if err != nil {
		return nil, variables, clauses, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, variables, clauses, nil
	}

	return formula.Cover(solution), variables, clauses, nil
}

// Minimum descends from the greedy cover size towards the matching lower bound until the formula becomes unsatisfiable.
// No cover of size k implies none smaller exists, since padding a smaller cover yields one of size k
func (coverer *satCoverer) Minimum(graph Graph) ([]uint64, bool, error) {
	if err := ValidateGraph(graph); err != nil {
		return nil, false, err
	} else if len(graph.Edges) == 0 {
		return []uint64{}, true, nil
	}

	best, err := GreedyMaxDegreeCover(graph)
	if err != nil {
		return nil, false, err
	}
	lowerBound, err := MatchingLowerBound(graph)
	if err != nil {
		return nil, false, err
	}
	lowerBound = max(lowerBound, 1)

	for coverSize := uint64(len(best)) - 1; coverSize >= lowerBound; coverSize-- {
		cover, finished, err := coverer.attempt(graph, coverSize)
		if err != nil {
			return nil, false, err
		} else if !finished {
			log.Printf("solver timed out after %v with cover size %v, returning a cover of size %v", coverer.timeout, coverSize, len(best))
			return best, false, nil
		} else if cover == nil {
			break
		}
		best = cover
	}

	return best, true, nil
}

func (coverer *satCoverer) Verify(graph Graph, cover []uint64, coverSize uint64) bool {
	return VerifyCover(graph, cover, coverSize)
}

// attempt runs Cover bounded by the coverer's timeout. finished is false if the timeout expired first.
// On timeout the solve is cancelled and awaited, unless the solver cannot be interrupted
func (coverer *satCoverer) attempt(graph Graph, coverSize uint64) (cover []uint64, finished bool, err error) {
	type outcome struct {
		cover []uint64
		err   error
	}

	ctx := context.Background()
	if coverer.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, coverer.timeout)
		defer cancel()
	}

	outcomes := make(chan outcome, 1) // Buffered so an abandoned attempt does not block forever
	go func() {
		cover, _, _, err := coverer.cover(ctx, graph, coverSize)
		outcomes <- outcome{cover: cover, err: err}
	}()

	select {
	case result := <-outcomes:
		if ctx.Err() != nil && errors.Is(result.err, ctx.Err()) { // Interrupted right at the deadline
			return nil, false, nil
		}
		return result.cover, true, result.err
	case <-ctx.Done():
		if _, ok := coverer.solver.(sat.ContextSATSolver); ok {
			<-outcomes
		} else {
			log.Printf("solver %T cannot be interrupted, its solve of cover size %v keeps running in the background", coverer.solver, coverSize)
		}
		return nil, false, nil
	}
}
