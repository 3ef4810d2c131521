package sat

import (
	"context"
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// pollInterval is how often a background gini solve is checked against its context
const pollInterval = 5 * time.Millisecond

// giniSolver solves in-process, no executable is required
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	instance := buildGini(sat)

	// 1 stands for satisfiable and -1 for unsatisfiable
	if instance.Solve() != 1 {
		return nil, nil
	}
	return giniSolution(instance, sat.Variables), nil
}

// SolveContext runs the search in gini's background goroutine and stops it once ctx is done
func (solver *giniSolver) SolveContext(ctx context.Context, sat SAT) (SATSolution, error) {
	instance := buildGini(sat)
	handle := instance.GoSolve()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if result, ok := handle.Test(); ok {
			if result != 1 {
				return nil, nil
			}
			return giniSolution(instance, sat.Variables), nil
		}

		select {
		case <-ctx.Done():
			handle.Stop()
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func buildGini(sat SAT) *gini.Gini {
	instance := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			if literal < 0 {
				instance.Add(z.Var(-literal).Neg())
			} else {
				instance.Add(z.Var(literal).Pos())
			}
		}
		instance.Add(0) // Terminate clause
	}
	return instance
}

func giniSolution(instance *gini.Gini, variables uint64) SATSolution {
	maxVar := uint64(instance.MaxVar())
	solution := make(SATSolution, 0, variables)
	for variable := uint64(1); variable <= variables; variable++ {
		if variable <= maxVar && instance.Value(z.Var(variable).Pos()) {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}
	return solution
}
