package sat

import (
	gophersat "github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

// gophersatSolver solves in-process, no executable is required
type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(sat SAT) (SATSolution, error) {
	clauses := lo.Map(sat.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	})

	problem := gophersat.ParseSlice(clauses)
	instance := gophersat.New(problem)
	if instance.Solve() != gophersat.Sat {
		return nil, nil
	}

	model := instance.Model()
	solution := make(SATSolution, 0, sat.Variables)
	for variable := uint64(1); variable <= sat.Variables; variable++ {
		// Variables absent from every clause are not part of the model and are reported false
		if variable <= uint64(len(model)) && model[variable-1] {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}
	return solution, nil
}
