package sat

import "context"

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// ContextSATSolver is a SATSolver whose solve stops once the context is done, in which case the context's error is returned
type ContextSATSolver interface {
	SATSolver
	SolveContext(context.Context, SAT) (SATSolution, error)
}
