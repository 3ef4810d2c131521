package sat

import (
	"context"
	"os/exec"
	"strings"
)

type cadicalSolver struct{}

func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(sat SAT) (SATSolution, error) {
	return solver.SolveContext(context.Background(), sat)
}

// SolveContext kills the cadical process once ctx is done
func (solver *cadicalSolver) SolveContext(ctx context.Context, sat SAT) (SATSolution, error) {
	cadicalPath := getExecutablePath("cadicalPath", "cadical")
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	cmd := exec.CommandContext(ctx, cadicalPath, "-q")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cadical's standard input

	output, satisfiable, err := run(ctx, "cadical", cmd)
	if err != nil || !satisfiable {
		return nil, err
	}

	return parseSolution(output), nil
}
