package sat

import (
	"context"
	"os/exec"
	"strings"
)

type kissatSolver struct{}

func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(sat SAT) (SATSolution, error) {
	return solver.SolveContext(context.Background(), sat)
}

// SolveContext kills the kissat process once ctx is done
func (solver *kissatSolver) SolveContext(ctx context.Context, sat SAT) (SATSolution, error) {
	kissatPath := getExecutablePath("kissatPath", "kissat")
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	cmd := exec.CommandContext(ctx, kissatPath, "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input

	output, satisfiable, err := run(ctx, "kissat", cmd)
	if err != nil || !satisfiable {
		return nil, err
	}

	return parseSolution(output), nil
}
