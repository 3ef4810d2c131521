package sat

import (
	"context"
	"os/exec"
	"strings"
)

type cryptominisatSolver struct{}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(sat SAT) (SATSolution, error) {
	return solver.SolveContext(context.Background(), sat)
}

func (solver *cryptominisatSolver) SolveContext(ctx context.Context, sat SAT) (SATSolution, error) {
	cryptominisatPath := getExecutablePath("cryptominisatPath", "cryptominisat5")
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	cmd := exec.CommandContext(ctx, cryptominisatPath, "--verb", "0")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input

	output, satisfiable, err := run(ctx, "cryptominisat", cmd)
	if err != nil || !satisfiable {
		return nil, err
	}

	return parseSolution(output), nil
}
