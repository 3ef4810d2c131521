package sat

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type minisatSolver struct {
	name       string
	configName string
	executable string
}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{name: "minisat", configName: "minisatPath", executable: "minisat"}
}

// NewGlucoseSimpSolver shares minisat's command line and result file format
func NewGlucoseSimpSolver() SATSolver {
	return &minisatSolver{name: "glucose-simp", configName: "glucoseSimpPath", executable: "glucose-simp"}
}

func (solver *minisatSolver) Solve(sat SAT) (SATSolution, error) {
	return solver.SolveContext(context.Background(), sat)
}

func (solver *minisatSolver) SolveContext(ctx context.Context, sat SAT) (SATSolution, error) {
	executablePath := getExecutablePath(solver.configName, solver.executable)

	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", solver.name+"_output-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution
	defer outputTempFile.Close()

	// Write the DIMACS content to the temporary file
	if err := sat.WriteDIMACS(inputTempFile); err != nil {
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.CommandContext(ctx, executablePath, "-verb=0", inputTempFile.Name(), outputTempFile.Name())

	_, satisfiable, err := run(ctx, solver.name, cmd)
	if err != nil || !satisfiable {
		return nil, err
	}

	output, err := io.ReadAll(outputTempFile) // Read the output file
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %v", err)
	}
	return solver.parseSolution(string(output)), nil
}

// parseSolution skips the "SAT" header line minisat writes before the model
func (solver *minisatSolver) parseSolution(solverOutput string) SATSolution {
	solverOutput = strings.TrimPrefix(strings.TrimSpace(solverOutput), "SAT")
	return parseLiterals(solverOutput)
}
