package sat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to a json file mapping solver names (e.g. "kissatPath") to executables
var ConfigPath = "config.json"

const (
	satisfiableExitCode   = 10
	unsatisfiableExitCode = 20
)

// parseSolution extracts the literals of the 'v' lines of a solver's output, dropping the 0 terminator
func parseSolution(solverOutput string) SATSolution {
	values := lo.FlatMap(
		lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
			return len(line) > 0 && line[0] == 'v'
		}),
		func(line string, _ int) []string {
			return strings.Fields(line[1:])
		},
	)

	solution := lo.Map(values, func(valueStr string, _ int) int64 {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		return value
	})
	return lo.Filter(solution, func(value int64, _ int) bool { return value != 0 })
}

// parseLiterals reads whitespace separated literals (minisat/glucose result files), dropping the 0 terminator
func parseLiterals(solverOutput string) SATSolution {
	solution := lo.Map(strings.Fields(solverOutput), func(valueStr string, _ int) int64 {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		return value
	})
	return lo.Filter(solution, func(value int64, _ int) bool { return value != 0 })
}

// getExecutablePath looks the solver up in the config file and falls back to the given executable name
func getExecutablePath(solver, fallback string) string {
	content, err := os.ReadFile(ConfigPath)
	if err != nil {
		return fallback
	}

	var configJson map[string]any
	if err := json.Unmarshal(content, &configJson); err != nil {
		log.Printf("cannot read config file %v: %v", ConfigPath, err)
		return fallback
	}

	var config map[string]string
	if err := mapstructure.Decode(configJson, &config); err != nil {
		log.Printf("cannot decode config file %v: %v", ConfigPath, err)
		return fallback
	}

	path, ok := config[solver]
	if !ok {
		return fallback
	}
	return path
}

// run executes the command and interprets the SAT-competition exit codes.
// satisfiable is false (with a nil error) when the solver proved the instance unsatisfiable.
// cmd must be bound to ctx, the context's error is returned if it killed the process
func run(ctx context.Context, name string, cmd *exec.Cmd) (stdOut string, satisfiable bool, err error) {
	var stdOutBuffer bytes.Buffer
	cmd.Stdout = &stdOutBuffer
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if cmd.ProcessState == nil { // The process never started (e.g. executable not found)
		return "", false, fmt.Errorf("cannot execute %v: %w", name, err)
	}

	// Killed processes report -1
	if ctxErr := ctx.Err(); ctxErr != nil && cmd.ProcessState.ExitCode() == -1 {
		return "", false, fmt.Errorf("%v was interrupted: %w", name, ctxErr)
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != satisfiableExitCode && exitCode != unsatisfiableExitCode {
		return "", false, fmt.Errorf("an error occurred during %v execution: %v : %v", name, err.Error(), stderr.String())
	} else if exitCode == unsatisfiableExitCode {
		return "", false, nil
	}

	return stdOutBuffer.String(), true, nil
}
