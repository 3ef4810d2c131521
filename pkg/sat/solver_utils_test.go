package sat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolution(t *testing.T) {
	output := "s SATISFIABLE\nv 1 -2 3\nv -4 5 0\n"
	assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, parseSolution(output))
}

func TestParseSolutionWithoutValues(t *testing.T) {
	assert.Empty(t, parseSolution("s SATISFIABLE\n"))
}

func TestMinisatParseSolution(t *testing.T) {
	solver := &minisatSolver{}
	assert.Equal(t, SATSolution{1, -2, 3}, solver.parseSolution("SAT\n1 -2 3 0\n"))
}

func TestGetExecutablePath(t *testing.T) {
	previous := ConfigPath
	t.Cleanup(func() { ConfigPath = previous })

	ConfigPath = filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(ConfigPath, []byte(`{"kissatPath": "/opt/kissat/bin/kissat"}`), 0666))

	assert.Equal(t, "/opt/kissat/bin/kissat", getExecutablePath("kissatPath", "kissat"))
	assert.Equal(t, "cadical", getExecutablePath("cadicalPath", "cadical"))
}

func TestGetExecutablePathWithoutConfig(t *testing.T) {
	previous := ConfigPath
	t.Cleanup(func() { ConfigPath = previous })

	ConfigPath = filepath.Join(t.TempDir(), "missing.json")
	assert.Equal(t, "kissat", getExecutablePath("kissatPath", "kissat"))
}
