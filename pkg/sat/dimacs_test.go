package sat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACS(t *testing.T) {
	//** Arrange
	input := `c comment
p cnf 4 3
1 -2 0
3
4 -1 0
-4 0
`

	//** Act
	sat, err := ParseDIMACS(strings.NewReader(input))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, uint64(4), sat.Variables)
	assert.Equal(t, [][]int64{{1, -2}, {3, 4, -1}, {-4}}, sat.Clauses)
}

func TestDIMACSRoundTrip(t *testing.T) {
	sat := SAT{Variables: 5, Clauses: [][]int64{{1, 2, 3}, {-4, 5}, {-1}}}

	parsed, err := ParseDIMACS(strings.NewReader(sat.ToDIMACS()))

	require.NoError(t, err)
	assert.Equal(t, sat, parsed)
}

func TestToDIMACS(t *testing.T) {
	sat := SAT{Variables: 2, Clauses: [][]int64{{1, -2}, {2}}}
	assert.Equal(t, "p cnf 2 2\n1 -2 0\n2 0\n", sat.ToDIMACS())
}

func TestParseDIMACSErrors(t *testing.T) {
	scenarios := map[string]string{
		"missing problem line":   "1 2 0\n",
		"invalid problem line":   "p dnf 2 1\n1 2 0\n",
		"invalid literal":        "p cnf 2 1\n1 x 0\n",
		"unterminated clause":    "p cnf 2 1\n1 2\n",
		"clause count mismatch":  "p cnf 2 2\n1 2 0\n",
		"invalid variable count": "p cnf -2 1\n1 2 0\n",
	}

	for name, input := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDIMACS(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
