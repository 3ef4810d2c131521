package sat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SATSolution holds one signed literal per assigned variable
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder)
	return builder.String()
}

// WriteDIMACS streams the instance in DIMACS-CNF format, which avoids building the whole string for large instances
func (s SAT) WriteDIMACS(w io.Writer) error {
	writer := bufio.NewWriter(w) // Errors surface through Flush
	fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(writer, "%d ", literal)
		}
		writer.WriteString("0\n")
	}
	return writer.Flush()
}
