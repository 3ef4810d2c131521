package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/vertexcover/pkg/sat"
	"github.com/samber/lo"
)

// HeaderMode selects what the "p cnf" header line declares as its variable count
type HeaderMode int

const (
	// VertexCountHeader declares the number of vertices, the format the reduction has always produced
	VertexCountHeader HeaderMode = iota
	// VariableCountHeader declares rows*vertices, the number of variables the clauses actually reference
	VariableCountHeader
)

// Formula is the result of the reduction: the cover size, the vertex count and the clauses in emission order
type Formula struct {
	CoverSize uint64
	Vertices  uint64
	Clauses   [][]int64
}

// Variables returns the number of distinct variables the clauses range over
func (formula Formula) Variables() uint64 {
	return formula.Vertices * formula.CoverSize
}

func (formula Formula) Header(mode HeaderMode) [2]string {
	declared := formula.Vertices
	if mode == VariableCountHeader {
		declared = formula.Variables()
	}
	return [2]string{
		fmt.Sprintf("k %d", formula.CoverSize),
		fmt.Sprintf("p cnf %d %d", declared, len(formula.Clauses)),
	}
}

// Lines renders the header followed by one line per clause terminated by the 0 sentinel
func (formula Formula) Lines(mode HeaderMode) []string {
	header := formula.Header(mode)
	lines := make([]string, 0, len(formula.Clauses)+2)
	lines = append(lines, header[0], header[1])
	for _, clause := range formula.Clauses {
		lines = append(lines, clauseLine(clause))
	}
	return lines
}

func (formula Formula) Write(w io.Writer, mode HeaderMode) error {
	// bufio.Writer keeps the first write error and Flush returns it
	writer := bufio.NewWriter(w)
	header := formula.Header(mode)
	fmt.Fprintln(writer, header[0])
	fmt.Fprintln(writer, header[1])
	for _, clause := range formula.Clauses {
		writer.WriteString(clauseLine(clause))
		writer.WriteByte('\n')
	}
	return writer.Flush()
}

func (formula Formula) WriteFile(path string, mode HeaderMode) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create formula file: %w", err)
	}
	defer file.Close()

	if err := formula.Write(file, mode); err != nil {
		return fmt.Errorf("cannot write formula file: %w", err)
	}
	return file.Close()
}

// SAT converts the formula into a solver instance. Repeated literals are dropped from each clause, which does not change its meaning
func (formula Formula) SAT() sat.SAT {
	return sat.SAT{
		Variables: formula.Variables(),
		Clauses: lo.Map(formula.Clauses, func(clause []int64, _ int) []int64 {
			return lo.Uniq(clause)
		}),
	}
}

// Cover decodes a solver assignment into the sorted vertices selected by the rows (one entry per true row variable)
func (formula Formula) Cover(solution sat.SATSolution) []uint64 {
	indexer := newIndexer(formula.Vertices, formula.CoverSize)

	cover := make([]uint64, 0, formula.CoverSize)
	for _, literal := range solution {
		// Acknowledge only positive variables of the cover matrix
		if literal > 0 && uint64(literal) <= formula.Variables() {
			_, vertex := indexer.Attributes(uint64(literal))
			cover = append(cover, vertex)
		}
	}
	slices.Sort(cover)
	return cover
}

// ReadFormula parses a formula written by Write with the same header mode
func ReadFormula(reader io.Reader, mode HeaderMode) (Formula, error) {
	bufferedReader := bufio.NewReader(reader)

	firstLine, err := bufferedReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return Formula{}, fmt.Errorf("cannot read cover size line: %w", err)
	}
	fields := strings.Fields(firstLine)
	if len(fields) != 2 || fields[0] != "k" {
		return Formula{}, fmt.Errorf("invalid cover size line: %q", strings.TrimSpace(firstLine))
	}
	coverSize, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil || coverSize == 0 {
		return Formula{}, fmt.Errorf("invalid cover size: %q", fields[1])
	}

	instance, err := sat.ParseDIMACS(bufferedReader)
	if err != nil {
		return Formula{}, err
	}

	vertices := instance.Variables
	if mode == VariableCountHeader {
		if vertices%coverSize != 0 {
			return Formula{}, fmt.Errorf("variable count %v is not a multiple of the cover size %v", vertices, coverSize)
		}
		vertices = vertices / coverSize
	}

	return Formula{
		CoverSize: coverSize,
		Vertices:  vertices,
		Clauses:   instance.Clauses,
	}, nil
}

func clauseLine(clause []int64) string {
	var builder strings.Builder
	for _, literal := range clause {
		builder.WriteString(strconv.FormatInt(literal, 10))
		builder.WriteByte(' ')
	}
	builder.WriteByte('0')
	return builder.String()
}
