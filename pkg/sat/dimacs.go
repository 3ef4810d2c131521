package sat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS-CNF instance. Clauses may span several lines, they are terminated by a 0 literal
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var sat SAT
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	declaredClauses := -1
	clause := make([]int64, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		// SATLIB instances end with a '%' line
		if strings.HasPrefix(line, "%") {
			break
		}
		// Problem line
		if strings.HasPrefix(line, "p") {
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			variables, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			clauses, err := strconv.Atoi(parts[3])
			if err != nil {
				return SAT{}, fmt.Errorf("invalid clause count: %w", err)
			}
			sat.Variables = variables
			declaredClauses = clauses
			sat.Clauses = make([][]int64, 0, clauses)
			continue
		}

		for _, literalStr := range strings.Fields(line) {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", literalStr, err)
			}
			if literal == 0 {
				sat.Clauses = append(sat.Clauses, clause)
				clause = make([]int64, 0)
				continue
			}
			clause = append(clause, literal)
		}
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading instance: %w", err)
	}
	if len(clause) > 0 {
		return SAT{}, fmt.Errorf("unterminated clause: %v", clause)
	}
	if declaredClauses < 0 {
		return SAT{}, fmt.Errorf("missing problem line")
	}
	if declaredClauses != len(sat.Clauses) {
		return SAT{}, fmt.Errorf("problem line declares %d clauses but %d were read", declaredClauses, len(sat.Clauses))
	}

	return sat, nil
}

func ParseDIMACSFile(fileName string) (SAT, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return SAT{}, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	return ParseDIMACS(file)
}
