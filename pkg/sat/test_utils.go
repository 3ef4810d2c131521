package sat

import "math/rand/v2"

// GenerateSATInstance builds a random instance; every variable takes part in a clause with probability 1/2
func GenerateSATInstance(random *rand.Rand, variables uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	sign := func() int64 {
		if random.Float32() < 0.5 {
			return -1
		}
		return 1
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, variables)
		for j := range variables {
			if random.Float32() < 0.5 {
				satInstance.Clauses[i] = append(satInstance.Clauses[i], sign()*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			satInstance.Clauses[i] = append(satInstance.Clauses[i], sign()*(1+random.Int64N(int64(variables))))
		}
	}

	return satInstance
}

// AssertSATSolution checks that the solution is consistent and satisfies every clause of the instance
func AssertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
