package sat

import "math/rand/v2"

// GenerateInstance builds a random instance with the given number of
// variables and clauses. Every variable appears in each clause with
// probability 1/2 and random polarity; empty clauses are patched with a
// single random literal so the instance is never trivially unsatisfiable.
func GenerateInstance(variables uint64, clauses int) *Instance {
	instance := NewInstance()
	literals := make([]Literal, variables)
	for i := range literals {
		literals[i] = instance.FreshVar()
	}

	for range clauses {
		clause := make([]Literal, 0, variables)
		for _, literal := range literals {
			if rand.Float32() < 0.5 {
				continue
			}
			if rand.Float32() < 0.5 {
				literal = literal.Not()
			}
			clause = append(clause, literal)
		}

		if len(clause) == 0 {
			literal := literals[rand.IntN(len(literals))]
			if rand.Float32() < 0.5 {
				literal = literal.Not()
			}
			clause = append(clause, literal)
		}

		instance.AssertAny(clause...)
	}

	return instance
}

// VerifyAssignment checks that the assignment satisfies every clause of the
// instance.
func VerifyAssignment(instance *Instance, assignment *Assignment) bool {
	for _, clause := range instance.clauses {
		satisfied := false
		for _, literal := range clause {
			if assignment.Get(literal) {
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
