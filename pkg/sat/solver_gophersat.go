package sat

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver backed by the gophersat
// library. No external executable or temporary file is involved.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (gophersat *gophersatSolver) Solve(instance *Instance) (*Assignment, error) {
	if len(instance.clauses) == 0 { // Trivially satisfiable, gophersat has no model to report
		return &Assignment{negated: make([]bool, instance.variables)}, nil
	}

	clauses := lo.Map(instance.clauses, func(clause []Literal, _ int) []int {
		return lo.Map(clause, func(literal Literal, _ int) int {
			return int(literal.dimacs())
		})
	})

	s := solver.New(solver.ParseSlice(clauses))
	switch s.Solve() {
	case solver.Sat:
	case solver.Unsat:
		return nil, nil
	default:
		return nil, fmt.Errorf("gophersat returned an indeterminate result")
	}

	// Variables absent from the model (never mentioned in any clause) keep
	// the default non-negated polarity.
	model := s.Model()
	assignment := &Assignment{negated: make([]bool, instance.variables)}
	for variable := range assignment.negated {
		if variable < len(model) && !model[variable] {
			assignment.negated[variable] = true
		}
	}
	return assignment, nil
}
