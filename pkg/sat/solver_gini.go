package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver backed by the gini library. No
// external executable or temporary file is involved.
func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(instance *Instance) (*Assignment, error) {
	g := gini.NewVc(int(instance.variables), len(instance.clauses))
	for _, clause := range instance.clauses {
		for _, literal := range clause {
			variable := z.Var(literal.variable + 1)
			if literal.negated {
				g.Add(variable.Neg())
			} else {
				g.Add(variable.Pos())
			}
		}
		g.Add(0) // Terminate the clause
	}

	switch g.Solve() {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini returned an indeterminate result")
	}

	assignment := &Assignment{negated: make([]bool, instance.variables)}
	for variable := uint64(0); variable < instance.variables; variable++ {
		if !g.Value(z.Var(variable + 1).Pos()) {
			assignment.negated[variable] = true
		}
	}
	return assignment, nil
}
