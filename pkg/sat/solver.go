package sat

// Solver decides the satisfiability of CNF instances.
type Solver interface {
	// Solve returns a satisfying assignment of the instance if satisfiable,
	// else returns nil (these are valid outputs where error shall be nil).
	// A non-nil error means the solving pipeline itself failed and says
	// nothing about satisfiability: nil, nil is reserved for proven UNSAT.
	Solve(instance *Instance) (*Assignment, error)
}
