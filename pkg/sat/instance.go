package sat

import "strings"

// Instance is a CNF formula under construction: the conjunction of every
// clause asserted so far, over the variables allocated so far. An Instance is
// not safe for concurrent mutation.
type Instance struct {
	variables uint64
	clauses   [][]Literal
}

func NewInstance() *Instance {
	return &Instance{}
}

// FreshVar allocates the next variable and returns it as a non-negated
// literal.
func (instance *Instance) FreshVar() Literal {
	variable := instance.variables
	instance.variables++
	return Literal{variable: variable}
}

// AssertAny appends the clause requiring at least one of the given literals
// to be true. Literal order is preserved in the DIMACS encoding. Variable
// indices are not validated here: asserting a literal whose variable was not
// allocated by this instance is a usage fault that surfaces downstream.
func (instance *Instance) AssertAny(literals ...Literal) {
	clause := make([]Literal, len(literals))
	copy(clause, literals)
	instance.clauses = append(instance.clauses, clause)
}

// NumVars returns the number of variables allocated so far.
func (instance *Instance) NumVars() uint64 {
	return instance.variables
}

// NumClauses returns the number of clauses asserted so far.
func (instance *Instance) NumClauses() int {
	return len(instance.clauses)
}

// ToDIMACS renders the instance in the DIMACS-CNF string format.
func (instance *Instance) ToDIMACS() string {
	var builder strings.Builder
	_ = WriteInstance(&builder, instance) // strings.Builder writes cannot fail
	return builder.String()
}
