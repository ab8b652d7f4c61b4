package sat

// Assignment is a satisfying assignment produced by a successful solve. It
// records, for each variable of the instance it was built from, whether the
// assignment negates that variable. An Assignment is immutable and remains
// valid if the originating instance is mutated afterwards.
type Assignment struct {
	negated []bool
}

// Get returns the truth value of the literal under the assignment: the
// literal is true iff its polarity matches the polarity recorded for its
// variable. Variables allocated after the solve are outside the assignment's
// range and querying them panics.
func (assignment *Assignment) Get(literal Literal) bool {
	return literal.negated != !assignment.negated[literal.variable]
}

// NumVars returns the number of variables the assignment covers.
func (assignment *Assignment) NumVars() uint64 {
	return uint64(len(assignment.negated))
}
