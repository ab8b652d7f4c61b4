package sat

// Literal is a propositional variable or its negation, as it occurs in a
// single clause. Literals referencing the same variable may carry different
// polarities in different clauses.
type Literal struct {
	variable uint64
	negated  bool
}

// Not returns the negation of the literal. Negating twice yields the original
// literal.
func (literal Literal) Not() Literal {
	return Literal{variable: literal.variable, negated: !literal.negated}
}

// Var returns the 0-based index of the literal's variable.
func (literal Literal) Var() uint64 {
	return literal.variable
}

// Negated reports whether the literal is the negation of its variable.
func (literal Literal) Negated() bool {
	return literal.negated
}

// dimacs returns the signed 1-based DIMACS code of the literal. Variable 0
// does not exist in this encoding, which is what lets 0 act as the clause
// terminator.
func (literal Literal) dimacs() int64 {
	code := int64(literal.variable) + 1
	if literal.negated {
		return -code
	}
	return code
}
