package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotIsAnInvolution(t *testing.T) {
	instance := NewInstance()

	for range 10 {
		literal := instance.FreshVar()
		assert.Equal(t, literal, literal.Not().Not())
		assert.Equal(t, literal.Not(), literal.Not().Not().Not())
	}
}

func TestNotPreservesVariable(t *testing.T) {
	instance := NewInstance()
	literal := instance.FreshVar()

	assert.Equal(t, literal.Var(), literal.Not().Var())
	assert.False(t, literal.Negated())
	assert.True(t, literal.Not().Negated())
}

func TestFreshVarAllocatesSequentially(t *testing.T) {
	instance := NewInstance()

	for i := uint64(0); i < 5; i++ {
		literal := instance.FreshVar()
		assert.Equal(t, i, literal.Var())
		assert.False(t, literal.Negated())
	}
	assert.Equal(t, uint64(5), instance.NumVars())
}
