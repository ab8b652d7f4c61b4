package sat

import (
	"log"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGini(t *testing.T) {
	t.Run("Smoke scenario", func(t *testing.T) {
		smokeScenario(t, NewGiniSolver())
	})
	t.Run("Random instances", func(t *testing.T) {
		randomInstances(t, NewGiniSolver())
	})
}

func TestGophersat(t *testing.T) {
	t.Run("Smoke scenario", func(t *testing.T) {
		smokeScenario(t, NewGophersatSolver())
	})
	t.Run("Random instances", func(t *testing.T) {
		randomInstances(t, NewGophersatSolver())
	})
}

func smokeScenario(t *testing.T, solver Solver) {
	instance, x, y, z := buildScenario()

	assignment, err := solver.Solve(instance)
	require.NoError(t, err)
	require.NotNil(t, assignment)

	assert.True(t, assignment.Get(x) || assignment.Get(z))
	assert.True(t, !assignment.Get(x) || !assignment.Get(y) || !assignment.Get(z))
	assert.True(t, assignment.Get(y))
	assert.True(t, VerifyAssignment(instance, assignment))

	// Forcing y both ways makes the instance unsatisfiable
	instance.AssertAny(y.Not())
	assignment, err = solver.Solve(instance)
	require.NoError(t, err)
	assert.Nil(t, assignment)
}

func randomInstances(t *testing.T, solver Solver) {
	unsatisfiableCount := 0

	for range 10 {
		variables := uint64(rand.IntN(50) + 1)
		clauses := rand.IntN(100) + 1
		instance := GenerateInstance(variables, clauses)

		assignment, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if assignment == nil {
			unsatisfiableCount++
			continue
		}

		if !VerifyAssignment(instance, assignment) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}
