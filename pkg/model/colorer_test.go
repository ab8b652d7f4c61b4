package model

import (
	"testing"

	"github.com/limaJavier/sat/pkg/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() Graph {
	return Graph{
		Vertices: 3,
		Edges:    [][]uint64{{0, 1}, {1, 2}, {2, 0}},
	}
}

func TestColorTriangle(t *testing.T) {
	colorer := NewColorer(sat.NewGiniSolver())

	// Act
	coloring, err := colorer.Color(triangle(), 3)
	require.NoError(t, err)
	require.NotNil(t, coloring)

	// Assert
	assert.True(t, Verify(triangle(), coloring, 3))
}

func TestTriangleNotTwoColorable(t *testing.T) {
	colorer := NewColorer(sat.NewGiniSolver())

	coloring, err := colorer.Color(triangle(), 2)
	require.NoError(t, err)
	assert.Nil(t, coloring)
}

func TestColorPetersen(t *testing.T) {
	solvers := map[string]sat.Solver{
		"gini":      sat.NewGiniSolver(),
		"gophersat": sat.NewGophersatSolver(),
	}

	for name, solver := range solvers {
		t.Run(name, func(t *testing.T) {
			colorer := NewColorer(solver)
			graph := Petersen()

			// The Petersen graph is 3-chromatic
			coloring, err := colorer.Color(graph, 3)
			require.NoError(t, err)
			require.NotNil(t, coloring)
			assert.True(t, Verify(graph, coloring, 3))

			coloring, err = colorer.Color(graph, 2)
			require.NoError(t, err)
			assert.Nil(t, coloring)
		})
	}
}

func TestEncodeCounts(t *testing.T) {
	instance := Encode(triangle(), 3)

	// One variable per (vertex, color); per vertex one at-least-one clause
	// and three at-most-one clauses; per edge three distinctness clauses
	assert.Equal(t, uint64(9), instance.NumVars())
	assert.Equal(t, 3*(1+3)+3*3, instance.NumClauses())
}

func TestVerifyRejectsBadColorings(t *testing.T) {
	graph := triangle()

	assert.True(t, Verify(graph, []uint64{0, 1, 2}, 3))
	assert.False(t, Verify(graph, []uint64{0, 0, 1}, 3), "adjacent vertices share a color")
	assert.False(t, Verify(graph, []uint64{0, 1, 3}, 3), "color out of range")
	assert.False(t, Verify(graph, []uint64{0, 1}, 3), "missing vertex")
}
