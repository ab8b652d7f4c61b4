package model

import (
	"fmt"

	"github.com/limaJavier/sat/pkg/sat"
)

// Colorer computes proper vertex colorings by reduction to SAT.
type Colorer interface {
	// Color returns one color per vertex if the graph is colorable with the
	// given number of colors, else returns nil (these are valid outputs
	// where error shall be nil).
	Color(graph Graph, colors uint64) ([]uint64, error)
}

type satColorer struct {
	solver sat.Solver
}

func NewColorer(solver sat.Solver) Colorer {
	return &satColorer{solver: solver}
}

// Encode builds the CNF instance stating that the graph has a proper
// coloring with the given number of colors: one variable per (vertex, color)
// pair, each vertex gets exactly one color, adjacent vertices get distinct
// colors.
func Encode(graph Graph, colors uint64) *sat.Instance {
	instance, _ := encode(graph, colors)
	return instance
}

func encode(graph Graph, colors uint64) (*sat.Instance, [][]sat.Literal) {
	instance := sat.NewInstance()

	variables := make([][]sat.Literal, graph.Vertices)
	for vertex := range variables {
		variables[vertex] = make([]sat.Literal, colors)
		for color := range variables[vertex] {
			variables[vertex][color] = instance.FreshVar()
		}

		// At least one color per vertex
		instance.AssertAny(variables[vertex]...)

		// At most one color per vertex: (c1 IMPLIES !c2) == (!c1 OR !c2)
		for c1 := uint64(0); c1 < colors; c1++ {
			for c2 := uint64(0); c2 < c1; c2++ {
				instance.AssertAny(variables[vertex][c1].Not(), variables[vertex][c2].Not())
			}
		}
	}

	// Adjacent vertices get distinct colors
	for _, edge := range graph.Edges {
		for color := uint64(0); color < colors; color++ {
			instance.AssertAny(variables[edge[0]][color].Not(), variables[edge[1]][color].Not())
		}
	}

	return instance, variables
}

func (colorer *satColorer) Color(graph Graph, colors uint64) ([]uint64, error) {
	if colors == 0 {
		if graph.Vertices == 0 {
			return []uint64{}, nil
		}
		return nil, nil
	}

	instance, variables := encode(graph, colors)

	assignment, err := colorer.solver.Solve(instance)
	if err != nil {
		return nil, fmt.Errorf("failed to solve coloring instance: %w", err)
	} else if assignment == nil { // Return nil if the graph is not colorable
		return nil, nil
	}

	coloring := make([]uint64, graph.Vertices)
	for vertex := range coloring {
		for color := uint64(0); color < colors; color++ {
			if assignment.Get(variables[vertex][color]) {
				coloring[vertex] = color
				break
			}
		}
	}
	return coloring, nil
}
