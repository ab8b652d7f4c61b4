package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Graph is an undirected graph over vertices 0 .. Vertices-1. Each edge is a
// pair of endpoint indices.
type Graph struct {
	Vertices uint64
	Edges    [][]uint64
}

// GraphFromJson loads a graph from a JSON file of the form
// {"vertices": N, "edges": [[u, v], ...]}.
func GraphFromJson(file string) (Graph, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Graph{}, fmt.Errorf("cannot read graph file: %v", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Graph{}, fmt.Errorf("cannot parse graph file: %v", err)
	}

	var graph Graph
	if err := mapstructure.Decode(inputJson, &graph); err != nil {
		return Graph{}, fmt.Errorf("cannot decode graph file: %v", err)
	}

	for _, edge := range graph.Edges {
		if len(edge) != 2 {
			return Graph{}, fmt.Errorf("edge %v must have exactly two endpoints", edge)
		}
		if edge[0] >= graph.Vertices || edge[1] >= graph.Vertices {
			return Graph{}, fmt.Errorf("edge %v references a vertex outside [0, %v)", edge, graph.Vertices)
		}
	}

	return graph, nil
}

// Petersen returns the Petersen graph: 10 vertices, inner pentagram 0-4,
// outer pentagon 5-9.
func Petersen() Graph {
	edges := [][]uint64{}
	for i := uint64(0); i < 5; i++ {
		// Pentagram edge, pentagon edge and spoke at vertex i
		edges = append(edges,
			[]uint64{i, (i + 2) % 5},
			[]uint64{i + 5, (i+1)%5 + 5},
			[]uint64{i + 5, i},
		)
	}
	return Graph{Vertices: 10, Edges: edges}
}

// Verify checks that the coloring assigns one of the given colors to every
// vertex and distinct colors to the endpoints of every edge.
func Verify(graph Graph, coloring []uint64, colors uint64) bool {
	if uint64(len(coloring)) != graph.Vertices {
		return false
	}
	if lo.SomeBy(coloring, func(color uint64) bool { return color >= colors }) {
		return false
	}
	return lo.EveryBy(graph.Edges, func(edge []uint64) bool {
		return coloring[edge[0]] != coloring[edge[1]]
	})
}
