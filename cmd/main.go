package main

import (
	"fmt"
	"log"

	"github.com/limaJavier/sat/pkg/model"
	"github.com/limaJavier/sat/pkg/sat"
)

var colorNames = []string{"red", "green", "blue"}

func main() {
	graph := model.Petersen()

	// solver := sat.NewMinisatSolver()
	// solver := sat.NewGlucoseSolver()
	// solver := sat.NewGophersatSolver()
	solver := sat.NewGiniSolver()
	colorer := model.NewColorer(solver)

	coloring, err := colorer.Color(graph, uint64(len(colorNames)))
	if err != nil {
		log.Fatal(err)
	} else if coloring == nil {
		fmt.Println("Not colorable")
		return
	}

	// Output in GraphViz format
	fmt.Println("graph {")
	for vertex, color := range coloring {
		fmt.Printf("    %v [color=\"%v\"];\n", vertex, colorNames[color])
	}
	for _, edge := range graph.Edges {
		fmt.Printf("    %v -- %v;\n", edge[0], edge[1])
	}
	fmt.Println("}")

	if !model.Verify(graph, coloring, uint64(len(colorNames))) {
		log.Fatal("Verification failed")
	}
}
