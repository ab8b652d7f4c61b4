package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/limaJavier/sat/pkg/model"
	"github.com/limaJavier/sat/pkg/sat"
	"github.com/samber/lo"
)

var solvers = map[string]func() sat.Solver{
	"minisat":   sat.NewMinisatSolver,
	"glucose":   sat.NewGlucoseSolver,
	"gini":      sat.NewGiniSolver,
	"gophersat": sat.NewGophersatSolver,
}

func main() {
	inputFlag := flag.String("input", "", "path to the graph json file")
	solverFlag := flag.String("solver", "gini", fmt.Sprintf("solver backend: %v", lo.Keys(solvers)))
	colorsFlag := flag.Uint64("colors", 3, "number of available colors")
	dimacsFlag := flag.Bool("dimacs", false, "print the DIMACS encoding instead of solving")
	configFlag := flag.String("config", sat.ConfigPath, "path to the solver-paths config file")
	flag.Parse()

	if *inputFlag == "" {
		flag.Usage()
		os.Exit(2)
	}
	sat.ConfigPath = *configFlag

	graph, err := model.GraphFromJson(*inputFlag)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	if *dimacsFlag {
		fmt.Print(model.Encode(graph, *colorsFlag).ToDIMACS())
		return
	}

	newSolver, ok := solvers[*solverFlag]
	if !ok {
		log.Fatalf("unknown solver %q, expected one of %v", *solverFlag, lo.Keys(solvers))
	}

	coloring, err := model.NewColorer(newSolver()).Color(graph, *colorsFlag)
	if err != nil {
		log.Fatal(err)
	} else if coloring == nil {
		fmt.Printf("Not colorable with %v colors\n", *colorsFlag)
		return
	}

	fmt.Println("graph {")
	for vertex, color := range coloring {
		fmt.Printf("    %v [colorscheme=set312, color=%v];\n", vertex, color+1)
	}
	for _, edge := range graph.Edges {
		fmt.Printf("    %v -- %v;\n", edge[0], edge[1])
	}
	fmt.Println("}")

	if !model.Verify(graph, coloring, *colorsFlag) {
		log.Fatal("Verification failed")
	}
}
