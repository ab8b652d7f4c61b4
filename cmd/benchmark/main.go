package main

import (
	"fmt"
	"log"
	"time"

	"github.com/limaJavier/sat/pkg/sat"
)

const (
	instances = 20
	variables = 60
	clauses   = 250
)

func main() {
	backends := map[string]sat.Solver{
		"gini":      sat.NewGiniSolver(),
		"gophersat": sat.NewGophersatSolver(),
		// External backends, enabled when the executables are installed:
		// "minisat": sat.NewMinisatSolver(),
		// "glucose": sat.NewGlucoseSolver(),
	}

	generated := make([]*sat.Instance, instances)
	for i := range generated {
		generated[i] = sat.GenerateInstance(variables, clauses)
	}

	for name, solver := range backends {
		satisfiable := 0
		start := time.Now()

		for _, instance := range generated {
			assignment, err := solver.Solve(instance)
			if err != nil {
				log.Fatalf("%v failed: %v", name, err)
			}
			if assignment == nil {
				continue
			}
			if !sat.VerifyAssignment(instance, assignment) {
				log.Fatalf("%v produced a non-satisfying assignment", name)
			}
			satisfiable++
		}

		fmt.Printf("%-10v %4v instances, %v satisfiable, %v\n", name, instances, satisfiable, time.Since(start))
	}
}
