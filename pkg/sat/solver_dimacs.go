package sat

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// CommandBuilder prepares a fresh command to invoke an external solver
// executable. Build is called once per solve; the DIMACS input path and the
// output path are appended by the adapter as trailing arguments.
type CommandBuilder interface {
	Build() *exec.Cmd
}

// CommandBuilderFunc adapts a plain function to the CommandBuilder interface.
type CommandBuilderFunc func() *exec.Cmd

func (build CommandBuilderFunc) Build() *exec.Cmd {
	return build()
}

// DimacsSolver drives an external program speaking the DIMACS / MiniSAT file
// protocol: the instance is written to a temporary file, the program is run
// with the input and output paths as trailing arguments, and the verdict is
// read back from the output file.
type DimacsSolver struct {
	builder CommandBuilder
}

func NewDimacsSolver(builder CommandBuilder) *DimacsSolver {
	return &DimacsSolver{builder: builder}
}

func (solver *DimacsSolver) Solve(instance *Instance) (*Assignment, error) {
	return solver.SolveContext(context.Background(), instance)
}

// SolveContext is Solve with a bounded wait: cancelling the context kills the
// solver process. Both temporary files are removed on every return path.
func (solver *DimacsSolver) SolveContext(ctx context.Context, instance *Instance) (*Assignment, error) {
	inputFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputFile.Name()) // Ensure the file is removed after execution

	outputFile, err := os.CreateTemp("", "solution-*.out")
	if err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputFile.Name()) // Ensure the file is removed after execution
	if err := outputFile.Close(); err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	// Write the DIMACS content to the temporary file
	if err := WriteInstance(inputFile, instance); err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := solver.builder.Build()
	// Set the temporary files as the input and output of the command
	cmd.Args = append(cmd.Args, inputFile.Name(), outputFile.Name())

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start solver process: %v", err)
	}

	// The exit status is deliberately not interpreted: solvers of the
	// minisat family exit non-zero on success, so the output file's grammar
	// is the only reliable verdict.
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return nil, fmt.Errorf("solver process aborted: %v", ctx.Err())
	case <-done:
	}

	output, err := os.Open(outputFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %v", err)
	}
	defer output.Close()

	return ReadSolution(output, instance.NumVars())
}
