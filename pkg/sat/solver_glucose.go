package sat

import "os/exec"

// NewGlucoseSolver returns a solver backed by the glucose-simp executable,
// which speaks the same output-file protocol as minisat. The executable path
// can be overridden through the "glucosePath" config entry.
func NewGlucoseSolver() Solver {
	return NewDimacsSolver(CommandBuilderFunc(func() *exec.Cmd {
		return exec.Command(getExecutablePath("glucosePath", "glucose-simp"), "-verb=0")
	}))
}
