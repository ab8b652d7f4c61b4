package sat

import "os/exec"

// NewMinisatSolver returns a solver backed by the minisat executable, which
// writes its verdict to the output file passed as its last argument. The
// executable path can be overridden through the "minisatPath" config entry.
func NewMinisatSolver() Solver {
	return NewDimacsSolver(CommandBuilderFunc(func() *exec.Cmd {
		return exec.Command(getExecutablePath("minisatPath", "minisat"), "-verb=0")
	}))
}
