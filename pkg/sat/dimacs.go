package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteInstance writes the instance in the DIMACS-CNF format: a header line
// "p cnf <variables> <clauses>" followed by one line per clause holding its
// signed 1-based literal codes terminated by 0.
//
// The encoder does not validate that every literal references an allocated
// variable. An out-of-range literal produces a header/clause mismatch that
// the downstream solver rejects as malformed input, not an error here.
func WriteInstance(writer io.Writer, instance *Instance) error {
	if _, err := fmt.Fprintf(writer, "p cnf %d %d\n", instance.variables, len(instance.clauses)); err != nil {
		return err
	}
	for _, clause := range instance.clauses {
		for _, literal := range clause {
			if _, err := fmt.Fprintf(writer, "%d ", literal.dimacs()); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(writer, "0\n"); err != nil {
			return err
		}
	}
	return nil
}

// ReadSolution parses solver output in the MiniSAT file format. The first
// non-empty line must be exactly "UNSAT" or "SAT". UNSAT yields nil, nil and
// any trailing content is ignored. SAT is followed by zero or more lines of
// whitespace-separated signed integer tokens: 0 is a group terminator and is
// skipped, -n marks variable n-1 as negated, and positive tokens confirm the
// default. Variables never mentioned keep the default non-negated polarity.
func ReadSolution(reader io.Reader, numVars uint64) (*Assignment, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header := ""
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			header = line
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solver output: %v", err)
	}

	switch header {
	case "UNSAT":
		return nil, nil
	case "SAT":
	default:
		return nil, fmt.Errorf("expected SAT or UNSAT header in solver output, got %q", header)
	}

	assignment := &Assignment{negated: make([]bool, numVars)}
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			value, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q in solver output: %v", token, err)
			}
			if value == 0 { // group terminator
				continue
			}
			variable := value
			if variable < 0 {
				variable = -variable
			}
			if uint64(variable) > numVars {
				return nil, fmt.Errorf("variable %d in solver output is out of range [1, %d]", variable, numVars)
			}
			if value < 0 {
				assignment.negated[variable-1] = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solver output: %v", err)
	}

	return assignment, nil
}
