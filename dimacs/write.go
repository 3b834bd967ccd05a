package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/satkit/gosat/solver"
)

// WriteModel writes m in the DIMACS solution convention: a line
// "s SATISFIABLE" or "s UNSATISFIABLE", followed for a satisfiable
// result by one "v" line listing every variable as a signed literal in
// increasing order, terminated by 0.
func WriteModel(w io.Writer, status solver.Status, m map[solver.Var]bool) error {
	bw := bufio.NewWriter(w)
	switch status {
	case solver.Sat:
		if _, err := fmt.Fprintln(bw, "s SATISFIABLE"); err != nil {
			return err
		}
		vars := make([]solver.Var, 0, len(m))
		for v := range m {
			vars = append(vars, v)
		}
		sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
		fmt.Fprint(bw, "v")
		for _, v := range vars {
			fmt.Fprintf(bw, " %d", v.SignedLit(!m[v]).Int())
		}
		fmt.Fprintln(bw, " 0")
	case solver.Unsat:
		if _, err := fmt.Fprintln(bw, "s UNSATISFIABLE"); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintln(bw, "s UNKNOWN"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
