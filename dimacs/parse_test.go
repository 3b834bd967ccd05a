package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/gosat/solver"
)

func TestParseSimple(t *testing.T) {
	const cnf = `c a trivial example
p cnf 3 2
1 -2 0
2 3 0
`
	p, err := Parse(strings.NewReader(cnf))
	require.NoError(t, err)
	assert.Equal(t, 3, p.NbVars)
	assert.Equal(t, 2, p.NbClauses)
	assert.Equal(t, [][]int{{1, -2}, {2, 3}}, p.Clauses)
}

func TestParseMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	assert.Error(t, err)
}

func TestParseUnterminatedClause(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 2"))
	assert.Error(t, err)
}

func TestParseLiteralOutOfRange(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\n1 2 0\n"))
	assert.Error(t, err)
}

func TestLoadIntoSolver(t *testing.T) {
	p, err := Parse(strings.NewReader("p cnf 2 2\n1 2 0\n-1 -2 0\n"))
	require.NoError(t, err)
	s := solver.NewSolver()
	p.Load(s)
	assert.Equal(t, solver.Sat, s.Solve())
}

func TestWriteModelSat(t *testing.T) {
	var buf bytes.Buffer
	m := map[solver.Var]bool{1: true, 2: false}
	require.NoError(t, WriteModel(&buf, solver.Sat, m))
	out := buf.String()
	assert.Contains(t, out, "s SATISFIABLE")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "-2")
}

func TestWriteModelUnsat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, solver.Unsat, nil))
	assert.Equal(t, "s UNSATISFIABLE\n", buf.String())
}
