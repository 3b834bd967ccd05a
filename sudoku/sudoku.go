package sudoku

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/satkit/gosat/solver"
)

// Grid is an n x n puzzle, row-major, 0 marking a blank cell.
type Grid [][]int

// Encoder builds the CNF clauses for one grid size, reusing the
// variable numbering across the initial-condition, one-value and
// uniqueness constraints below.
type Encoder struct {
	n  int
	sn int
}

// NewEncoder returns an Encoder for an n x n grid. n must be a
// perfect square.
func NewEncoder(n int) (*Encoder, error) {
	sn := int(math.Sqrt(float64(n)))
	if sn*sn != n {
		return nil, fmt.Errorf("sudoku: grid size %d is not a perfect square", n)
	}
	return &Encoder{n: n, sn: sn}, nil
}

// variable maps a (row, col, value) triple, 0-indexed row/col and
// 1-indexed value, to a CNF variable. Mirrors f(i,j,k) = n^2*(k-1) +
// n*j + i + 1 from the reference reduction.
func (e *Encoder) variable(row, col, val int) int {
	return e.n*e.n*(val-1) + e.n*col + row + 1
}

// cell recovers the (row, col, value) triple a variable was built
// from. Mirrors invf.
func (e *Encoder) cell(v int) (row, col, val int) {
	x := v - 1
	row = x % e.n
	col = (x / e.n) % e.n
	val = x/(e.n*e.n) + 1
	return
}

// Encode returns the CNF clauses asserting that grid's given cells
// are satisfied and that the result is a valid completed Sudoku
// grid: every cell holds exactly one value, and every row, column
// and sn x sn box contains each value exactly once.
func (e *Encoder) Encode(grid Grid) ([][]int, error) {
	n, sn := e.n, e.sn
	if len(grid) != n {
		return nil, fmt.Errorf("sudoku: grid has %d rows, want %d", len(grid), n)
	}
	var clauses [][]int

	for i := 0; i < n; i++ {
		if len(grid[i]) != n {
			return nil, fmt.Errorf("sudoku: row %d has %d cells, want %d", i, len(grid[i]), n)
		}
		for j := 0; j < n; j++ {
			if grid[i][j] != 0 {
				clauses = append(clauses, []int{e.variable(i, j, grid[i][j])})
			}
		}
	}

	values := lo.Range(n)

	// Each cell holds at least one value, and at most one.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			atLeast := lo.Map(values, func(k, _ int) int { return e.variable(i, j, k+1) })
			clauses = append(clauses, atLeast)
			clauses = append(clauses, e.atMostOnePairs(values, func(k int) int { return e.variable(i, j, k+1) })...)
		}
	}

	// Each value appears at least once, and at most once, per row.
	for _, k := range values {
		for i := 0; i < n; i++ {
			row := lo.Map(values, func(j, _ int) int { return e.variable(i, j, k+1) })
			clauses = append(clauses, row)
			clauses = append(clauses, e.atMostOnePairs(values, func(j int) int { return e.variable(i, j, k+1) })...)
		}
	}

	// Each value appears at least once, and at most once, per column.
	for _, k := range values {
		for j := 0; j < n; j++ {
			col := lo.Map(values, func(i, _ int) int { return e.variable(i, j, k+1) })
			clauses = append(clauses, col)
			clauses = append(clauses, e.atMostOnePairs(values, func(i int) int { return e.variable(i, j, k+1) })...)
		}
	}

	// Each value appears at least once, and at most once, per box.
	for _, k := range values {
		for bi := 0; bi < sn; bi++ {
			for bj := 0; bj < sn; bj++ {
				var cells []int
				for di := 0; di < sn; di++ {
					for dj := 0; dj < sn; dj++ {
						cells = append(cells, e.variable(sn*bi+di, sn*bj+dj, k+1))
					}
				}
				clauses = append(clauses, cells)
				clauses = append(clauses, e.atMostOnePairsOf(cells)...)
			}
		}
	}

	return clauses, nil
}

// atMostOnePairs returns one binary clause {-a, -b} for every pair of
// indices drawn from idxs, where lit(idx) names the variable for that
// index. A pairwise (rather than commander or sequential) encoding:
// quadratic in the block size, which is fine at Sudoku's n <= ~25.
func (e *Encoder) atMostOnePairs(idxs []int, lit func(int) int) [][]int {
	vars := lo.Map(idxs, func(idx, _ int) int { return lit(idx) })
	return e.atMostOnePairsOf(vars)
}

func (e *Encoder) atMostOnePairsOf(vars []int) [][]int {
	var clauses [][]int
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			clauses = append(clauses, []int{-vars[i], -vars[j]})
		}
	}
	return clauses
}

// Decode turns a satisfying model into a filled grid.
func (e *Encoder) Decode(m map[solver.Var]bool) Grid {
	grid := make(Grid, e.n)
	for i := range grid {
		grid[i] = make([]int, e.n)
	}
	for v, val := range m {
		if !val || int(v) <= 0 {
			continue
		}
		row, col, k := e.cell(int(v))
		if row < 0 || row >= e.n || col < 0 || col >= e.n {
			continue
		}
		grid[row][col] = k
	}
	return grid
}

// Solve encodes grid, runs it through a fresh Solver, and returns the
// completed grid on success.
func Solve(grid Grid) (Grid, bool, error) {
	enc, err := NewEncoder(len(grid))
	if err != nil {
		return nil, false, err
	}
	clauses, err := enc.Encode(grid)
	if err != nil {
		return nil, false, err
	}
	s := solver.NewSolver()
	for _, c := range clauses {
		s.AddClause(c...)
	}
	if s.Solve() != solver.Sat {
		return nil, false, nil
	}
	return enc.Decode(s.Assignment()), true, nil
}

// Valid reports whether grid is a completed, rule-respecting Sudoku
// grid: every row, column and box holds every value 1..n exactly
// once. Mirrors the reference implementation's isValidSudoku, with
// the row/column/box loops driven by samber/lo's Uniq helper instead
// of an explicit seen-set.
func Valid(grid Grid) bool {
	n := len(grid)
	sn := int(math.Sqrt(float64(n)))
	if sn*sn != n {
		return false
	}
	inRange := func(group []int) bool {
		if len(lo.Uniq(group)) != len(group) {
			return false
		}
		return lo.EveryBy(group, func(v int) bool { return v >= 1 && v <= n })
	}
	for i := 0; i < n; i++ {
		if len(grid[i]) != n || !inRange(grid[i]) {
			return false
		}
	}
	for j := 0; j < n; j++ {
		col := make([]int, n)
		for i := 0; i < n; i++ {
			col[i] = grid[i][j]
		}
		if !inRange(col) {
			return false
		}
	}
	for bi := 0; bi < n; bi += sn {
		for bj := 0; bj < n; bj += sn {
			var box []int
			for i := 0; i < sn; i++ {
				for j := 0; j < sn; j++ {
					box = append(box, grid[bi+i][bj+j])
				}
			}
			if !inRange(box) {
				return false
			}
		}
	}
	return true
}
