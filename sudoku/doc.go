// Package sudoku reduces Sudoku puzzles to CNF and decodes a solver
// model back into a filled grid. n x n puzzles with n a perfect
// square (4, 9, 16, ...) are supported, not just the classic 9x9.
package sudoku
