/*
Package solver implements a Conflict-Driven Clause Learning (CDCL) engine
for propositional satisfiability (SAT). Given a formula in conjunctive
normal form, it decides whether some assignment of truth values to
variables satisfies every clause and, if one exists, returns it.

Describing a problem

A problem is built one clause at a time, DIMACS-style: a clause is a
sequence of nonzero signed integers, the sign giving the polarity and
the magnitude the variable. Variable 0 never appears in a clause; it is
reserved to mean "no variable" (see Lit's zero value).

	s := solver.NewSolver()
	s.AddClause(1, 2, 3)
	s.AddClause(-1, -2)
	s.AddClause(-1, -3)
	s.AddClause(-2, -3)

Solving a problem

	status := s.Solve()
	if status == solver.Sat {
		model := s.Assignment()
	}

The solver is single-threaded, synchronous and deterministic given its
inputs: the same sequence of AddClause calls always produces the same
verdict and, on a Sat verdict, the same model. It is not safe to call
Solve concurrently on the same Solver, nor to reuse a Solver across
independent problems without an intervening Reset.

This package deliberately omits the machinery that makes production
solvers fast on industrial benchmarks: restarts, clause-database
reduction, LBD-based clause management, and a watched-literal
propagator are all out of scope here. The propagator instead scans the
clause store for a unit or falsified clause on every step, which the
specification this solver follows explicitly sanctions as the simplest
correct implementation. None of that affects correctness; it only
affects how large a formula can be solved in reasonable time.
*/
package solver
