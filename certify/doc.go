// Package certify checks RUP (reverse unit propagation) certificates:
// a sequence of clauses, each of which must follow from the original
// problem plus every earlier certificate clause by unit propagation
// alone, ending in the empty clause. A certificate that checks out is
// independent proof that the original problem is unsatisfiable,
// obtained without trusting the solver's own conflict analysis.
package certify
