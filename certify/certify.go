package certify

import "fmt"

// Problem is the clause set a certificate is checked against. It owns
// a private unit-propagation engine independent of package solver's,
// on purpose: reusing the solver under test to validate its own proof
// would defeat the point of certification.
type Problem struct {
	nbVars  int
	clauses [][]int
	units   []int8 // 1, -1 or 0 per variable (1-indexed, slot 0 unused)
}

// NewProblem returns a Problem over nbVars variables, seeded with
// clauses. nbVars must be at least the largest variable magnitude
// appearing in clauses or in any certificate clause checked later.
func NewProblem(nbVars int, clauses [][]int) *Problem {
	cp := make([][]int, len(clauses))
	copy(cp, clauses)
	return &Problem{
		nbVars:  nbVars,
		clauses: cp,
		units:   make([]int8, nbVars+1),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// unitPropagate runs unit propagation to a fixpoint over p.clauses
// given the assumptions already recorded in p.units, and reports
// whether a conflict was reached.
func (p *Problem) unitPropagate() bool {
	for {
		progress := false
		for _, c := range p.clauses {
			unassigned := 0
			satisfied := false
			var unitLit int
			for _, lit := range c {
				v := abs(lit)
				val := p.units[v]
				if val == 0 {
					unassigned++
					unitLit = lit
					continue
				}
				if (lit > 0 && val == 1) || (lit < 0 && val == -1) {
					satisfied = true
					break
				}
			}
			if satisfied {
				continue
			}
			if unassigned == 0 {
				return true // conflict
			}
			if unassigned == 1 {
				v := abs(unitLit)
				if unitLit > 0 {
					p.units[v] = 1
				} else {
					p.units[v] = -1
				}
				progress = true
			}
		}
		if !progress {
			return false
		}
	}
}

// impliedByUnitPropagation reports whether clause is a logical
// consequence of p's clauses: it temporarily assumes the negation of
// every literal in clause and checks that unit propagation alone
// derives a conflict. p's assumption state is restored before
// returning.
func (p *Problem) impliedByUnitPropagation(clause []int) bool {
	saved := make([]int8, len(p.units))
	copy(saved, p.units)
	for _, lit := range clause {
		v := abs(lit)
		if lit > 0 {
			p.units[v] = -1
		} else {
			p.units[v] = 1
		}
	}
	res := p.unitPropagate()
	copy(p.units, saved)
	return res
}

// Verify checks a RUP certificate: every clause in proof must follow
// from p's clauses plus every earlier proof clause by unit
// propagation, in order, and the last clause of proof must be empty.
// On success, the empty final clause is the witness that p's original
// clauses are unsatisfiable.
func Verify(p *Problem, proof [][]int) (bool, error) {
	if len(proof) == 0 {
		return false, fmt.Errorf("certify: empty certificate")
	}
	for i, clause := range proof {
		for _, lit := range clause {
			if abs(lit) > p.nbVars {
				return false, fmt.Errorf("certify: literal %d out of range for %d vars", lit, p.nbVars)
			}
		}
		if !p.impliedByUnitPropagation(clause) {
			return false, nil
		}
		p.clauses = append(p.clauses, clause)
		if len(clause) == 0 {
			return i == len(proof)-1, nil
		}
	}
	return false, fmt.Errorf("certify: certificate does not end in the empty clause")
}
