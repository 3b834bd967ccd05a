package solver

// propagate repeatedly looks for a unit clause under the current
// assignment, assigns its unit literal and records the clause as the
// reason, until either no clause is unit (fixpoint, no conflict) or
// some clause is falsified (conflict).
//
// The clause store is rescanned from the beginning after every forced
// assignment, so that when several clauses become unit at once the
// lowest-index one (insertion order: original clauses, then learned
// clauses in the order they were added) is always the one resolved
// first. This is the simplest correct propagator the specification
// allows; a watched-literal implementation would only change how fast
// a unit or falsified clause is found, never which one is reported.
func (s *Solver) propagate() clauseRef {
	for {
		progress := false
		for idx := 0; idx < len(s.clauses); idx++ {
			state, unit := s.state(s.clauses[idx])
			if state == stateFalsified {
				return clauseRef(idx)
			}
			if state == stateUnit {
				s.assign(unit, s.decisionLevel, clauseRef(idx))
				progress = true
				break
			}
		}
		if !progress {
			return noReason
		}
	}
}
