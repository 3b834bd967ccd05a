package certify

import "testing"

func TestVerifyValidCertificate(t *testing.T) {
	// (1 v 2) & (-1 v 2) & (1 v -2) & (-1 v -2) is UNSAT.
	clauses := [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	p := NewProblem(2, clauses)
	// Resolve on var 2 to get (1), then on var 1 against (-1 v -2)-derived
	// unit, ending at the empty clause.
	proof := [][]int{{1}, {-1}, {}}
	ok, err := Verify(p, proof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected certificate to be valid")
	}
}

func TestVerifyRejectsUnsupportedStep(t *testing.T) {
	clauses := [][]int{{1, 2}}
	p := NewProblem(2, clauses)
	// (1) does not follow from (1 v 2) alone by unit propagation.
	proof := [][]int{{1}}
	ok, err := Verify(p, proof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected certificate to be rejected")
	}
}

func TestVerifyRejectsMissingEmptyClause(t *testing.T) {
	clauses := [][]int{{1}, {-1}}
	p := NewProblem(1, clauses)
	proof := [][]int{{1}}
	_, err := Verify(p, proof)
	if err == nil {
		t.Fatalf("expected an error when the certificate never reaches the empty clause")
	}
}

func TestVerifyRejectsOutOfRangeLiteral(t *testing.T) {
	clauses := [][]int{{1}}
	p := NewProblem(1, clauses)
	proof := [][]int{{5}}
	_, err := Verify(p, proof)
	if err == nil {
		t.Fatalf("expected an error for an out-of-range literal")
	}
}
