package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satkit/gosat/solver"
)

// Problem is a parsed CNF file: the declared variable and clause
// counts from the header, plus the clauses themselves as signed
// DIMACS literals.
type Problem struct {
	NbVars    int
	NbClauses int
	Clauses   [][]int
}

// Load adds every clause of p to s.
func (p *Problem) Load(s *solver.Solver) {
	for _, c := range p.Clauses {
		s.AddClause(c...)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a single signed integer from r, skipping leading
// whitespace. b holds the last byte read (so callers can pass along a
// lookahead byte); it is updated in place. io.EOF is returned as-is so
// callers can distinguish end of input from a malformed token.
func readInt(b *byte, r *bufio.Reader) (int, error) {
	var err error
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("dimacs: reading digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("dimacs: reading int: %v", err)
		}
	}
	res := 0
	for {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("dimacs: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if err == io.EOF {
			// The integer ends at end of input: return it now and let
			// the next call report io.EOF.
			*b = ' '
			return res * neg, nil
		}
		if err != nil {
			return 0, fmt.Errorf("dimacs: reading int: %v", err)
		}
		if isSpace(*b) {
			break
		}
	}
	return res * neg, nil
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, 0, fmt.Errorf("dimacs: reading header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, fmt.Errorf("dimacs: malformed header %q", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: nbvars not an int: %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: nbclauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// Parse reads a DIMACS CNF file from r.
func Parse(r io.Reader) (*Problem, error) {
	br := bufio.NewReader(r)
	var p Problem
	headerSeen := false

	b, err := br.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = br.ReadByte()
			}
		case b == 'p':
			p.NbVars, p.NbClauses, err = parseHeader(br)
			if err != nil {
				return nil, err
			}
			p.Clauses = make([][]int, 0, p.NbClauses)
			headerSeen = true
		case isSpace(b):
			// tolerate blank lines between clauses
		default:
			if !headerSeen {
				return nil, fmt.Errorf("dimacs: clause before header")
			}
			var lits []int
			for {
				val, rerr := readInt(&b, br)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, fmt.Errorf("dimacs: unterminated clause at EOF")
					}
					err = io.EOF
					break
				}
				if rerr != nil {
					return nil, rerr
				}
				if val == 0 {
					p.Clauses = append(p.Clauses, lits)
					break
				}
				if abs(val) > p.NbVars {
					return nil, fmt.Errorf("dimacs: literal %d out of range for %d vars", val, p.NbVars)
				}
				lits = append(lits, val)
			}
		}
		if err == io.EOF {
			break
		}
		b, err = br.ReadByte()
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !headerSeen {
		return nil, fmt.Errorf("dimacs: missing header line")
	}
	return &p, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
