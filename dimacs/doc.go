// Package dimacs reads and writes the DIMACS CNF text format used to
// exchange SAT problems: a header line "p cnf <nbvars> <nbclauses>",
// optional "c" comment lines, and one clause per line as
// space-separated signed integers terminated by a 0.
package dimacs
