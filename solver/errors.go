package solver

import "errors"

// ErrContradiction is returned when propagation, or every case-split
// assumption at some cell, proves the objective unsatisfiable.
var ErrContradiction = errors.New("solver: contradiction")
