// Package report implements the error reporter: it classifies the
// shortcomings of a candidate board.Board against an objective.Objective,
// without ever needing the galaxy identifiers a solver or generator
// works with internally. It is the one consumer-facing way an external
// collaborator (a UI validating a player's partial solution, a solver's
// caller sanity-checking a result) can ask "what, if anything, is wrong
// with this board" — see report.Of.
package report
