// Package objective implements Objective: the public statement of a
// puzzle instance — a set of half-step centers, each optionally carrying
// a target galaxy size, plus an optional set of pre-placed walls.
//
// An Objective is the interface between a finished universe.Universe and
// everything downstream of it: solver.Solve reconstructs the unique
// border set consistent with an Objective's centers, and report.Of
// checks an arbitrary candidate board against one. Objective itself carries
// no galaxy identifiers — only the geometry a solver is allowed to see.
package objective
