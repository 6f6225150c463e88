// Package match implements the gift-exchange constraint solver.
//
// Given a group of participants, each carrying a private list of people
// they refuse to give to, the package decides whether a complete
// assignment exists and, if so, produces one. A valid assignment is a
// permutation of the group with no fixed point (nobody gives to
// themselves) in which no giver is paired with someone on their
// exclusion list.
//
// # Operations
//
// The package exposes four pure operations:
//
//   - [NewCompatibility]: build the directed "giver may give to receiver"
//     relation from a participant list
//   - [CheckSolvable]: decide feasibility with a human-readable reason
//   - [Generate]: produce one randomized valid assignment
//   - [ComputeStats]: per-participant constraint-pressure diagnostics
//
// # Algorithm
//
// Feasibility checking runs cheap necessary-condition checks first (group
// size, givers with nobody left to give to, receivers nobody may give to),
// then falls back to exhaustive depth-first backtracking over partial
// assignments. The search is a correctness oracle: it never reports
// infeasible for a solvable group.
//
// Assignment generation reuses the same backtracking search but visits
// the most constrained givers first and shuffles the candidate receivers
// at every decision point, so repeated calls spread results across the
// space of valid assignments instead of always returning the same one.
// Each attempt is itself a complete search; the attempt cap only bounds
// how long Generate hunts for variety.
//
// # Concurrency
//
// All operations are stateless and reentrant. Every call builds its own
// working structures and discards them on return, so concurrent calls
// need no external synchronization.
//
// Worst-case search cost is factorial in the group size. That is fine for
// the intended scale (small private groups); hosts dealing with untrusted
// input should bound group size before calling in.
package match
