// Package imd is the recursive driver of the Inductive Miner —
// Directly-Follows (IMD): it turns an event log into a process tree.
//
// What:
//
//   - Discover(log): build the directly-follows graph, then mine the full
//     alphabet down to a tree of xor/seq/par/loop nodes with activity
//     leaves.
//   - Mine(dfg): the same recursion over a prebuilt graph.
//
// The recursion over a cluster of activities:
//
//   - a singleton without a self-loop is a leaf;
//   - otherwise the cut finders are tried in fixed priority order
//     (exclusive, sequence, parallel, loop) and the first genuine partition
//     wins, one child mined per part, no backtracking;
//   - when every cut reports no progress, the flower fallback closes the
//     branch: a loop node with one leaf per activity, in canonical order.
//
// Why:
//   - Cut failure is structural, not exceptional: every branch terminates,
//     because a successful cut strictly shrinks each part and the flower
//     bottoms out whatever is left.
//
// Determinism:
//   - Equal logs produce equal trees: the canonical first-occurrence order
//     fixed by the DFG governs every iteration of every cut.
//
// Errors:
//
//   - eventlog.ErrEmptyLog, eventlog.ErrEmptyTrace  rejected input
//   - ErrInvariantViolation                         a cut lost or duplicated
//     activities; discovery halts (indicates a defect, not bad input)
package imd
