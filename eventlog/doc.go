// Package eventlog defines the event-log data model (Activity, Trace, Log)
// and builds the directly-follows graph (DFG) that every discovery step
// consumes.
//
// What:
//
//   - Activity / Trace / Log: an atomic event symbol, one ordered case, and a
//     collection of cases.
//   - Build(log): one sweep over every trace, recording for each activity the
//     set of direct predecessors (in) and direct successors (out), plus the
//     alphabet in canonical first-occurrence order.
//   - Parse(r): plain-text log reader, one trace per line, activities
//     separated by commas or whitespace, '#' starts a comment.
//
// Why:
//   - The DFG is the single input of the inductive-miner cut search; building
//     it once, immutably, keeps every later query side-effect free.
//   - Canonical order (first occurrence in the log) is fixed here and honored
//     by every iteration downstream, which is what makes discovery
//     deterministic.
//
// Key Types:
//
//   - Activity, Trace, Log
//   - DFG: immutable; exposes Alphabet, In, Out, Successors, HasEdge, Rank
//
// Complexity:
//
//   - Build: Time O(total log length), Memory O(V + E)
//   - All DFG queries: O(1) or O(deg)
//
// Errors:
//
//   - ErrEmptyLog    log has no traces, or the alphabet is empty
//   - ErrEmptyTrace  a trace of length zero was encountered
package eventlog
