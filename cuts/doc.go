// Package cuts implements the four cut finders of the inductive miner
// (exclusive, sequence, parallel, loop) together with start/end detection
// and the derived relations (symmetric closure, complement, loop-auxiliary
// graph) they operate on.
//
// What:
//
//   - Starts / Ends: activities of a cluster with no predecessor (resp.
//     successor), or with one outside the cluster.
//   - Exclusive: connected components of the symmetric directly-follows
//     relation inside the cluster.
//   - Sequence: strongly connected components, then a left-fold merge of
//     mutually unreachable blocks.
//   - Parallel: connected components of the complement graph, each required
//     to intersect both the start and the end set.
//   - Loop: non-start/non-end fragments classified as body or redo by the
//     trail of a reachability query through the end (resp. start) set.
//
// Why:
//   - Each finder either returns a genuine partition of its cluster or
//     reports no progress; the recursive driver dispatches over them in
//     fixed priority order and never backtracks. Failure here is a local,
//     structural outcome, not an error.
//
// Derived relations:
//   - The complement connects an unordered pair iff the DFG carries no edge
//     between the pair in either direction, so both mutual and one-way
//     neighbors stay disconnected in it.
//   - The loop-auxiliary graph is the cluster-induced DFG with every edge
//     touching a start or end activity deleted, taken undirected.
//
// Determinism:
//   - Partitions list groups by the cluster position of their first member.
//     Exclusive and parallel groups keep cluster order; a merged sequence
//     block lists the absorbing block first, then each absorbed block; the
//     loop body lists starts, then body fragments, then ends.
//
// Complexity:
//
//   - Exclusive, Parallel, Loop: Time O(V·(V+E)) per attempt
//   - Sequence: Time O(V²·(V+E)) from pairwise strong-connectivity
package cuts
