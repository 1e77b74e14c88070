// Package ptree defines the process-tree result type of discovery: a
// hierarchical expression over the operators xor (exclusive choice), seq
// (sequence), par (concurrency), and loop, whose leaves are activities.
//
// What:
//
//   - Node: either a leaf carrying one activity, or an operator node
//     carrying children. Constructors Leaf, Xor, Seq, Par, Loop.
//   - String: the linear notation used throughout the docs and tests —
//     · for seq, × for xor, ∧ for par, ⟲(body) / ⟲(body, redo) for loop.
//   - Leaves: the activities of the tree in left-to-right order.
//   - MarshalJSON: nested {"op": ..., "children": ...} rendering for the CLI.
//
// Why:
//   - Discovery builds the tree bottom-up and returns it as a plain
//     immutable value; rendering and traversal live here so the miner stays
//     free of presentation concerns.
//
// Invariants (established by the miner, not enforced here):
//   - every alphabet activity appears exactly once across the leaves;
//   - xor/seq/par carry at least two children, loop carries one or two,
//     except the flower fallback loop, which carries one leaf per activity.
package ptree
