// Package reach is the reachability kernel of the miner: DFS path queries,
// the strong-connectivity test, connectivity predicates, and component
// flooding, all parameterised by a Relation.
//
// What:
//
//   - Relation: the universe and successor function a query walks over. The
//     directly-follows graph implements it; the cut finders derive further
//     relations (symmetric closure, complement, loop-auxiliary) per attempt.
//   - Path(rel, src, dst): does a directed path lead from any activity of src
//     to any activity of dst? On success the trail of the first successful
//     branch (source up to and including the reached target) is returned.
//   - StronglyConnected, Connected, NotConnected: the pairwise predicates the
//     sequence cut is built from.
//   - Components(rel, cluster): partition of a cluster into connected
//     components, flooding only through cluster members.
//
// Why:
//   - Every cut decision reduces to reachability; keeping a single kernel
//     with explicit, per-call visited state is what makes cut attempts
//     side-effect free and repeatable.
//   - The trail return exists for the loop cut: body/redo classification
//     inspects which activities the successful search actually crossed.
//
// Determinism:
//   - Successor iteration follows the relation's canonical order, so equal
//     inputs always walk equal paths.
//
// Complexity:
//
//   - Path, Components: Time O(V + E), Memory O(V) per call
//   - StronglyConnected, Connected, NotConnected: two Path calls
package reach
