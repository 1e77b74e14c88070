package cuts

import (
	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/reach"
)

// Loop attempts the loop cut on cluster:
//
//  1. Compute starts S, ends E, and the boundary B = S ∪ E.
//  2. Build the auxiliary graph: the cluster-induced DFG with every edge
//     touching B deleted.
//  3. Its connected components over cluster \ B are the candidate
//     fragments.
//  4. A fragment is body when a directly-follows path leads from it back to
//     S with at least one end activity on the trail; otherwise it is redo
//     when a path leads from it to E with at least one start activity on
//     the trail.
//  5. The body child is S, then the body fragments, then E (deduplicated);
//     the redo child is the redo fragments. An empty redo yields a
//     one-child loop partition.
//
// The cut reports no progress when the assembled children are the input
// cluster unchanged, and also when a fragment matches neither
// classification, so a successful cut places every activity of the cluster
// in exactly one child.
func Loop(g *eventlog.DFG, cluster []eventlog.Activity) ([][]eventlog.Activity, bool) {
	// 1. Boundary activities.
	starts := Starts(g, cluster)
	ends := Ends(g, cluster)
	if len(starts) == 0 || len(ends) == 0 {
		return nil, false
	}
	boundary := dedupAppend(starts, ends)

	// 2.–3. Candidate fragments of the auxiliary graph.
	aux, inner := newLoopAux(g, cluster, boundary)
	frags := reach.Components(aux, inner)

	// 4. Classify each fragment by the trail of its witnessing path.
	startSet := toSet(starts)
	endSet := toSet(ends)
	var bodyActs, redoActs []eventlog.Activity
	var frag, trail []eventlog.Activity
	var ok bool
	for _, frag = range frags {
		if ok, trail = reach.Path(g, frag, starts); ok && intersects(trail, endSet) {
			bodyActs = append(bodyActs, frag...)
			continue
		}
		if ok, trail = reach.Path(g, frag, ends); ok && intersects(trail, startSet) {
			redoActs = append(redoActs, frag...)
			continue
		}
		// Neither body nor redo: no loop partition covers the cluster.
		return nil, false
	}

	// 5. Assemble body and redo children.
	body := dedupAppend(starts, bodyActs, ends)
	parts := [][]eventlog.Activity{body}
	if len(redoActs) > 0 {
		parts = append(parts, redoActs)
	}

	// No progress: a single child covering the whole cluster.
	if len(parts) == 1 && len(body) == len(cluster) {
		return nil, false
	}

	return parts, true
}

// dedupAppend concatenates the given slices, keeping the first occurrence
// of each activity and the order of appending.
func dedupAppend(slices ...[]eventlog.Activity) []eventlog.Activity {
	seen := make(map[eventlog.Activity]struct{})
	var out []eventlog.Activity

	var s []eventlog.Activity
	var a eventlog.Activity
	for _, s = range slices {
		for _, a = range s {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}

	return out
}
