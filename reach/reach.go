package reach

import "github.com/procmine/procmine/eventlog"

// Relation is a directed adjacency over activities. Activities lists the
// universe in canonical order; Successors lists the direct successors of a,
// also canonically ordered. Implementations must be read-only for the
// lifetime of a query.
type Relation interface {
	Activities() []eventlog.Activity
	Successors(a eventlog.Activity) []eventlog.Activity
}

// walker holds the transient state of one DFS query. A fresh walker is
// created per call; the visited set never survives a query.
type walker struct {
	rel     Relation
	target  map[eventlog.Activity]struct{}
	visited map[eventlog.Activity]struct{}
	trail   []eventlog.Activity // current DFS stack, src..current
}

// Path reports whether a directed path exists in rel from any activity of
// src to any activity of dst. Membership in dst is the termination
// condition, so a source that itself belongs to dst succeeds immediately.
//
// On success the returned trail is the stack of the first successful branch,
// from the source that reached dst up to and including the reached activity.
// On failure the trail is nil.
func Path(rel Relation, src, dst []eventlog.Activity) (bool, []eventlog.Activity) {
	// 1. An empty target can never be reached.
	if len(dst) == 0 || len(src) == 0 {
		return false, nil
	}

	// 2. Index the target set once.
	target := make(map[eventlog.Activity]struct{}, len(dst))
	var a eventlog.Activity
	for _, a = range dst {
		target[a] = struct{}{}
	}

	// 3. Launch one DFS per source, in order, each with fresh visited state.
	for _, a = range src {
		w := &walker{
			rel:     rel,
			target:  target,
			visited: make(map[eventlog.Activity]struct{}),
		}
		if w.search(a) {
			return true, w.trail
		}
	}

	return false, nil
}

// search visits a, extending the trail; it backtracks the trail on failure
// so that the stack always spells the current branch.
func (w *walker) search(a eventlog.Activity) bool {
	// 1. Skip anything already explored in this query.
	if _, ok := w.visited[a]; ok {
		return false
	}
	w.visited[a] = struct{}{}
	w.trail = append(w.trail, a)

	// 2. Termination: a itself is a target.
	if _, ok := w.target[a]; ok {
		return true
	}

	// 3. Recurse into successors in canonical order.
	var nb eventlog.Activity
	for _, nb = range w.rel.Successors(a) {
		if w.search(nb) {
			return true
		}
	}

	// 4. Dead end: pop a from the branch.
	w.trail = w.trail[:len(w.trail)-1]

	return false
}

// StronglyConnected reports whether a and b lie on a common cycle of rel:
// a path a → b and a path b → a both exist. An activity is strongly
// connected to itself.
func StronglyConnected(rel Relation, a, b eventlog.Activity) bool {
	if a == b {
		return true
	}
	ab, _ := Path(rel, []eventlog.Activity{a}, []eventlog.Activity{b})
	if !ab {
		return false
	}
	ba, _ := Path(rel, []eventlog.Activity{b}, []eventlog.Activity{a})

	return ba
}

// Connected reports whether a path exists between the sets in either
// direction.
func Connected(rel Relation, as, bs []eventlog.Activity) bool {
	ab, _ := Path(rel, as, bs)
	if ab {
		return true
	}
	ba, _ := Path(rel, bs, as)

	return ba
}

// NotConnected reports whether no path exists between the sets in either
// direction.
func NotConnected(rel Relation, as, bs []eventlog.Activity) bool {
	return !Connected(rel, as, bs)
}

// Components partitions cluster into the connected components of rel,
// flooding only through cluster members: edges leaving the cluster are
// ignored. The relation is expected to be symmetric; on a directed relation
// the result depends on flooding order.
//
// Components are returned in order of their first representative in cluster;
// members keep cluster order.
func Components(rel Relation, cluster []eventlog.Activity) [][]eventlog.Activity {
	// 1. Index cluster membership and position.
	member := make(map[eventlog.Activity]int, len(cluster))
	var a eventlog.Activity
	var i int
	for i, a = range cluster {
		member[a] = i
	}

	// 2. Flood from each unassigned activity in cluster order.
	assigned := make(map[eventlog.Activity]struct{}, len(cluster))
	var comps [][]eventlog.Activity
	var stack, comp []eventlog.Activity
	var nb eventlog.Activity
	for _, a = range cluster {
		if _, ok := assigned[a]; ok {
			continue
		}

		stack = append(stack[:0], a)
		comp = comp[:0]
		assigned[a] = struct{}{}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)

			for _, nb = range rel.Successors(cur) {
				if _, ok := member[nb]; !ok {
					continue // outside the cluster
				}
				if _, ok := assigned[nb]; ok {
					continue
				}
				assigned[nb] = struct{}{}
				stack = append(stack, nb)
			}
		}

		// 3. Fix member order to cluster order before recording.
		comps = append(comps, sortByPosition(comp, member))
	}

	return comps
}

// sortByPosition returns a fresh slice with the members of comp arranged by
// their cluster position. Component sizes are small; insertion sort suffices.
func sortByPosition(comp []eventlog.Activity, pos map[eventlog.Activity]int) []eventlog.Activity {
	out := make([]eventlog.Activity, len(comp))
	copy(out, comp)
	var j int
	for i := 1; i < len(out); i++ {
		for j = i; j > 0 && pos[out[j]] < pos[out[j-1]]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
