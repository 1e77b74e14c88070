package cuts

import (
	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/reach"
)

// Parallel attempts the parallel cut on cluster:
//
//  1. Compute the start and end activities of the cluster.
//  2. Build the complement of the cluster-induced DFG.
//  3. Partition the cluster into connected components of the complement.
//  4. Require every component to intersect both the start and the end set.
//
// Components that pass become the children of a par node. A single
// component, or any component missing a start or an end activity, means no
// parallel structure and the cut reports no progress.
func Parallel(g *eventlog.DFG, cluster []eventlog.Activity) ([][]eventlog.Activity, bool) {
	// 1. Starts and ends on the original relation.
	starts := toSet(Starts(g, cluster))
	ends := toSet(Ends(g, cluster))
	if len(starts) == 0 || len(ends) == 0 {
		return nil, false
	}

	// 2.–3. Complement components.
	comps := reach.Components(newComplement(g, cluster), cluster)
	if len(comps) < 2 {
		return nil, false
	}

	// 4. Every branch of a parallel composition must be able to begin and
	// finish the cluster on its own.
	var comp []eventlog.Activity
	for _, comp = range comps {
		if !intersects(comp, starts) || !intersects(comp, ends) {
			return nil, false
		}
	}

	return comps, true
}
